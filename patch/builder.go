package patch

// Builder assembles a JSON Patch document one operation at a time.
type Builder struct {
	ops []Operation
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends an "add" operation.
func (b *Builder) Add(path string, value any) *Builder {
	b.ops = append(b.ops, Operation{Op: OpAdd, Path: path, Value: value})
	return b
}

// Remove appends a "remove" operation.
func (b *Builder) Remove(path string) *Builder {
	b.ops = append(b.ops, Operation{Op: OpRemove, Path: path})
	return b
}

// Replace appends a "replace" operation.
func (b *Builder) Replace(path string, value any) *Builder {
	b.ops = append(b.ops, Operation{Op: OpReplace, Path: path, Value: value})
	return b
}

// Move appends a "move" operation.
func (b *Builder) Move(from, path string) *Builder {
	b.ops = append(b.ops, Operation{Op: OpMove, From: from, Path: path})
	return b
}

// Copy appends a "copy" operation.
func (b *Builder) Copy(from, path string) *Builder {
	b.ops = append(b.ops, Operation{Op: OpCopy, From: from, Path: path})
	return b
}

// Test appends a "test" operation.
func (b *Builder) Test(path string, value any) *Builder {
	b.ops = append(b.ops, Operation{Op: OpTest, Path: path, Value: value})
	return b
}

// Build returns the assembled operations.
func (b *Builder) Build() []Operation {
	return b.ops
}

// Apply builds the patch and applies it to root in one step.
func (b *Builder) Apply(root any) (any, error) {
	return Apply(b.ops, root)
}

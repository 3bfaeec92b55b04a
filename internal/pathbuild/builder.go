package pathbuild

import (
	"strconv"
	"strings"
)

type partKind uint8

const (
	kindName partKind = iota
	kindIndex
)

type part struct {
	kind partKind
	name string
	idx  int64
}

// Builder provides efficient incremental construction of normalized JSONPath
// location strings. Uses push/pop semantics to avoid allocations during
// traversal; the full string is only materialized when String is called.
type Builder struct {
	parts  []part
	length int // pre-calculated byte length for String(), excluding the leading "$"
}

// PushName adds a name-selector part: ['name'], with "'" escaped as "\'".
func (b *Builder) PushName(name string) {
	b.parts = append(b.parts, part{kind: kindName, name: name})
	b.length += 3 + escapedLen(name) // "['" + ... + "']"
}

// PushIndex adds an index-selector part: [N].
func (b *Builder) PushIndex(i int64) {
	b.parts = append(b.parts, part{kind: kindIndex, idx: i})
	b.length += 2 + intLen(i) // "[" + ... + "]"
}

// Pop removes the last part.
func (b *Builder) Pop() {
	if len(b.parts) == 0 {
		return
	}
	last := b.parts[len(b.parts)-1]
	b.parts = b.parts[:len(b.parts)-1]
	if last.kind == kindName {
		b.length -= 3 + escapedLen(last.name)
	} else {
		b.length -= 2 + intLen(last.idx)
	}
}

// Len reports the current depth.
func (b *Builder) Len() int { return len(b.parts) }

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.parts = b.parts[:0]
	b.length = 0
}

// String materializes the normalized path (RFC 9535 §2.7): a leading "$"
// followed by a bracketed selector per part.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.Grow(1 + b.length)
	sb.WriteByte('$')
	for _, p := range b.parts {
		if p.kind == kindIndex {
			sb.WriteByte('[')
			sb.WriteString(strconv.FormatInt(p.idx, 10))
			sb.WriteByte(']')
			continue
		}
		sb.WriteString("['")
		writeEscaped(&sb, p.name)
		sb.WriteString("']")
	}
	return sb.String()
}

// escapeChar returns the letter following a backslash for r's canonical
// escape (RFC 9535 §2.7's string-literal escape set, reused here so a
// normalized location containing a quote/control character can still be
// parsed back as a valid JSONPath string literal), or 0 if r needs no
// escaping.
func escapeChar(r rune) byte {
	switch r {
	case '\'':
		return '\''
	case '"':
		return '"'
	case '\\':
		return '\\'
	case '\b':
		return 'b'
	case '\f':
		return 'f'
	case '\n':
		return 'n'
	case '\r':
		return 'r'
	case '\t':
		return 't'
	default:
		return 0
	}
}

func escapedLen(s string) int {
	n := len(s)
	for _, r := range s {
		if escapeChar(r) != 0 {
			n++
		}
	}
	return n
}

func writeEscaped(sb *strings.Builder, s string) {
	for _, r := range s {
		if esc := escapeChar(r); esc != 0 {
			sb.WriteByte('\\')
			sb.WriteByte(esc)
			continue
		}
		sb.WriteRune(r)
	}
}

func intLen(i int64) int {
	return len(strconv.FormatInt(i, 10))
}

package jsonpath

import "context"

// AsyncIndexer is implemented by host values whose member or element
// access requires asynchronous work (network or disk I/O) to resolve —
// the Go analogue of python-jsonpath's `__getitem_async__` hook. Name and
// Index selectors consult it, via FindAllAsync/FindIterAsync, in
// preference to the synchronous *jsonvalue.Object/[]any indexing FindAll
// uses. A document that contains no AsyncIndexer value evaluates
// identically through either entry point.
type AsyncIndexer interface {
	// GetNameAsync resolves a Name-selector lookup. ok is false when name
	// is absent (not an error).
	GetNameAsync(ctx context.Context, name string) (value any, ok bool, err error)
	// GetIndexAsync resolves an Index-selector lookup. index may be
	// negative, per RFC 9535 §2.3.3's "count from the end" semantics;
	// implementations are responsible for their own bounds handling since
	// the interface has no way to report a container's length up front.
	GetIndexAsync(ctx context.Context, index int64) (value any, ok bool, err error)
}

// resolveName looks up name on v. When ectx carries a context (evaluation
// started through an Async entry point) and v implements AsyncIndexer,
// the lookup awaits that hook; otherwise it performs the same lookup
// applySelectors' SelName case always used.
func resolveName(ectx *evalContext, v any, name string) (any, bool, error) {
	if ectx.ctx != nil {
		if ai, ok := v.(AsyncIndexer); ok {
			return awaitAsyncName(ectx.ctx, ai, name)
		}
	}
	obj, ok := asObject(v)
	if !ok {
		return nil, false, nil
	}
	val, present := lookupName(obj, name)
	return val, present, nil
}

// resolveIndex looks up index on v, returning the resolved (non-negative,
// in-bounds) index alongside the value. See resolveName for the
// AsyncIndexer precedence rule.
func resolveIndex(ectx *evalContext, v any, index int64) (value any, resolved int64, present bool, err error) {
	if ectx.ctx != nil {
		if ai, ok := v.(AsyncIndexer); ok {
			val, ok, err := awaitAsyncIndex(ectx.ctx, ai, index)
			return val, index, ok, err
		}
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, 0, false, nil
	}
	idx := normalizeIndex(index, len(arr))
	if idx < 0 || idx >= len(arr) {
		return nil, 0, false, nil
	}
	return arr[idx], int64(idx), true, nil
}

type asyncNameResult struct {
	value any
	ok    bool
	err   error
}

func awaitAsyncName(ctx context.Context, ai AsyncIndexer, name string) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	resCh := make(chan asyncNameResult, 1)
	go func() {
		v, ok, err := ai.GetNameAsync(ctx, name)
		resCh <- asyncNameResult{value: v, ok: ok, err: err}
	}()
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case r := <-resCh:
		return r.value, r.ok, r.err
	}
}

func awaitAsyncIndex(ctx context.Context, ai AsyncIndexer, index int64) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	resCh := make(chan asyncNameResult, 1)
	go func() {
		v, ok, err := ai.GetIndexAsync(ctx, index)
		resCh <- asyncNameResult{value: v, ok: ok, err: err}
	}()
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case r := <-resCh:
		return r.value, r.ok, r.err
	}
}

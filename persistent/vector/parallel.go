package vector

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MapConcurrent is like Map, but maps leaves of v concurrently, using at most
// limit goroutines (limit ≤ 0 means no limit). f may fail; the first error
// cancels the context passed to the remaining calls and is returned.
//
// As v is never modified, no locking is involved.
func MapConcurrent[T, U any](ctx context.Context, v Vector[T], limit int, f func(context.Context, T) (U, error)) (Vector[U], error) {
	if v.size == 0 {
		return Vector[U]{}, nil
	}
	var leaves []*node[T]
	if v.shape() == largeShape {
		leaves = make([]*node[T], 0, v.tailOffset()/branchFactor)
		v.root.walk(v.shift, func(leaf *node[T]) bool {
			leaves = append(leaves, leaf)
			return true
		})
	}
	ts := v.tailSize()
	mapped := make([]*node[U], len(leaves))
	var tail *node[U]
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	mapLeaf := func(leaf *node[T], from int, out **node[U]) func() error {
		return func() error {
			var n node[U]
			for i := from; i < branchFactor; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				u, err := f(gctx, leaf[i])
				if err != nil {
					return err
				}
				n[i] = u
			}
			*out = &n
			return nil
		}
	}
	for i, leaf := range leaves {
		g.Go(mapLeaf(leaf, 0, &mapped[i]))
	}
	g.Go(mapLeaf(v.tail, branchFactor-ts, &tail))
	if err := g.Wait(); err != nil {
		tracer().Debugf("concurrent map failed: %v", err)
		return Vector[U]{}, err
	}
	b := &builder[U]{}
	for _, leaf := range mapped {
		b.addLeaf(leaf)
	}
	return b.vector(tail, ts), nil
}

package services

import (
	"github.com/lattice-cad/blockdex/internal/core/domain"
	"github.com/lattice-cad/blockdex/internal/core/geom"
)

// DefaultDepthBudget caps nested-instance recursion per block expansion.
// Legitimate drawings nest a handful of levels; anything deeper than
// this is either generated pathology or a bug in the source document.
const DefaultDepthBudget = 32

// walker flattens one block definition: a depth-first traversal over its
// entity list that composes instance transforms, samples curved
// primitives and feeds world-space geometry to the canonicalizer.
//
// visiting holds the handles of blocks on the active recursion stack.
// Push before recursing, pop after returning: the same block may appear
// again on unrelated branches, only re-entry along the current ancestry
// chain is a cycle and gets dropped silently.
type walker struct {
	doc      *domain.Drawing
	canon    *geom.Canonicalizer
	visiting map[string]struct{}
}

// flattenBlock canonicalizes the fully-expanded geometry of block into
// canon. Fails with domain.DepthExceededError when acyclic nesting runs
// past depthBudget.
func flattenBlock(doc *domain.Drawing, block *domain.BlockDefinition, canon *geom.Canonicalizer, depthBudget int) error {
	w := &walker{
		doc:      doc,
		canon:    canon,
		visiting: make(map[string]struct{}),
	}
	return w.walk(block, geom.Identity(), depthBudget)
}

func (w *walker) walk(block *domain.BlockDefinition, t geom.Transform, budget int) error {
	if budget <= 0 {
		return &domain.DepthExceededError{Block: block.Name}
	}
	if _, onStack := w.visiting[block.Handle]; onStack {
		// Cycle: this block is already being expanded on the current
		// ancestry chain. Its contribution along this path is omitted.
		return nil
	}
	w.visiting[block.Handle] = struct{}{}
	defer delete(w.visiting, block.Handle)

	for i := range block.Entities {
		e := &block.Entities[i]
		switch e.Kind {
		case domain.KindPolyline, domain.KindLine, domain.KindArc,
			domain.KindCircle, domain.KindEllipse, domain.KindSpline,
			domain.KindSolid:
			w.emitPath(e, t)

		case domain.KindText, domain.KindMText:
			w.emitTextBox(e, t)

		case domain.KindInsert:
			if e.Insert == nil {
				continue
			}
			child := w.doc.BlockByName(e.Insert.BlockName)
			if child == nil {
				// Dangling reference: contributes nothing.
				continue
			}
			local := geom.FromInstance(
				e.Insert.ScaleX, e.Insert.ScaleY, e.Insert.Rotation,
				e.Insert.InsertX, e.Insert.InsertY,
			)
			if err := w.walk(child, geom.Compose(t, local), budget-1); err != nil {
				return err
			}

		case domain.KindHatch:
			// Intentionally ignored: hatch boundaries duplicate
			// geometry already present as sibling entities.

		default:
			// Unknown kinds are skipped. Add an arm above when a new
			// kind should canonicalize.
		}
	}
	return nil
}

// emitPath samples the entity, transforms every vertex into world
// coordinates and emits one point token for the first vertex plus one
// segment token per consecutive pair, closing the chain when the shape
// is closed.
func (w *walker) emitPath(e *domain.Entity, t geom.Transform) {
	pts, closed := geom.SamplePath(e)
	if len(pts) == 0 {
		return
	}
	world := make([]domain.Point, len(pts))
	for i, p := range pts {
		x, y := t.Apply(p.X, p.Y)
		world[i] = domain.Point{X: x, Y: y}
	}

	w.canon.AddPoint(e.Layer, world[0].X, world[0].Y)
	for i := 1; i < len(world); i++ {
		w.canon.AddSegment(e.Layer, world[i-1].X, world[i-1].Y, world[i].X, world[i].Y)
	}
	if closed && len(world) > 1 {
		last := world[len(world)-1]
		w.canon.AddSegment(e.Layer, last.X, last.Y, world[0].X, world[0].Y)
	}
}

// emitTextBox approximates a text entity as an axis-aligned box anchored
// at the transformed insertion point.
func (w *walker) emitTextBox(e *domain.Entity, t geom.Transform) {
	width, height := geom.TextFootprint(e)
	x, y := t.Apply(e.Anchor.X, e.Anchor.Y)
	w.canon.AddBox(e.Layer, x, y-0.8*height, x+width, y+0.2*height)
}

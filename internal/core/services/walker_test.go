package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-cad/blockdex/internal/core/domain"
	"github.com/lattice-cad/blockdex/internal/core/geom"
)

// --- Test drawing builders ---

func lineEntity(layer string, x1, y1, x2, y2 float64) domain.Entity {
	return domain.Entity{
		Kind:   domain.KindLine,
		Layer:  layer,
		Points: []domain.Point{{X: x1, Y: y1}, {X: x2, Y: y2}},
	}
}

func insertEntity(block string, sx, sy, rot, tx, ty float64) domain.Entity {
	return domain.Entity{
		Kind: domain.KindInsert,
		Insert: &domain.InsertRef{
			BlockName: block,
			ScaleX:    sx, ScaleY: sy, Rotation: rot,
			InsertX: tx, InsertY: ty,
		},
	}
}

func makeDrawing(blocks ...domain.BlockDefinition) *domain.Drawing {
	return &domain.Drawing{Version: "AC1027", Blocks: blocks}
}

// flattenToCanon runs the walker over one block with the default budget.
func flattenToCanon(t *testing.T, doc *domain.Drawing, name string) *geom.Canonicalizer {
	t.Helper()
	block := doc.BlockByName(name)
	require.NotNil(t, block)
	canon := geom.NewCanonicalizer()
	require.NoError(t, flattenBlock(doc, block, canon, DefaultDepthBudget))
	return canon
}

// TestWalker_SingleLine tests the canonical stream of one open line
func TestWalker_SingleLine(t *testing.T) {
	doc := makeDrawing(domain.BlockDefinition{
		Name:     "WALL",
		Handle:   "1A",
		Entities: []domain.Entity{lineEntity("E", 0, 0, 10, 0)},
	})

	canon := flattenToCanon(t, doc, "WALL")

	want := "P|E|0.000000|0.000000|\n" +
		"L|E|0.000000|0.000000|10.000000|0.000000|\n"
	assert.Equal(t, want, string(canon.Bytes()))

	id := geom.Finalize(canon)
	assert.Equal(t, 10.0, id.WidthWorld)
	assert.Equal(t, 0.0, id.HeightWorld)
	assert.NotEmpty(t, id.Hex())
}

// TestWalker_LayerParticipatesInDigest tests layer-sensitive hashing
func TestWalker_LayerParticipatesInDigest(t *testing.T) {
	doc := makeDrawing(
		domain.BlockDefinition{
			Name: "WALL", Handle: "1A",
			Entities: []domain.Entity{lineEntity("E", 0, 0, 10, 0)},
		},
		domain.BlockDefinition{
			Name: "WALL2", Handle: "1B",
			Entities: []domain.Entity{lineEntity("F", 0, 0, 10, 0)},
		},
	)

	wall := geom.Finalize(flattenToCanon(t, doc, "WALL"))
	wall2 := geom.Finalize(flattenToCanon(t, doc, "WALL2"))

	assert.NotEqual(t, wall.Digest, wall2.Digest)
}

// TestWalker_InstanceTranslation tests transform application through an insert
func TestWalker_InstanceTranslation(t *testing.T) {
	doc := makeDrawing(
		domain.BlockDefinition{
			Name: "WALL", Handle: "1A",
			Entities: []domain.Entity{lineEntity("E", 0, 0, 10, 0)},
		},
		domain.BlockDefinition{
			Name: "DUP", Handle: "2A",
			Entities: []domain.Entity{insertEntity("WALL", 1, 1, 0, 5, 5)},
		},
	)

	canon := flattenToCanon(t, doc, "DUP")

	want := "P|E|5.000000|5.000000|\n" +
		"L|E|5.000000|5.000000|15.000000|5.000000|\n"
	assert.Equal(t, want, string(canon.Bytes()))

	wall := geom.Finalize(flattenToCanon(t, doc, "WALL"))
	dup := geom.Finalize(canon)
	assert.NotEqual(t, wall.Digest, dup.Digest)
}

// TestWalker_NestedTransformsCompose tests two levels of placement
func TestWalker_NestedTransformsCompose(t *testing.T) {
	doc := makeDrawing(
		domain.BlockDefinition{
			Name: "LEAF", Handle: "1",
			Entities: []domain.Entity{lineEntity("", 0, 0, 1, 0)},
		},
		domain.BlockDefinition{
			Name: "MID", Handle: "2",
			Entities: []domain.Entity{insertEntity("LEAF", 2, 2, 0, 1, 0)},
		},
		domain.BlockDefinition{
			Name: "TOP", Handle: "3",
			Entities: []domain.Entity{insertEntity("MID", 1, 1, 0, 10, 10)},
		},
	)

	canon := flattenToCanon(t, doc, "TOP")

	// LEAF's (0,0)-(1,0) scaled by 2 and shifted by (1,0), then by (10,10).
	want := "P||11.000000|10.000000|\n" +
		"L||11.000000|10.000000|13.000000|10.000000|\n"
	assert.Equal(t, want, string(canon.Bytes()))
}

// TestWalker_SelfReference tests silent cycle breaking (direct cycle)
func TestWalker_SelfReference(t *testing.T) {
	withCycle := makeDrawing(domain.BlockDefinition{
		Name: "SELF", Handle: "5A",
		Entities: []domain.Entity{
			lineEntity("E", 0, 0, 1, 1),
			insertEntity("SELF", 2, 2, 1, 3, 3),
		},
	})
	withoutCycle := makeDrawing(domain.BlockDefinition{
		Name: "SELF", Handle: "5A",
		Entities: []domain.Entity{
			lineEntity("E", 0, 0, 1, 1),
		},
	})

	cyclic := geom.Finalize(flattenToCanon(t, withCycle, "SELF"))
	plain := geom.Finalize(flattenToCanon(t, withoutCycle, "SELF"))

	// The self-referential branch contributes nothing.
	assert.Equal(t, plain.Digest, cyclic.Digest)
}

// TestWalker_IndirectCycle tests termination of A -> B -> A
func TestWalker_IndirectCycle(t *testing.T) {
	doc := makeDrawing(
		domain.BlockDefinition{
			Name: "A", Handle: "A",
			Entities: []domain.Entity{
				lineEntity("", 0, 0, 1, 0),
				insertEntity("B", 1, 1, 0, 0, 0),
			},
		},
		domain.BlockDefinition{
			Name: "B", Handle: "B",
			Entities: []domain.Entity{
				lineEntity("", 0, 0, 0, 1),
				insertEntity("A", 1, 1, 0, 0, 0),
			},
		},
	)

	canon := flattenToCanon(t, doc, "A")

	// A's line, then B's line; the back-reference to A is dropped.
	assert.True(t, canon.HasGeometry())
	assert.Contains(t, string(canon.Bytes()), "L||0.000000|0.000000|1.000000|0.000000|")
	assert.Contains(t, string(canon.Bytes()), "L||0.000000|0.000000|0.000000|1.000000|")
}

// TestWalker_SiblingReuseIsNotACycle tests pop-after-return discipline
func TestWalker_SiblingReuseIsNotACycle(t *testing.T) {
	doc := makeDrawing(
		domain.BlockDefinition{
			Name: "LEAF", Handle: "1",
			Entities: []domain.Entity{lineEntity("", 0, 0, 1, 0)},
		},
		domain.BlockDefinition{
			Name: "PAIR", Handle: "2",
			Entities: []domain.Entity{
				insertEntity("LEAF", 1, 1, 0, 0, 0),
				insertEntity("LEAF", 1, 1, 0, 5, 0),
			},
		},
	)

	canon := flattenToCanon(t, doc, "PAIR")

	// Both sibling instances contribute: two P plus two L tokens.
	want := "P||0.000000|0.000000|\n" +
		"L||0.000000|0.000000|1.000000|0.000000|\n" +
		"P||5.000000|0.000000|\n" +
		"L||5.000000|0.000000|6.000000|0.000000|\n"
	assert.Equal(t, want, string(canon.Bytes()))
}

// chainDrawing builds N distinct blocks where block i inserts block i+1
// and the last block holds a line.
func chainDrawing(n int) *domain.Drawing {
	blocks := make([]domain.BlockDefinition, 0, n)
	for i := 0; i < n; i++ {
		block := domain.BlockDefinition{
			Name:   fmt.Sprintf("C%d", i),
			Handle: fmt.Sprintf("H%d", i),
		}
		if i == n-1 {
			block.Entities = []domain.Entity{lineEntity("", 0, 0, 1, 0)}
		} else {
			block.Entities = []domain.Entity{insertEntity(fmt.Sprintf("C%d", i+1), 1, 1, 0, 0, 0)}
		}
		blocks = append(blocks, block)
	}
	return makeDrawing(blocks...)
}

// TestWalker_DepthBudgetExceeded tests a 40-deep acyclic chain failing
func TestWalker_DepthBudgetExceeded(t *testing.T) {
	doc := chainDrawing(40)

	err := flattenBlock(doc, doc.BlockByName("C0"), geom.NewCanonicalizer(), DefaultDepthBudget)

	var depthErr *domain.DepthExceededError
	require.ErrorAs(t, err, &depthErr)
	assert.NotEmpty(t, depthErr.Block)
}

// TestWalker_DepthBudgetSufficient tests a 20-deep chain succeeding
func TestWalker_DepthBudgetSufficient(t *testing.T) {
	doc := chainDrawing(20)
	canon := geom.NewCanonicalizer()

	require.NoError(t, flattenBlock(doc, doc.BlockByName("C0"), canon, DefaultDepthBudget))
	assert.True(t, canon.HasGeometry())
}

// TestWalker_MissingReferenceSkipped tests dangling inserts
func TestWalker_MissingReferenceSkipped(t *testing.T) {
	doc := makeDrawing(domain.BlockDefinition{
		Name: "ORPHANED", Handle: "9",
		Entities: []domain.Entity{
			insertEntity("NO_SUCH_BLOCK", 1, 1, 0, 0, 0),
			lineEntity("", 0, 0, 2, 0),
		},
	})

	canon := flattenToCanon(t, doc, "ORPHANED")

	// Only the line contributes.
	want := "P||0.000000|0.000000|\n" +
		"L||0.000000|0.000000|2.000000|0.000000|\n"
	assert.Equal(t, want, string(canon.Bytes()))
}

// TestWalker_UnsupportedKindIgnored tests the explicit ignored arm
func TestWalker_UnsupportedKindIgnored(t *testing.T) {
	doc := makeDrawing(domain.BlockDefinition{
		Name: "HATCHED", Handle: "7",
		Entities: []domain.Entity{
			{Kind: domain.KindHatch, Layer: "fills"},
		},
	})

	canon := flattenToCanon(t, doc, "HATCHED")

	assert.False(t, canon.HasGeometry())
}

// TestWalker_ClosedPolyline tests the closing segment
func TestWalker_ClosedPolyline(t *testing.T) {
	doc := makeDrawing(domain.BlockDefinition{
		Name: "TRI", Handle: "T",
		Entities: []domain.Entity{{
			Kind:   domain.KindPolyline,
			Points: []domain.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}},
			Closed: true,
		}},
	})

	canon := flattenToCanon(t, doc, "TRI")

	want := "P||0.000000|0.000000|\n" +
		"L||0.000000|0.000000|4.000000|0.000000|\n" +
		"L||4.000000|0.000000|0.000000|3.000000|\n" +
		"L||0.000000|3.000000|0.000000|0.000000|\n"
	assert.Equal(t, want, string(canon.Bytes()))
}

// TestWalker_TextBox tests the text footprint box token
func TestWalker_TextBox(t *testing.T) {
	doc := makeDrawing(domain.BlockDefinition{
		Name: "LABEL", Handle: "L",
		Entities: []domain.Entity{{
			Kind:   domain.KindText,
			Layer:  "notes",
			Anchor: domain.Point{X: 10, Y: 20},
			Height: 5,
			Value:  "AB",
		}},
	})

	canon := flattenToCanon(t, doc, "LABEL")

	// h=5, w=5*0.6*2=6; box [10, 20-4] .. [10+6, 20+1].
	want := "B|notes|10.000000|16.000000|16.000000|21.000000|\n"
	assert.Equal(t, want, string(canon.Bytes()))
}

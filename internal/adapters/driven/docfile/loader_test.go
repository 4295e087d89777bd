package docfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-cad/blockdex/internal/core/domain"
)

func writeDrawing(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestLoader_FullDrawing tests decoding every entity shape
func TestLoader_FullDrawing(t *testing.T) {
	path := writeDrawing(t, `{
		"version": "AC1027",
		"unit": "mm",
		"blocks": [
			{
				"name": "WALL",
				"handle": "1A",
				"entities": [
					{"kind": "line", "layer": "E", "points": [{"x": 0, "y": 0}, {"x": 10, "y": 0}]},
					{"kind": "circle", "center": {"x": 1, "y": 2}, "radius": 3},
					{"kind": "arc", "center": {"x": 0, "y": 0}, "radius": 1, "startAngle": 0, "endAngle": 1.57},
					{"kind": "ellipse", "center": {"x": 0, "y": 0}, "majorAxis": {"x": 4, "y": 0}, "axisRatio": 0.5, "fullEllipse": true},
					{"kind": "spline", "points": [{"x": 0, "y": 0}, {"x": 1, "y": 1}], "closed": true},
					{"kind": "text", "layer": "notes", "anchor": {"x": 5, "y": 5}, "height": 2, "value": "HI"},
					{"kind": "mtext", "anchor": {"x": 0, "y": 0}, "height": 1, "value": "multi", "rectWidth": 40},
					{"kind": "insert", "insert": {"block": "DOOR", "scaleX": 1, "scaleY": 1, "rotation": 0.5, "insertX": 7, "insertY": 8}},
					{"kind": "hatch", "layer": "fills"}
				]
			},
			{"name": "DOOR", "handle": "2B", "entities": []}
		]
	}`)

	doc, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "AC1027", doc.Version)
	assert.Equal(t, "mm", doc.Unit)
	require.Len(t, doc.Blocks, 2)

	wall := doc.BlockByName("WALL")
	require.NotNil(t, wall)
	assert.Equal(t, "1A", wall.Handle)
	require.Len(t, wall.Entities, 9)

	line := wall.Entities[0]
	assert.Equal(t, domain.KindLine, line.Kind)
	assert.Equal(t, "E", line.Layer)
	assert.Equal(t, []domain.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, line.Points)

	circle := wall.Entities[1]
	assert.Equal(t, domain.Point{X: 1, Y: 2}, circle.Center)
	assert.Equal(t, 3.0, circle.Radius)

	ellipse := wall.Entities[3]
	assert.Equal(t, domain.Point{X: 4, Y: 0}, ellipse.MajorAxis)
	assert.True(t, ellipse.FullEllipse)

	text := wall.Entities[5]
	assert.Equal(t, domain.Point{X: 5, Y: 5}, text.Anchor)
	assert.Equal(t, "HI", text.Value)

	mtext := wall.Entities[6]
	assert.Equal(t, 40.0, mtext.RectWidth)

	insert := wall.Entities[7]
	require.NotNil(t, insert.Insert)
	assert.Equal(t, "DOOR", insert.Insert.BlockName)
	assert.Equal(t, 7.0, insert.Insert.InsertX)

	hatch := wall.Entities[8]
	assert.Equal(t, domain.KindHatch, hatch.Kind)
}

// TestLoader_MissingFile tests file errors
func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
}

// TestLoader_EmptyPath tests input validation
func TestLoader_EmptyPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), "")

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestLoader_MalformedJSON tests decode errors
func TestLoader_MalformedJSON(t *testing.T) {
	path := writeDrawing(t, `{"blocks": [`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding drawing file")
}

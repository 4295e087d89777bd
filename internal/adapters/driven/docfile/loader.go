// Package docfile loads drawing trees from the JSON interchange files an
// external drawing parser exports. It is the shipped adapter for the
// parsing-collaborator boundary; no CAD file format parsing happens here.
package docfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lattice-cad/blockdex/internal/core/domain"
	"github.com/lattice-cad/blockdex/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.DrawingLoader = (*Loader)(nil)

// Loader reads JSON drawing trees from disk.
type Loader struct{}

// NewLoader creates a drawing loader.
func NewLoader() *Loader {
	return &Loader{}
}

// drawingDTO mirrors domain.Drawing on the wire.
type drawingDTO struct {
	Version string     `json:"version"`
	Unit    string     `json:"unit,omitempty"`
	Blocks  []blockDTO `json:"blocks"`
}

type blockDTO struct {
	Name     string      `json:"name"`
	Handle   string      `json:"handle"`
	Entities []entityDTO `json:"entities"`
}

type entityDTO struct {
	Kind  string `json:"kind"`
	Layer string `json:"layer,omitempty"`

	Points        []pointDTO `json:"points,omitempty"`
	ControlPoints []pointDTO `json:"controlPoints,omitempty"`
	Closed        bool       `json:"closed,omitempty"`

	Center     *pointDTO `json:"center,omitempty"`
	Radius     float64   `json:"radius,omitempty"`
	StartAngle float64   `json:"startAngle,omitempty"`
	EndAngle   float64   `json:"endAngle,omitempty"`

	MajorAxis   *pointDTO `json:"majorAxis,omitempty"`
	AxisRatio   float64   `json:"axisRatio,omitempty"`
	StartParam  float64   `json:"startParam,omitempty"`
	EndParam    float64   `json:"endParam,omitempty"`
	FullEllipse bool      `json:"fullEllipse,omitempty"`

	Anchor    *pointDTO `json:"anchor,omitempty"`
	Height    float64   `json:"height,omitempty"`
	Value     string    `json:"value,omitempty"`
	RectWidth float64   `json:"rectWidth,omitempty"`

	Insert *insertDTO `json:"insert,omitempty"`
}

type insertDTO struct {
	Block    string  `json:"block"`
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
	Rotation float64 `json:"rotation"`
	InsertX  float64 `json:"insertX"`
	InsertY  float64 `json:"insertY"`
}

type pointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Load reads and decodes the drawing at path.
func (l *Loader) Load(_ context.Context, path string) (*domain.Drawing, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty drawing path", domain.ErrInvalidInput)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading drawing file: %w", err)
	}

	var dto drawingDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decoding drawing file: %w", err)
	}

	return toDomain(&dto), nil
}

func toDomain(dto *drawingDTO) *domain.Drawing {
	doc := &domain.Drawing{
		Version: dto.Version,
		Unit:    dto.Unit,
		Blocks:  make([]domain.BlockDefinition, 0, len(dto.Blocks)),
	}
	for _, b := range dto.Blocks {
		block := domain.BlockDefinition{
			Name:     b.Name,
			Handle:   b.Handle,
			Entities: make([]domain.Entity, 0, len(b.Entities)),
		}
		for i := range b.Entities {
			block.Entities = append(block.Entities, toEntity(&b.Entities[i]))
		}
		doc.Blocks = append(doc.Blocks, block)
	}
	return doc
}

func toEntity(dto *entityDTO) domain.Entity {
	e := domain.Entity{
		Kind:        domain.EntityKind(dto.Kind),
		Layer:       dto.Layer,
		Points:      toPoints(dto.Points),
		Closed:      dto.Closed,
		Radius:      dto.Radius,
		StartAngle:  dto.StartAngle,
		EndAngle:    dto.EndAngle,
		AxisRatio:   dto.AxisRatio,
		StartParam:  dto.StartParam,
		EndParam:    dto.EndParam,
		FullEllipse: dto.FullEllipse,
		Height:      dto.Height,
		Value:       dto.Value,
		RectWidth:   dto.RectWidth,
	}
	e.ControlPoints = toPoints(dto.ControlPoints)
	if dto.Center != nil {
		e.Center = domain.Point{X: dto.Center.X, Y: dto.Center.Y}
	}
	if dto.MajorAxis != nil {
		e.MajorAxis = domain.Point{X: dto.MajorAxis.X, Y: dto.MajorAxis.Y}
	}
	if dto.Anchor != nil {
		e.Anchor = domain.Point{X: dto.Anchor.X, Y: dto.Anchor.Y}
	}
	if dto.Insert != nil {
		e.Insert = &domain.InsertRef{
			BlockName: dto.Insert.Block,
			ScaleX:    dto.Insert.ScaleX,
			ScaleY:    dto.Insert.ScaleY,
			Rotation:  dto.Insert.Rotation,
			InsertX:   dto.Insert.InsertX,
			InsertY:   dto.Insert.InsertY,
		}
	}
	return e
}

func toPoints(pts []pointDTO) []domain.Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]domain.Point, len(pts))
	for i, p := range pts {
		out[i] = domain.Point{X: p.X, Y: p.Y}
	}
	return out
}

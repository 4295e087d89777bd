package domain

// EntityKind discriminates the entity union.
type EntityKind string

const (
	// KindPolyline is an open or closed vertex chain.
	KindPolyline EntityKind = "polyline"
	// KindLine is a single straight segment.
	KindLine EntityKind = "line"
	// KindArc is a circular arc (degrees or radians per the parser; this
	// core expects radians).
	KindArc EntityKind = "arc"
	// KindCircle is a full circle.
	KindCircle EntityKind = "circle"
	// KindEllipse is a full or partial ellipse.
	KindEllipse EntityKind = "ellipse"
	// KindSpline is a spline, approximated by its fit or control points.
	KindSpline EntityKind = "spline"
	// KindSolid is a filled triangle or quad.
	KindSolid EntityKind = "solid"
	// KindText is single-line text.
	KindText EntityKind = "text"
	// KindMText is multi-line text with an optional declared column width.
	KindMText EntityKind = "mtext"
	// KindInsert places another block definition with its own transform.
	KindInsert EntityKind = "insert"
	// KindHatch is a fill pattern. Deliberately not canonicalized: its
	// boundary duplicates geometry that is already present as entities.
	KindHatch EntityKind = "hatch"
)

// Point is a 2-D coordinate pair.
type Point struct {
	X float64
	Y float64
}

// Entity is the tagged union over all drawing primitives. Kind selects
// which shape fields are meaningful; the rest are zero. The core only
// reads entities, never mutates them.
type Entity struct {
	Kind EntityKind

	// Layer is the optional layer name. It participates in the content
	// hash: identical geometry on different layers hashes differently.
	Layer string

	// Polyline, line, spline, solid.
	Points        []Point
	ControlPoints []Point
	Closed        bool

	// Arc, circle, ellipse.
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64

	// Ellipse: major axis endpoint relative to the center, minor/major
	// axis ratio, parameter range. FullEllipse overrides the range with
	// a full turn.
	MajorAxis   Point
	AxisRatio   float64
	StartParam  float64
	EndParam    float64
	FullEllipse bool

	// Text, mtext.
	Anchor    Point
	Height    float64
	Value     string
	RectWidth float64

	// Insert.
	Insert *InsertRef
}

// InsertRef references a child block definition together with the local
// placement transform of the instance.
type InsertRef struct {
	// BlockName names the referenced block definition. A name that does
	// not resolve in the drawing is skipped during traversal.
	BlockName string

	ScaleX   float64
	ScaleY   float64
	Rotation float64
	InsertX  float64
	InsertY  float64
}

package geom

import (
	"math"
	"strconv"
	"strings"
)

// coordDigits is the fixed number of fractional digits in canonical
// tokens. Fewer digits would collapse distinct geometry; more would make
// hashes hostage to floating-point noise from transform composition.
const coordDigits = 6

// Canonicalizer accumulates a deterministic token stream and a running
// bounding box from geometry presented to it in world coordinates.
// Token order is insertion order and participates in the digest.
// The zero value is not usable; call NewCanonicalizer.
type Canonicalizer struct {
	buf    strings.Builder
	tokens int

	minX, minY float64
	maxX, maxY float64
}

// NewCanonicalizer returns an empty canonicalizer with a degenerate
// extent.
func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
}

// AddPoint appends a point token.
func (c *Canonicalizer) AddPoint(layer string, x, y float64) {
	c.token("P", layer, x, y)
}

// AddSegment appends a segment token.
func (c *Canonicalizer) AddSegment(layer string, x1, y1, x2, y2 float64) {
	c.token("L", layer, x1, y1, x2, y2)
}

// AddBox appends an axis-aligned box token.
func (c *Canonicalizer) AddBox(layer string, minX, minY, maxX, maxY float64) {
	c.token("B", layer, minX, minY, maxX, maxY)
}

// HasGeometry reports whether at least one token was added.
func (c *Canonicalizer) HasGeometry() bool {
	return c.tokens > 0
}

// Extent returns the running bounding box. Before any token is added it
// is the degenerate (+Inf, +Inf, -Inf, -Inf) state.
func (c *Canonicalizer) Extent() (minX, minY, maxX, maxY float64) {
	return c.minX, c.minY, c.maxX, c.maxY
}

// Bytes returns the accumulated token stream as UTF-8 bytes.
func (c *Canonicalizer) Bytes() []byte {
	return []byte(c.buf.String())
}

// token appends one "TAG|layer|num|num|...|\n" line and folds every
// coordinate into the extent. Coordinates arrive in (x, y) pairs.
func (c *Canonicalizer) token(tag, layer string, coords ...float64) {
	c.buf.WriteString(tag)
	c.buf.WriteByte('|')
	c.buf.WriteString(layer)
	c.buf.WriteByte('|')
	for i := 0; i < len(coords); i += 2 {
		c.extend(coords[i], coords[i+1])
	}
	for _, v := range coords {
		c.buf.WriteString(formatCoord(v))
		c.buf.WriteByte('|')
	}
	c.buf.WriteByte('\n')
	c.tokens++
}

func (c *Canonicalizer) extend(x, y float64) {
	c.minX = math.Min(c.minX, x)
	c.minY = math.Min(c.minY, y)
	c.maxX = math.Max(c.maxX, x)
	c.maxY = math.Max(c.maxY, y)
}

// formatCoord renders a coordinate with exactly coordDigits fractional
// digits and '.' as the separator. strconv never consults the host
// locale, which is what makes digests reproducible across machines.
// Negative zero is folded into positive zero so that -0.0 and 0.0
// canonicalize identically.
func formatCoord(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', coordDigits, 64)
}

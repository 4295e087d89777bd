package geom

import "math"

// Transform represents a 2-D affine transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| m11  m12  tx |
//	| m21  m22  ty |
//
// This represents the transformation:
//
//	x' = m11*x + m12*y + tx
//	y' = m21*x + m22*y + ty
//
// Transforms are immutable values; every operation returns a new one.
// NaN and infinite inputs propagate unchanged — sanitization, if any,
// is the document parser's business.
type Transform struct {
	M11, M12, TX float64
	M21, M22, TY float64
}

// Identity returns the neutral transformation.
func Identity() Transform {
	return Transform{
		M11: 1, M12: 0, TX: 0,
		M21: 0, M22: 1, TY: 0,
	}
}

// FromInstance builds the local placement transform of a block instance:
// scale, then rotate, then translate.
func FromInstance(scaleX, scaleY, rotation, translateX, translateY float64) Transform {
	cos := math.Cos(rotation)
	sin := math.Sin(rotation)
	return Transform{
		M11: scaleX * cos, M12: -scaleY * sin, TX: translateX,
		M21: scaleX * sin, M22: scaleY * cos, TY: translateY,
	}
}

// Compose returns the transform equivalent to applying inner first and
// outer second: Compose(outer, inner).Apply(p) == outer.Apply(inner.Apply(p)).
// True matrix multiplication, so chained nesting accumulates correctly.
func Compose(outer, inner Transform) Transform {
	return Transform{
		M11: outer.M11*inner.M11 + outer.M12*inner.M21,
		M12: outer.M11*inner.M12 + outer.M12*inner.M22,
		TX:  outer.M11*inner.TX + outer.M12*inner.TY + outer.TX,
		M21: outer.M21*inner.M11 + outer.M22*inner.M21,
		M22: outer.M21*inner.M12 + outer.M22*inner.M22,
		TY:  outer.M21*inner.TX + outer.M22*inner.TY + outer.TY,
	}
}

// Apply transforms a point.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.M11*x + t.M12*y + t.TX,
		t.M21*x + t.M22*y + t.TY
}

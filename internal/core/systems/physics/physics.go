package physics

import "math"

// Vec3 is the single point/vector type of the model, in centimetres.
// Positions and displacements share it; a Z of zero (or any fixed
// constant) marks planar motion.
type Vec3 struct{ X, Y, Z float64 }

// V3 is a shorthand constructor.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// V2 builds a planar vector with Z = 0.
func V2(x, y float64) Vec3 { return Vec3{X: x, Y: y} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Length is the Euclidean norm.
func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// PlanarLength ignores Z.
func (v Vec3) PlanarLength() float64 { return math.Hypot(v.X, v.Y) }

// Planar drops the Z component.
func (v Vec3) Planar() Vec3 { return Vec3{X: v.X, Y: v.Y} }

func (v Vec3) DistanceTo(o Vec3) float64 { return o.Sub(v).Length() }

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// ApproxEqual compares component-wise with an absolute tolerance.
func (v Vec3) ApproxEqual(o Vec3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}

// Heading is the planar direction of v in degrees, measured from +X
// towards +Y, in (-180, 180].
func (v Vec3) Heading() float64 { return Degrees(math.Atan2(v.Y, v.X)) }

// RotateZ rotates v about the vertical axis by deg degrees using
// x' = x cos + y sin, y' = -x sin + y cos. Positive angles turn
// clockwise when seen from +Z. Z is passed through.
func (v Vec3) RotateZ(deg float64) Vec3 {
	sin, cos := math.Sincos(Radians(deg))
	return Vec3{
		X: v.X*cos + v.Y*sin,
		Y: -v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// ClampLength shortens v to at most limit along its own direction.
// Vectors already shorter than limit are returned unchanged.
func (v Vec3) ClampLength(limit float64) Vec3 {
	l := v.Length()
	if l <= limit || l == 0 {
		return v
	}
	return Vec3{v.X / l * limit, v.Y / l * limit, v.Z / l * limit}
}

func Radians(deg float64) float64 { return deg * math.Pi / 180 }
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeAngle maps deg into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a <= -180 {
		a += 360
	} else if a > 180 {
		a -= 360
	}
	return a
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

package physics

// Positioner is anything with an absolute position in the scene.
// Sources, sensors and mounts all implement it.
type Positioner interface {
	Position() Vec3
}

// Distance returns the Euclidean distance between two positioned objects.
func Distance(a, b Positioner) float64 { return a.Position().DistanceTo(b.Position()) }

package component

import "math"

// View is the authoritative camera over the fractal plane. Zoom is the
// number of fractal units per screen pixel, so smaller means deeper.
// Zoom stays strictly positive: mutators refuse any step that would break it.
type View struct {
	Zoom    float64
	CenterX float64
	CenterY float64
	Epsilon float64
}

var ViewComponent = NewComponent[View]()

// HomeView is the view restored by a reset.
type HomeView struct {
	View View
}

var HomeViewComponent = NewComponent[HomeView]()

// Uniforms is the float32 contract handed to the shader each frame.
type Uniforms struct {
	Zoom    float32
	Center  [2]float32
	Epsilon float32
}

// Pan moves the center by a displacement already expressed in fractal units.
func (v *View) Pan(dx, dy float64) {
	v.CenterX += dx
	v.CenterY += dy
}

// ZoomBy applies one Euler step zoom += rate*zoom. It reports false and
// leaves the view unchanged when the step would not keep zoom positive.
func (v *View) ZoomBy(rate float64) bool {
	return v.setZoom(v.Zoom + rate*v.Zoom)
}

// ZoomExp compounds continuously, zoom *= e^rate. Splitting rate across
// several calls gives the same result as one call.
func (v *View) ZoomExp(rate float64) bool {
	return v.setZoom(v.Zoom * math.Exp(rate))
}

func (v *View) setZoom(next float64) bool {
	if !validZoom(next) {
		return false
	}
	v.Zoom = next
	return true
}

// Valid reports whether every field is finite and zoom is positive.
func (v View) Valid() bool {
	return validZoom(v.Zoom) && finite(v.CenterX) && finite(v.CenterY) && finite(v.Epsilon)
}

func (v View) Uniforms() Uniforms {
	return Uniforms{
		Zoom:    float32(v.Zoom),
		Center:  [2]float32{float32(v.CenterX), float32(v.CenterY)},
		Epsilon: float32(v.Epsilon),
	}
}

func validZoom(z float64) bool {
	return z > 0 && finite(z)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

package component

// Transform places the rendered quad. X/Y offset it from the screen center
// in pixels; ScaleX/ScaleY are its on-screen size in pixels.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()

package component

// Mandelbrot marks the fractal surface entity.
type Mandelbrot struct{}

var MandelbrotComponent = NewComponent[Mandelbrot]()

package shaders

import _ "embed"

// Mandelbrot is the escape-time fragment shader. It reads the uniforms
// Zoom, Center, Epsilon and Origin (the quad center in screen pixels).
//
//go:embed mandelbrot.kage
var Mandelbrot []byte

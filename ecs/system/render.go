package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
)

// RenderSystem draws every view entity as a shader quad centred on the
// screen and sized by its transform.
type RenderSystem struct {
	shader *ebiten.Shader
}

func NewRenderSystem(shader *ebiten.Shader) *RenderSystem {
	return &RenderSystem{shader: shader}
}

func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || r.shader == nil {
		return
	}

	bounds := screen.Bounds()
	for _, e := range ecs.Query(w, component.ViewComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		view, _ := ecs.Get(w, e, component.ViewComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		quad := quadRect(float64(bounds.Dx()), float64(bounds.Dy()), transform)
		if quad.w <= 0 || quad.h <= 0 {
			continue
		}

		u := view.Uniforms()
		op := &ebiten.DrawRectShaderOptions{
			Uniforms: map[string]any{
				"Zoom":    u.Zoom,
				"Center":  u.Center[:],
				"Epsilon": u.Epsilon,
				"Origin":  []float32{float32(quad.originX), float32(quad.originY)},
			},
		}
		op.GeoM.Translate(quad.x, quad.y)
		screen.DrawRectShader(quad.w, quad.h, r.shader, op)
	}
}

type rect struct {
	x, y             float64
	w, h             int
	originX, originY float64
}

// quadRect places the transform's quad centred on a screen of sw x sh.
func quadRect(sw, sh float64, t *component.Transform) rect {
	w := int(t.ScaleX)
	h := int(t.ScaleY)
	ox := sw/2 + t.X
	oy := sh/2 + t.Y
	return rect{
		x:       ox - float64(w)/2,
		y:       oy - float64(h)/2,
		w:       w,
		h:       h,
		originX: ox,
		originY: oy,
	}
}

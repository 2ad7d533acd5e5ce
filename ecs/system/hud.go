package system

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
	"github.com/milk9111/fractalview/prefabs"
	"golang.org/x/image/font/basicfont"
)

// HUDSystem shows the current view and the key bindings in a corner panel.
type HUDSystem struct {
	ui      *ebitenui.UI
	status  *widget.Text
	help    *widget.Text
	visible bool
}

func NewHUDSystem(spec prefabs.HUDSpec) *HUDSystem {
	var textColor color.Color = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if spec.TextColor != nil {
		textColor = spec.TextColor.Color
	}
	var panelColor color.Color = color.NRGBA{A: 180}
	if spec.PanelColor != nil {
		panelColor = spec.PanelColor.Color
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	status := widget.NewText(widget.TextOpts.Text("", &face, textColor))
	help := widget.NewText(widget.TextOpts.Text("", &face, textColor))

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(status)
	panel.AddChild(help)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &HUDSystem{
		ui:      &ebitenui.UI{Container: root},
		status:  status,
		help:    help,
		visible: spec.Visible,
	}
}

func (h *HUDSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	e, ok := ecs.First(w, component.MandelbrotComponent.Kind())
	if !ok {
		return
	}
	controls := component.DefaultControls()
	if c, ok := ecs.Get(w, e, component.ControlsComponent.Kind()); ok {
		controls = *c
	}
	if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok && input.IsJustPressed(controls.Keys.ToggleHUD) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}

	if view, ok := ecs.Get(w, e, component.ViewComponent.Kind()); ok {
		h.status.Label = hudStatus(*view)
	}
	h.help.Label = hudHelp(controls)
	h.ui.Update()
}

func (h *HUDSystem) Draw(_ *ecs.World, screen *ebiten.Image) {
	if !h.visible {
		return
	}
	h.ui.Draw(screen)
}

func hudStatus(v component.View) string {
	return fmt.Sprintf("zoom    %.6g\ncenter  %.15g, %.15g\nepsilon %g", v.Zoom, v.CenterX, v.CenterY, v.Epsilon)
}

func hudHelp(c component.Controls) string {
	k := c.Keys
	lines := []string{
		fmt.Sprintf("pan      %v %v %v %v / drag", k.PanLeft, k.PanRight, k.PanUp, k.PanDown),
		fmt.Sprintf("zoom     %v + / %v - / wheel", k.ZoomIn, k.ZoomOut),
		fmt.Sprintf("bookmark %v copy  %v paste  %v reset", k.CopyView, k.PasteView, k.ResetView),
		fmt.Sprintf("hud      %v", k.ToggleHUD),
	}
	return strings.Join(lines, "\n")
}

package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ViewerFile is the prefab holding the viewer configuration.
const ViewerFile = "viewer.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ViewerSpec struct {
	Name     string       `yaml:"name"`
	Window   WindowSpec   `yaml:"window"`
	View     ViewSpec     `yaml:"view"`
	Controls ControlsSpec `yaml:"controls"`
	HUD      HUDSpec      `yaml:"hud"`
}

func LoadViewerSpec() (*ViewerSpec, error) {
	spec, err := LoadSpec[ViewerSpec](ViewerFile)
	if err != nil {
		return nil, err
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", ViewerFile, err)
	}
	return &spec, nil
}

func (s *ViewerSpec) validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if !(s.View.Zoom > 0) {
		return fmt.Errorf("view zoom must be positive, got %v", s.View.Zoom)
	}
	if s.Controls.MaxFrameTime < 0 {
		return fmt.Errorf("controls max_frame_time must not be negative, got %v", s.Controls.MaxFrameTime)
	}
	return nil
}

type WindowSpec struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// ViewSpec is also the clipboard bookmark format.
type ViewSpec struct {
	Zoom    float64 `yaml:"zoom"`
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Epsilon float64 `yaml:"epsilon"`
}

type ControlsSpec struct {
	MoveSpeed    float64  `yaml:"move_speed"`
	MouseSpeed   float64  `yaml:"mouse_speed"`
	ZoomSpeed    float64  `yaml:"zoom_speed"`
	MaxFrameTime float64  `yaml:"max_frame_time"`
	ZoomStepping string   `yaml:"zoom_stepping"`
	Keys         KeysSpec `yaml:"keys"`
}

// KeysSpec names keys the way ebiten.Key's text form does ("ArrowLeft", "E").
type KeysSpec struct {
	PanLeft   string `yaml:"pan_left"`
	PanRight  string `yaml:"pan_right"`
	PanUp     string `yaml:"pan_up"`
	PanDown   string `yaml:"pan_down"`
	ZoomIn    string `yaml:"zoom_in"`
	ZoomOut   string `yaml:"zoom_out"`
	CopyView  string `yaml:"copy_view"`
	PasteView string `yaml:"paste_view"`
	ResetView string `yaml:"reset_view"`
	ToggleHUD string `yaml:"toggle_hud"`
}

type HUDSpec struct {
	Visible    bool       `yaml:"visible"`
	TextColor  *YAMLColor `yaml:"text_color"`
	PanelColor *YAMLColor `yaml:"panel_color"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// EncodeBookmark renders a view as YAML text suitable for the clipboard.
func EncodeBookmark(v ViewSpec) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("prefabs: encode bookmark: %w", err)
	}
	return data, nil
}

// DecodeBookmark parses text produced by EncodeBookmark. Missing epsilon is
// left zero for the caller to fill.
func DecodeBookmark(data []byte) (ViewSpec, error) {
	var v ViewSpec
	if err := yaml.Unmarshal(data, &v); err != nil {
		return ViewSpec{}, fmt.Errorf("prefabs: decode bookmark: %w", err)
	}
	if !(v.Zoom > 0) {
		return ViewSpec{}, fmt.Errorf("prefabs: decode bookmark: zoom must be positive, got %v", v.Zoom)
	}
	return v, nil
}

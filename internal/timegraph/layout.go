package timegraph

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout holds the immutable layout constants consumed by every track while a
// frame is built. Units are pixels (terminal cells in the TUI).
type Layout struct {
	TrackTabWidth          float64 `yaml:"track_tab_width"`
	RightMargin            float64 `yaml:"right_margin"`
	ThreadStateTrackHeight float64 `yaml:"thread_state_track_height"`
	EventTrackHeight       float64 `yaml:"event_track_height"`
	TextBoxHeight          float64 `yaml:"text_box_height"`
	SpaceBetweenTracks     float64 `yaml:"space_between_tracks"`
	SpaceBetweenSubtracks  float64 `yaml:"space_between_subtracks"`
	TrackBottomMargin      float64 `yaml:"track_bottom_margin"`
	PickingBoxWidth        float64 `yaml:"picking_box_width"`
	MinVisibleTicks        uint64  `yaml:"min_visible_ticks"`
	ZoomStep               float64 `yaml:"zoom_step"`
	PanStep                float64 `yaml:"pan_step"`
}

// DefaultLayout returns constants tuned for a terminal where one cell is one
// pixel.
func DefaultLayout() Layout {
	return Layout{
		TrackTabWidth:          20,
		RightMargin:            1,
		ThreadStateTrackHeight: 1,
		EventTrackHeight:       1,
		TextBoxHeight:          1,
		SpaceBetweenTracks:     1,
		SpaceBetweenSubtracks:  0,
		TrackBottomMargin:      0,
		PickingBoxWidth:        1,
		MinVisibleTicks:        10,
		ZoomStep:               1.5,
		PanStep:                8,
	}
}

// LoadLayout reads overrides from a YAML file on top of DefaultLayout. An empty
// path returns the defaults.
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()
	if path == "" {
		return layout, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("parse layout %s: %w", path, err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return layout, nil
}

// Validate rejects constants that would make layout degenerate.
func (l Layout) Validate() error {
	var errs []error
	if l.TrackTabWidth < 0 || l.RightMargin < 0 {
		errs = append(errs, errors.New("margins must be >= 0"))
	}
	if l.ThreadStateTrackHeight <= 0 || l.EventTrackHeight <= 0 || l.TextBoxHeight <= 0 {
		errs = append(errs, errors.New("track heights must be > 0"))
	}
	if l.SpaceBetweenTracks < 0 || l.SpaceBetweenSubtracks < 0 || l.TrackBottomMargin < 0 {
		errs = append(errs, errors.New("spacing must be >= 0"))
	}
	if l.PickingBoxWidth <= 0 {
		errs = append(errs, errors.New("picking_box_width must be > 0"))
	}
	if l.ZoomStep <= 1 {
		errs = append(errs, fmt.Errorf("zoom_step must be > 1 (got %g)", l.ZoomStep))
	}
	if l.PanStep <= 0 {
		errs = append(errs, errors.New("pan_step must be > 0"))
	}
	return errors.Join(errs...)
}

package timegraph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/timegraph/internal/testutil"
)

func TestDefaultLayoutIsValid(t *testing.T) {
	if err := DefaultLayout().Validate(); err != nil {
		t.Fatalf("expected default layout to be valid: %v", err)
	}
}

func TestLoadLayoutEmptyPath(t *testing.T) {
	l, err := LoadLayout("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l != DefaultLayout() {
		t.Fatalf("expected defaults, got %#v", l)
	}
}

func TestLoadLayoutOverridesDefaults(t *testing.T) {
	l, err := LoadLayout(testutil.Testdata(t, "layout.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.TrackTabWidth != 28 || l.EventTrackHeight != 2 || l.ZoomStep != 2 {
		t.Fatalf("expected overrides applied, got %#v", l)
	}
	if l.SpaceBetweenTracks != 0 {
		t.Fatalf("expected explicit zero to override, got %v", l.SpaceBetweenTracks)
	}
	if l.PanStep != DefaultLayout().PanStep {
		t.Fatalf("expected untouched fields to keep defaults")
	}
}

func TestLoadLayoutRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("zoom_step: 1\npan_step: 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadLayout(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "zoom_step") || !strings.Contains(err.Error(), "pan_step") {
		t.Fatalf("expected both problems reported, got %v", err)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	if _, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

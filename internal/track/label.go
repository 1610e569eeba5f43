package track

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// FitLabel shortens name+suffix to width cells. The suffix, e.g. " [1234]",
// is kept whole as long as it fits; the name gives way first.
func FitLabel(name, suffix string, width int) string {
	if width <= 0 {
		return ""
	}
	full := name + suffix
	if ansi.StringWidth(full) <= width {
		return full
	}
	sw := ansi.StringWidth(suffix)
	if sw >= width {
		return truncate.StringWithTail(full, uint(width), ellipsis)
	}
	return truncate.StringWithTail(name, uint(width-sw), ellipsis) + suffix
}

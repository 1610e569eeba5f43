package track

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/format/table"
)

// tooltip is the plain-text layout shared by every track: a title, the kind of
// item in parentheses, aligned key/value rows and free text.
type tooltip struct {
	title string
	kind  string
	rows  [][]string
	body  []string
}

func (t *tooltip) row(key string, format string, args ...any) {
	t.rows = append(t.rows, []string{key + ":", fmt.Sprintf(format, args...)})
}

func (t tooltip) String() string {
	var b strings.Builder
	b.WriteString(t.title)
	if t.kind != "" {
		b.WriteString("\n(")
		b.WriteString(t.kind)
		b.WriteString(")")
	}
	if len(t.rows) > 0 {
		b.WriteString("\n")
		for _, line := range table.Format(t.rows, []table.Alignment{table.AlignLeft, table.AlignLeft}) {
			b.WriteString("\n")
			b.WriteString(strings.TrimRight(line, " "))
		}
	}
	if len(t.body) > 0 {
		b.WriteString("\n")
		for _, line := range t.body {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	return b.String()
}

// formatDuration renders nanosecond ticks with an SI prefix, e.g. "1.5 ms".
func formatDuration(d capture.Tick) string {
	if d == 0 {
		return "0 s"
	}
	return humanize.SIWithDigits(float64(d)*1e-9, 2, "s")
}

// formatTimestamp renders a tick as an offset from the capture start.
func formatTimestamp(data *capture.Capture, t capture.Tick) string {
	start, _ := data.Range()
	if t < start {
		return formatDuration(0)
	}
	return "+" + formatDuration(t-start)
}

func threadLabel(data *capture.Capture, tid capture.ThreadID) string {
	return fmt.Sprintf("%s [%d]", data.ThreadName(tid), tid)
}

package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jimezsa/jobportal/internal/paginate"
	"github.com/muesli/termenv"
)

// PageLine renders the page window as e.g. "1 … 4 5 [6] 7 8 … 12". The
// active page is bracketed and, with color, bold.
func PageLine(window paginate.Window, output *termenv.Output, colorEnabled bool) string {
	controls := window.Controls()
	parts := make([]string, 0, len(controls))
	for _, control := range controls {
		switch {
		case control.Kind == paginate.ControlEllipsis:
			parts = append(parts, "…")
		case control.Active:
			label := "[" + strconv.Itoa(control.Page) + "]"
			if colorEnabled && output != nil {
				label = output.String(label).Bold().String()
			}
			parts = append(parts, label)
		default:
			parts = append(parts, strconv.Itoa(control.Page))
		}
	}
	return strings.Join(parts, " ")
}

// WritePageFooter prints the result count and the page window. Nothing is
// written when there is at most one page.
func WritePageFooter(w io.Writer, total int, window paginate.Window, colorEnabled bool) error {
	if window.Total <= 1 {
		return nil
	}
	line := PageLine(window, termenv.NewOutput(w), colorEnabled)
	_, err := fmt.Fprintf(w, "\n%d jobs, page %d of %d\n%s\n", total, window.Current, window.Total, line)
	return err
}

package paginate

// MaxButtons is the number of consecutive page buttons in the window.
const MaxButtons = 5

// Window is the set of page-number controls shown around the current page.
type Window struct {
	Current          int  `json:"current"`
	Total            int  `json:"total"`
	Start            int  `json:"start"`
	End              int  `json:"end"`
	ShowFirst        bool `json:"show_first"`
	LeadingEllipsis  bool `json:"leading_ellipsis"`
	ShowLast         bool `json:"show_last"`
	TrailingEllipsis bool `json:"trailing_ellipsis"`
}

// NewWindow centres up to MaxButtons buttons on current, shifting the range
// left when it runs into the last page.
func NewWindow(current, totalPages int) Window {
	start := 1
	if current > MaxButtons/2 {
		start = current - MaxButtons/2
	}
	end := totalPages
	if start <= totalPages-(MaxButtons-1) {
		end = start + MaxButtons - 1
	}
	if end-start+1 < MaxButtons {
		start = max(1, end-MaxButtons+1)
	}

	return Window{
		Current:          current,
		Total:            totalPages,
		Start:            start,
		End:              end,
		ShowFirst:        start > 1,
		LeadingEllipsis:  start > 2,
		ShowLast:         end < totalPages,
		TrailingEllipsis: end < totalPages-1,
	}
}

// Pages lists the consecutive page numbers in the window.
func (w Window) Pages() []int {
	if w.End < w.Start {
		return nil
	}
	pages := make([]int, 0, w.End-w.Start+1)
	for i := w.Start; i <= w.End; i++ {
		pages = append(pages, i)
	}
	return pages
}

type ControlKind string

const (
	ControlPage     ControlKind = "page"
	ControlEllipsis ControlKind = "ellipsis"
)

// Control is one navigation element in display order.
type Control struct {
	Kind   ControlKind `json:"kind"`
	Page   int         `json:"page,omitempty"`
	Active bool        `json:"active,omitempty"`
}

// Controls expands the window into display order: first page, ellipsis,
// the window pages, ellipsis, last page.
func (w Window) Controls() []Control {
	var controls []Control
	if w.ShowFirst {
		controls = append(controls, Control{Kind: ControlPage, Page: 1})
		if w.LeadingEllipsis {
			controls = append(controls, Control{Kind: ControlEllipsis})
		}
	}
	for _, page := range w.Pages() {
		controls = append(controls, Control{Kind: ControlPage, Page: page, Active: page == w.Current})
	}
	if w.ShowLast {
		if w.TrailingEllipsis {
			controls = append(controls, Control{Kind: ControlEllipsis})
		}
		controls = append(controls, Control{Kind: ControlPage, Page: w.Total})
	}
	return controls
}

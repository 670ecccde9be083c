package paginate

// DefaultPageSize is the number of postings shown per page.
const DefaultPageSize = 6

// TotalPages returns ceil(count/pageSize), or 0 when there is nothing to show.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Page returns items[(currentPage-1)*pageSize : currentPage*pageSize],
// clamped to the slice bounds. currentPage is 1-indexed; out of range pages
// are empty.
func Page[T any](items []T, currentPage, pageSize int) []T {
	if currentPage < 1 || pageSize <= 0 {
		return []T{}
	}
	if currentPage-1 >= TotalPages(len(items), pageSize) {
		return []T{}
	}
	start := (currentPage - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Result bundles one page with the numbers needed to render navigation.
type Result[T any] struct {
	Items      []T    `json:"items"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Window     Window `json:"window"`
}

// New slices items for currentPage and computes the page window.
func New[T any](items []T, currentPage, pageSize int) Result[T] {
	totalPages := TotalPages(len(items), pageSize)
	return Result[T]{
		Items:      Page(items, currentPage, pageSize),
		Page:       currentPage,
		PageSize:   pageSize,
		Total:      len(items),
		TotalPages: totalPages,
		Window:     NewWindow(currentPage, totalPages),
	}
}

package pagination

const (
	// DefaultPerPage is the standard page size when one is not provided.
	DefaultPerPage = 12
	// MaxPerPage caps how many rows any paginated query can request.
	MaxPerPage = 50
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Page    int
	PerPage int
}

// Normalize enforces page >= 1 and a per-page size within [1, MaxPerPage].
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset returns the row offset for the normalized params.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PerPage
}

// TotalPages returns ceil(totalCount / perPage). A page request past this
// count yields an empty result, never an error.
func TotalPages(totalCount int64, perPage int) int {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return int((totalCount + int64(perPage) - 1) / int64(perPage))
}

// ClampLimit bounds a plain row limit into [1, max], substituting def when
// the caller passed nothing.
func ClampLimit(limit, def, max int) int {
	if limit < 1 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

package domain

// ListParams carries skip/limit values from the HTTP layer to the repo layer.
// Skip is a zero-based row offset. Limit is capped at 100 by NewListParams.
type ListParams struct {
	// Skip is the number of rows to skip before the first returned row.
	Skip int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewListParams builds a ListParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (skip=0, limit=20).
// The limit is capped at 100 to prevent runaway queries.
func NewListParams(skip, limit *int) ListParams {
	p := ListParams{Skip: 0, Limit: 20}
	if skip != nil && *skip >= 0 {
		p.Skip = *skip
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

package repository

// Pagination holds pagination parameters for listing entities.
type Pagination struct {
	PageNo   int32
	PageSize int32
}

// DefaultPageSize applies when a caller does not ask for a page size.
const DefaultPageSize = 20

// MaxPageSize caps the page size a caller may ask for.
const MaxPageSize = 200

func (p *Pagination) Normalize() {
	if p.PageNo < 1 {
		p.PageNo = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

func (p *Pagination) Offset() int32 { return (p.PageNo - 1) * p.PageSize }

type FilterOrder struct {
	Filter  string
	OrderBy string
}

func (fo *FilterOrder) GetFilter() string { return fo.Filter }

func (fo *FilterOrder) GetOrderBy() string { return fo.OrderBy }

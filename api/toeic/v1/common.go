// Package toeicv1 holds the JSON messages of the toeic.v1 RPC services.
package toeicv1

// Empty is returned by calls that have no result.
type Empty struct{}

// PaginationRequest selects one page of a list.
type PaginationRequest struct {
	PageNo   int32 `json:"page_no,omitempty" validate:"gte=0"`
	PageSize int32 `json:"page_size,omitempty" validate:"gte=0"`
}

func (p *PaginationRequest) GetPageNo() int32 {
	if p == nil {
		return 0
	}
	return p.PageNo
}

func (p *PaginationRequest) GetPageSize() int32 {
	if p == nil {
		return 0
	}
	return p.PageSize
}

// PaginationResponse describes the page that was returned.
type PaginationResponse struct {
	PageNo   int32 `json:"page_no"`
	PageSize int32 `json:"page_size"`
	Total    int64 `json:"total"`
}

package connectrpc

import (
	toeicv1 "github.com/eslsoft/toeicprep/api/toeic/v1"
	"github.com/eslsoft/toeicprep/internal/repository"
)

func convertPagination(p *toeicv1.PaginationRequest) repository.Pagination {
	pageNo := p.GetPageNo()
	if pageNo <= 0 {
		pageNo = 1
	}
	pageSize := p.GetPageSize()
	if pageSize <= 0 {
		pageSize = repository.DefaultPageSize
	}
	if pageSize > repository.MaxPageSize {
		pageSize = repository.MaxPageSize
	}

	return repository.Pagination{PageNo: pageNo, PageSize: pageSize}
}

func toPbPagination(p repository.Pagination, total int64) toeicv1.PaginationResponse {
	return toeicv1.PaginationResponse{PageNo: p.PageNo, PageSize: p.PageSize, Total: total}
}

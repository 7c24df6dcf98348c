package dto

import "github.com/jpriva/orders_backend/internal/utils/pagination"

// PageResponse is one slice of a larger result set, with the bookkeeping
// fields clients need to render pagers.
type PageResponse[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// NewPageResponse assembles a PageResponse from one page of content and the
// total element count. Content is never nil in the JSON output.
func NewPageResponse[T any](content []T, page, size int, totalElements int64) PageResponse[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := pagination.TotalPages(totalElements, size)
	return PageResponse[T]{
		Content:          content,
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		Number:           page,
		NumberOfElements: len(content),
		First:            pagination.IsFirst(page),
		Last:             pagination.IsLast(page, totalPages),
		Empty:            len(content) == 0,
	}
}

package pagination

import (
	"fmt"

	"github.com/jpriva/orders_backend/internal/apperrors"
)

// DefaultPageSize is used when a list request does not specify a size.
const DefaultPageSize = 20

// MaxPageSize caps the number of elements a single page may hold.
const MaxPageSize = 100

// Params holds validated page coordinates. Page numbers are zero-based.
type Params struct {
	Page int
	Size int
}

// NewParams validates page coordinates. Pages are zero-based and sizes must
// be at least one; requesting a page past the end is not an error here, it
// simply yields an empty page when applied.
func NewParams(page, size int) (Params, error) {
	if page < 0 {
		return Params{}, fmt.Errorf("%w: page must not be negative", apperrors.ErrValidation)
	}
	if size < 1 {
		return Params{}, fmt.Errorf("%w: page size must be at least 1", apperrors.ErrValidation)
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Params{Page: page, Size: size}, nil
}

// Offset returns the number of elements to skip for this page.
func (p Params) Offset() int {
	return p.Page * p.Size
}

// TotalPages returns how many pages of the given size the total fills.
func TotalPages(totalElements int64, size int) int {
	if size < 1 || totalElements <= 0 {
		return 0
	}
	return int((totalElements + int64(size) - 1) / int64(size))
}

// IsFirst reports whether the zero-based page number is the first page.
func IsFirst(page int) bool {
	return page == 0
}

// IsLast reports whether the zero-based page number is the last page.
// An empty result set has a single conceptual page, so page 0 is last.
func IsLast(page, totalPages int) bool {
	return page >= totalPages-1
}

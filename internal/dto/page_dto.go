package dto

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 2000
)

type SortOrder struct {
	Property string
	Desc     bool
}

// PageRequest is a zero-based page/size/sort request.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// OffsetFits reports whether Page*Size is representable, i.e. Offset does not
// overflow.
func (p PageRequest) OffsetFits() bool {
	return p.Page >= 0 && p.Size > 0 && p.Page <= math.MaxInt/p.Size
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages()
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 0
}

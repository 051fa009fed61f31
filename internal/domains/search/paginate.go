package search

import (
	"fmt"
	"hotelmanager/shared"
)

type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"number"`
	Size       int `json:"size"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Paginate slices one 1-based page out of items. Page 0 means the first page and a
// size of 0 puts everything on it. An empty sequence still has one (empty) page.
// A page past the end yields ErrPageOutOfRange and the first page, never a clamped one.
func Paginate[T any](items []T, number, size int) (Page[T], error) {
	if number <= 0 {
		number = 1
	}

	if size <= 0 {
		size = max(len(items), 1)
	}

	page := Page[T]{
		Number:     number,
		Size:       size,
		TotalItems: len(items),
		TotalPages: shared.CalculateTotalPage(len(items), size),
	}

	if number > page.TotalPages {
		first, _ := Paginate(items, 1, size)

		return first, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, number, page.TotalPages)
	}

	start := (number - 1) * size
	end := min(start+size, len(items))
	page.Items = items[start:end:end]
	if page.Items == nil {
		page.Items = []T{}
	}

	return page, nil
}

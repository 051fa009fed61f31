package dto

// Pagination describes the page a listing response carries.
type Pagination struct {
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalPages int `json:"total_page"`
	TotalItems int `json:"total_data"`
}

func NewPagination(page, size, totalPages, totalItems int) Pagination {
	return Pagination{
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

package util

import "math"

// Pages are 1-indexed everywhere: the first page is page 1, and the server
// owns the total count.

func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := int(math.Ceil(float64(total) / float64(pageSize)))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// ClampPage keeps the current page valid after the total or the page size
// changed under it.
func ClampPage(page int, total int64, pageSize int) int {
	if page < 1 {
		return 1
	}
	totalPages := TotalPages(total, pageSize)
	if page > totalPages {
		return totalPages
	}
	return page
}

func NextPage(page int, total int64, pageSize int) int {
	if page < TotalPages(total, pageSize) {
		return page + 1
	}
	return page
}

func BackPage(page int) int {
	if page > 1 {
		return page - 1
	}
	return page
}

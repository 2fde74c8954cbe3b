package pipeline

import (
	"errors"
	"strconv"

	"product-apis/internal/models"
)

// Pagination is the validated page window. Pages are 1-indexed.
type Pagination struct {
	Size   int
	Number int
}

// Offset returns the zero-based start index of the page.
func (p Pagination) Offset() int {
	return (p.Number - 1) * p.Size
}

// ParsePagination validates the raw query parameters. Both are mandatory;
// there is no default page.
func ParsePagination(sizeRaw, numberRaw string) (Pagination, error) {
	if sizeRaw == "" {
		return Pagination{}, errors.New("page_size is required")
	}
	if numberRaw == "" {
		return Pagination{}, errors.New("page_number is required")
	}
	size, err := strconv.Atoi(sizeRaw)
	if err != nil || size <= 0 {
		return Pagination{}, errors.New("page_size must be a positive integer")
	}
	number, err := strconv.Atoi(numberRaw)
	if err != nil || number <= 0 {
		return Pagination{}, errors.New("page_number must be a positive integer")
	}
	return Pagination{Size: size, Number: number}, nil
}

// Paginate returns at most Size records starting at the page offset. An
// offset past the end of the input yields an empty slice, not an error.
func Paginate(products []models.Product, p Pagination) []models.Product {
	start := p.Offset()
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + p.Size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

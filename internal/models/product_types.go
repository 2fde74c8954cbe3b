package models

// Product is the canonical shape every product-returning route emits.
// Optional fields use pointers so that absent upstream values serialize as
// explicit JSON nulls, never as omitted keys.
//
// ProductID is deliberately untyped: the upstream identifier is opaque and
// must be echoed back exactly as received (numeric IDs stay numeric).
type Product struct {
	ProductID       any      `json:"product_id"`
	ProductName     *string  `json:"product_name"`
	BrandName       *string  `json:"brand_name"`
	CategoryName    *string  `json:"category_name"`
	DescriptionText *string  `json:"description_text"`
	Price           *float64 `json:"price"`
	Currency        *string  `json:"currency"`
	Processor       *string  `json:"processor"`
	Memory          *string  `json:"memory"`
	ReleaseDate     *string  `json:"release_date"`
	AverageRating   *float64 `json:"average_rating"`
	RatingCount     *int64   `json:"rating_count"`
}

// MergedProduct is the join output: a Product whose brand_name has been
// replaced by the resolved brand details (null when no brand matched).
type MergedProduct struct {
	ProductID       any          `json:"product_id"`
	ProductName     *string      `json:"product_name"`
	Brand           *BrandDetail `json:"brand"`
	CategoryName    *string      `json:"category_name"`
	DescriptionText *string      `json:"description_text"`
	Price           *float64     `json:"price"`
	Currency        *string      `json:"currency"`
	Processor       *string      `json:"processor"`
	Memory          *string      `json:"memory"`
	ReleaseDate     *string      `json:"release_date"`
	AverageRating   *float64     `json:"average_rating"`
	RatingCount     *int64       `json:"rating_count"`
}

// Merged lifts a Product into a MergedProduct with the given brand attached.
func (p Product) Merged(brand *BrandDetail) MergedProduct {
	return MergedProduct{
		ProductID:       p.ProductID,
		ProductName:     p.ProductName,
		Brand:           brand,
		CategoryName:    p.CategoryName,
		DescriptionText: p.DescriptionText,
		Price:           p.Price,
		Currency:        p.Currency,
		Processor:       p.Processor,
		Memory:          p.Memory,
		ReleaseDate:     p.ReleaseDate,
		AverageRating:   p.AverageRating,
		RatingCount:     p.RatingCount,
	}
}

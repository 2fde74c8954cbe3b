package models

// BrandDetail is the nested brand object attached to a merged product.
// CompanyAge is derived (current year minus year_founded) and is null
// whenever the founding year is absent or non-numeric upstream.
type BrandDetail struct {
	Name        string  `json:"name"`
	YearFounded *int    `json:"year_founded"`
	CompanyAge  *int    `json:"company_age"`
	Address     *string `json:"address"`
}

// BrandInput is the brand object accepted by the mutation routes.
type BrandInput struct {
	Name        *string `json:"name"`
	YearFounded *int    `json:"year_founded"`
	Street      *string `json:"street"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	PostalCode  *string `json:"postal_code"`
	Country     *string `json:"country"`
}

// ProductInput is the request body for create/update. ProductID is optional
// on create; the store generates one when it is absent.
type ProductInput struct {
	ProductID       *string     `json:"product_id"`
	ProductName     *string     `json:"product_name"`
	Brand           *BrandInput `json:"brand"`
	CategoryName    *string     `json:"category_name"`
	DescriptionText *string     `json:"description_text"`
	Price           *float64    `json:"price"`
	Currency        *string     `json:"currency"`
	Processor       *string     `json:"processor"`
	Memory          *string     `json:"memory"`
	ReleaseDate     *string     `json:"release_date"`
	AverageRating   *float64    `json:"average_rating"`
	RatingCount     *int64      `json:"rating_count"`
}

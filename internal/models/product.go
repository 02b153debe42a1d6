package models

// RawProduct is one row of the scraped product listings CSV.
type RawProduct struct {
	ProductID     int
	Name          string
	Ratings       string
	RatingCount   string
	ActualPrice   string
	DiscountPrice string
}

// Product is the cleaned product record. Price and rating fields are nil
// when the source value was missing or non-numeric junk ("FREE", "Get").
type Product struct {
	ProductID     int
	Name          string
	Currency      *string
	Rating        *float64
	RatingCount   *int
	ActualPrice   *float64
	DiscountPrice *float64
}

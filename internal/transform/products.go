package transform

import (
	"go.uber.org/zap"

	"datamart/internal/clean"
	"datamart/internal/models"
)

// ProductsTransformer cleans raw product listings. Price, rating and count
// fields parse to nil on junk content instead of failing the run.
type ProductsTransformer struct {
	logger *zap.Logger
}

func NewProductsTransformer(logger *zap.Logger) *ProductsTransformer {
	return &ProductsTransformer{logger: logger}
}

func (t *ProductsTransformer) Transform(raw []models.RawProduct) []models.Product {
	products := make([]models.Product, 0, len(raw))
	for _, row := range raw {
		products = append(products, models.Product{
			ProductID:     row.ProductID,
			Name:          fillUnknown(row.Name),
			Currency:      clean.CurrencySymbol(row.ActualPrice),
			Rating:        clean.ParseRating(row.Ratings),
			RatingCount:   clean.ParseRatingCount(row.RatingCount),
			ActualPrice:   clean.ParsePrice(row.ActualPrice),
			DiscountPrice: clean.ParsePrice(row.DiscountPrice),
		})
	}

	t.logger.Info("transformed products", zap.Int("rows", len(products)))
	return products
}

package pipeline

import (
	"product-apis/internal/models"
)

// Normalize turns a raw upstream payload into canonical products. Items that
// are not objects, lack an identity field, or carry an error marker are
// dropped silently; the caller never learns how many were filtered out.
func Normalize(items []any) []models.Product {
	out := make([]models.Product, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if !isValidRecord(rec) {
			continue
		}
		out = append(out, mapRecord(rec))
	}
	return out
}

func isValidRecord(rec map[string]any) bool {
	if v, ok := rec["productId"]; !ok || v == nil {
		return false
	}
	if v, ok := rec["productName"]; !ok || v == nil {
		return false
	}
	if truthy(rec["error"]) {
		return false
	}
	if s, ok := rec["status"].(string); ok && s == "error" {
		return false
	}
	return true
}

// mapRecord reshapes one surviving item into the canonical field set. Absent
// or mistyped optional fields become nil (explicit JSON null), never a
// default business value.
func mapRecord(rec map[string]any) models.Product {
	return models.Product{
		ProductID:       rec["productId"],
		ProductName:     stringField(rec, "productName"),
		BrandName:       stringField(rec, "brandName"),
		CategoryName:    stringField(rec, "category"),
		DescriptionText: stringField(rec, "description"),
		Price:           numberField(rec, "price"),
		Currency:        stringField(rec, "currency"),
		Processor:       stringField(rec, "processor"),
		Memory:          stringField(rec, "memory"),
		ReleaseDate:     stringField(rec, "releaseDate"),
		AverageRating:   numberField(rec, "averageRating"),
		RatingCount:     intField(rec, "ratingCount"),
	}
}

// truthy mirrors loose JSON semantics: error markers arrive as booleans,
// strings or numbers depending on the upstream's mood.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

func stringField(rec map[string]any, key string) *string {
	if s, ok := rec[key].(string); ok {
		return &s
	}
	return nil
}

func numberField(rec map[string]any, key string) *float64 {
	if f, ok := rec[key].(float64); ok {
		return &f
	}
	return nil
}

func intField(rec map[string]any, key string) *int64 {
	if f, ok := rec[key].(float64); ok {
		n := int64(f)
		return &n
	}
	return nil
}

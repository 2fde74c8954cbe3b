package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-apis/internal/models"
)

func strPtr(s string) *string { return &s }

func productWithDate(id string, date *string) models.Product {
	return models.Product{ProductID: id, ProductName: strPtr(id), ReleaseDate: date}
}

func productWithBrand(id string, brand *string) models.Product {
	return models.Product{ProductID: id, ProductName: strPtr(id), BrandName: brand}
}

func TestParseDateFilter(t *testing.T) {
	t.Run("both bounds optional", func(t *testing.T) {
		f, err := ParseDateFilter("", "")
		require.NoError(t, err)
		assert.False(t, f.Active())
	})

	t.Run("single bound activates the filter", func(t *testing.T) {
		f, err := ParseDateFilter("2024-01-01", "")
		require.NoError(t, err)
		assert.True(t, f.Active())
		assert.Nil(t, f.End)
	})

	t.Run("invalid start is a caller error", func(t *testing.T) {
		_, err := ParseDateFilter("01/02/2024", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "release_date_start")
	})

	t.Run("invalid end is a caller error", func(t *testing.T) {
		_, err := ParseDateFilter("", "2024-13-40")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "release_date_end")
	})
}

func TestFilterByDate(t *testing.T) {
	products := []models.Product{
		productWithDate("a", strPtr("2024-01-10")),
		productWithDate("b", strPtr("2024-02-20")),
		productWithDate("c", strPtr("2024-03-30")),
		productWithDate("d", nil),
		productWithDate("e", strPtr("not-a-date")),
	}

	t.Run("no active filter passes everything through, dateless included", func(t *testing.T) {
		f, _ := ParseDateFilter("", "")
		out := FilterByDate(products, f)
		assert.Len(t, out, 5)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		f, _ := ParseDateFilter("2024-01-10", "2024-02-20")
		out := FilterByDate(products, f)
		require.Len(t, out, 2)
		assert.Equal(t, "a", out[0].ProductID)
		assert.Equal(t, "b", out[1].ProductID)
	})

	t.Run("missing or unparseable dates are excluded when any bound is active", func(t *testing.T) {
		f, _ := ParseDateFilter("2020-01-01", "")
		out := FilterByDate(products, f)
		assert.Len(t, out, 3)
		for _, p := range out {
			assert.NotNil(t, p.ReleaseDate)
		}
	})

	t.Run("start only", func(t *testing.T) {
		f, _ := ParseDateFilter("2024-02-20", "")
		out := FilterByDate(products, f)
		require.Len(t, out, 2)
		assert.Equal(t, "b", out[0].ProductID)
	})

	t.Run("end only", func(t *testing.T) {
		f, _ := ParseDateFilter("", "2024-01-10")
		out := FilterByDate(products, f)
		require.Len(t, out, 1)
		assert.Equal(t, "a", out[0].ProductID)
	})
}

func TestParseBrandFilter(t *testing.T) {
	t.Run("empty string means no filter", func(t *testing.T) {
		assert.Nil(t, ParseBrandFilter(""))
	})

	t.Run("whitespace-only tokens mean no filter", func(t *testing.T) {
		assert.Nil(t, ParseBrandFilter(" , ,  "))
	})

	t.Run("tokens are trimmed, empties dropped", func(t *testing.T) {
		set := ParseBrandFilter(" Apple , , Samsung")
		assert.Equal(t, []string{"Apple", "Samsung"}, set)
	})
}

func TestFilterByBrand(t *testing.T) {
	products := []models.Product{
		productWithBrand("a", strPtr("Apple")),
		productWithBrand("b", strPtr("Samsung")),
		productWithBrand("c", strPtr("apple")),
		productWithBrand("d", nil),
	}

	t.Run("nil set passes everything through", func(t *testing.T) {
		out := FilterByBrand(products, nil)
		assert.Len(t, out, 4)
	})

	t.Run("matching is exact and case-sensitive", func(t *testing.T) {
		out := FilterByBrand(products, []string{"Apple"})
		require.Len(t, out, 1)
		assert.Equal(t, "a", out[0].ProductID)
	})

	t.Run("multiple brands compose as a set", func(t *testing.T) {
		out := FilterByBrand(products, []string{"Apple", "Samsung"})
		assert.Len(t, out, 2)
	})

	t.Run("brandless records are excluded when active", func(t *testing.T) {
		out := FilterByBrand(products, []string{"Nokia"})
		assert.Empty(t, out)
	})
}

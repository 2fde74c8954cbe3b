package pipeline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-apis/internal/models"
)

var testNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

func decodeDirectory(t *testing.T, raw string) []BrandRecord {
	t.Helper()
	var items []any
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	return ParseBrandRecords(items)
}

func TestParseBrandRecords(t *testing.T) {
	t.Run("parses name, year and address components", func(t *testing.T) {
		dir := decodeDirectory(t, `[{
			"name": "Apple",
			"yearFounded": 1976,
			"address": {"street": "1 Apple Park Way", "city": "Cupertino", "state": "CA", "postalCode": "95014", "country": "USA"}
		}]`)

		require.Len(t, dir, 1)
		assert.Equal(t, "Apple", dir[0].Name)
		require.NotNil(t, dir[0].YearFounded)
		assert.Equal(t, 1976, *dir[0].YearFounded)
		assert.Equal(t, "Cupertino", *dir[0].City)
	})

	t.Run("numeric string founding year accepted", func(t *testing.T) {
		dir := decodeDirectory(t, `[{"name": "Acme", "yearFounded": "1999"}]`)
		require.Len(t, dir, 1)
		require.NotNil(t, dir[0].YearFounded)
		assert.Equal(t, 1999, *dir[0].YearFounded)
	})

	t.Run("non-numeric founding year becomes unknown", func(t *testing.T) {
		dir := decodeDirectory(t, `[{"name": "Acme", "yearFounded": "unknown"}]`)
		require.Len(t, dir, 1)
		assert.Nil(t, dir[0].YearFounded)
	})

	t.Run("entries without a name are dropped", func(t *testing.T) {
		dir := decodeDirectory(t, `[{"yearFounded": 2000}, {"name": ""}, "junk", {"name": "Keep"}]`)
		require.Len(t, dir, 1)
		assert.Equal(t, "Keep", dir[0].Name)
	})
}

func TestBrandRecordDetail(t *testing.T) {
	t.Run("company age is current year minus founding year", func(t *testing.T) {
		year := 1976
		d := (BrandRecord{Name: "Apple", YearFounded: &year}).Detail(testNow)
		require.NotNil(t, d.CompanyAge)
		assert.Equal(t, 50, *d.CompanyAge)
	})

	t.Run("unknown founding year yields null age", func(t *testing.T) {
		d := (BrandRecord{Name: "Acme"}).Detail(testNow)
		assert.Nil(t, d.YearFounded)
		assert.Nil(t, d.CompanyAge)
	})
}

func TestComposeAddress(t *testing.T) {
	street, city, country := "12 Main St", "Springfield", "USA"
	empty := "  "

	t.Run("joins non-empty components with comma", func(t *testing.T) {
		addr := ComposeAddress(&street, &city, nil, &empty, &country)
		require.NotNil(t, addr)
		assert.Equal(t, "12 Main St, Springfield, USA", *addr)
	})

	t.Run("all components absent means null address", func(t *testing.T) {
		assert.Nil(t, ComposeAddress(nil, &empty, nil, nil, nil))
	})
}

func TestJoin(t *testing.T) {
	directory := decodeDirectory(t, `[
		{"name": "Apple", "yearFounded": 1976, "address": {"city": "Cupertino", "country": "USA"}},
		{"name": "Apple", "yearFounded": 2000},
		{"name": "Samsung", "yearFounded": 1938}
	]`)

	t.Run("attaches matching brand details", func(t *testing.T) {
		products := []models.Product{productWithBrand("a", strPtr("Apple"))}
		out := Join(products, directory, testNow)
		require.Len(t, out, 1)
		require.NotNil(t, out[0].Brand)
		assert.Equal(t, "Apple", out[0].Brand.Name)
		require.NotNil(t, out[0].Brand.Address)
		assert.Equal(t, "Cupertino, USA", *out[0].Brand.Address)
	})

	t.Run("first directory match wins on duplicates", func(t *testing.T) {
		products := []models.Product{productWithBrand("a", strPtr("Apple"))}
		out := Join(products, directory, testNow)
		require.NotNil(t, out[0].Brand.YearFounded)
		assert.Equal(t, 1976, *out[0].Brand.YearFounded)
	})

	t.Run("no match leaves brand null and other fields populated", func(t *testing.T) {
		name := "gadget"
		products := []models.Product{{
			ProductID:   "x",
			ProductName: &name,
			BrandName:   strPtr("Nokia"),
		}}
		out := Join(products, directory, testNow)
		require.Len(t, out, 1)
		assert.Nil(t, out[0].Brand)
		assert.Equal(t, "gadget", *out[0].ProductName)
		assert.Equal(t, "x", out[0].ProductID)
	})

	t.Run("brandless product gets null brand", func(t *testing.T) {
		products := []models.Product{productWithBrand("a", nil)}
		out := Join(products, directory, testNow)
		require.Len(t, out, 1)
		assert.Nil(t, out[0].Brand)
	})

	t.Run("merged output serializes brand as nested object", func(t *testing.T) {
		products := []models.Product{productWithBrand("a", strPtr("Samsung"))}
		out := Join(products, directory, testNow)

		raw, err := json.Marshal(out[0])
		require.NoError(t, err)
		var fields map[string]any
		require.NoError(t, json.Unmarshal(raw, &fields))

		assert.Contains(t, fields, "brand")
		assert.NotContains(t, fields, "brand_name")
		brand := fields["brand"].(map[string]any)
		assert.Equal(t, "Samsung", brand["name"])
		assert.Equal(t, float64(1938), brand["year_founded"])
		assert.Equal(t, float64(testNow.Year()-1938), brand["company_age"])
		assert.Nil(t, brand["address"])
	})
}

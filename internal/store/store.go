package store

import (
	"database/sql"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"product-apis/internal/models"
	"product-apis/internal/pipeline"
)

// ErrNotFound is returned by Update/Delete when the product identifier does
// not exist. Handlers translate it to 404.
var ErrNotFound = errors.New("product not found")

// Store is the persistence adapter over the embedded database. Read queries
// mirror the in-memory filter/paginate/join stages as a single parameterized
// SQL statement.
type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// QueryMerged serves the merged product view from the two tables with date
// and brand filtering pushed into the WHERE clause. Results are ordered by
// product_id so pagination is deterministic.
func (s *Store) QueryMerged(f pipeline.DateFilter, brands []string, page pipeline.Pagination, now time.Time) ([]models.MergedProduct, error) {
	var qb strings.Builder
	var args []any

	qb.WriteString(`
		SELECT
			p.product_id, p.product_name, p.category_name, p.description_text,
			p.price, p.currency, p.processor, p.memory, p.release_date,
			p.average_rating, p.rating_count,
			b.name, b.year_founded, b.street, b.city, b.state, b.postal_code, b.country
		FROM products p
		LEFT JOIN brands b ON b.name = p.brand_name
	`)

	var where []string
	if f.Active() {
		// date() is NULL for missing and for unparseable values, so rows
		// without a usable release date drop out of any bounded query.
		where = append(where, "date(p.release_date) IS NOT NULL")
	}
	if f.Start != nil {
		where = append(where, "p.release_date >= ?")
		args = append(args, f.Start.Format(pipeline.DateLayout))
	}
	if f.End != nil {
		where = append(where, "p.release_date <= ?")
		args = append(args, f.End.Format(pipeline.DateLayout))
	}
	if len(brands) > 0 {
		placeholders := strings.Repeat("?,", len(brands))
		where = append(where, "p.brand_name IN ("+placeholders[:len(placeholders)-1]+")")
		for _, name := range brands {
			args = append(args, name)
		}
	}
	if len(where) > 0 {
		qb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}

	qb.WriteString(" ORDER BY p.product_id LIMIT ? OFFSET ?")
	args = append(args, page.Size, page.Offset())

	rows, err := s.DB.Query(qb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	merged := make([]models.MergedProduct, 0, page.Size)
	for rows.Next() {
		var (
			productID, productName                           string
			category, description, currency, processor       sql.NullString
			memory, releaseDate                              sql.NullString
			price, avgRating                                 sql.NullFloat64
			ratingCount                                      sql.NullInt64
			bName, bStreet, bCity, bState, bPostal, bCountry sql.NullString
			bYear                                            sql.NullInt64
		)
		if err := rows.Scan(
			&productID, &productName, &category, &description,
			&price, &currency, &processor, &memory, &releaseDate,
			&avgRating, &ratingCount,
			&bName, &bYear, &bStreet, &bCity, &bState, &bPostal, &bCountry,
		); err != nil {
			return nil, err
		}

		var brand *models.BrandDetail
		if bName.Valid {
			rec := pipeline.BrandRecord{
				Name:        bName.String,
				YearFounded: nullIntPtr(bYear),
				Street:      nullStrPtr(bStreet),
				City:        nullStrPtr(bCity),
				State:       nullStrPtr(bState),
				PostalCode:  nullStrPtr(bPostal),
				Country:     nullStrPtr(bCountry),
			}
			brand = rec.Detail(now)
		}

		merged = append(merged, models.MergedProduct{
			ProductID:       storedProductID(productID),
			ProductName:     &productName,
			Brand:           brand,
			CategoryName:    nullStrPtr(category),
			DescriptionText: nullStrPtr(description),
			Price:           nullFloatPtr(price),
			Currency:        nullStrPtr(currency),
			Processor:       nullStrPtr(processor),
			Memory:          nullStrPtr(memory),
			ReleaseDate:     nullStrPtr(releaseDate),
			AverageRating:   nullFloatPtr(avgRating),
			RatingCount:     nullInt64Ptr(ratingCount),
		})
	}
	return merged, rows.Err()
}

// ValidateProductInput checks the mutation body and returns every problem at
// once, not just the first.
func ValidateProductInput(in models.ProductInput) []string {
	var errs []string
	if in.ProductName == nil || strings.TrimSpace(*in.ProductName) == "" {
		errs = append(errs, "product_name is required")
	}
	if in.Brand == nil || in.Brand.Name == nil || strings.TrimSpace(*in.Brand.Name) == "" {
		errs = append(errs, "brand.name is required")
	}
	if in.CategoryName == nil || strings.TrimSpace(*in.CategoryName) == "" {
		errs = append(errs, "category_name is required")
	}
	if in.Price == nil {
		errs = append(errs, "price is required and must be a number")
	}
	if in.Currency == nil || strings.TrimSpace(*in.Currency) == "" {
		errs = append(errs, "currency is required")
	}
	if in.ReleaseDate == nil {
		errs = append(errs, "release_date is required and must be a valid date (YYYY-MM-DD)")
	} else if _, err := time.Parse(pipeline.DateLayout, *in.ReleaseDate); err != nil {
		errs = append(errs, "release_date is required and must be a valid date (YYYY-MM-DD)")
	}
	return errs
}

// CreateProduct upserts the brand row first, then inserts the product. The
// input must already be validated. Returns the stored product identifier,
// generated when the body omitted one.
func (s *Store) CreateProduct(in models.ProductInput) (string, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if err := upsertBrand(tx, in.Brand); err != nil {
		return "", err
	}

	id := uuid.NewString()
	if in.ProductID != nil && strings.TrimSpace(*in.ProductID) != "" {
		id = *in.ProductID
	}

	query := `
		INSERT INTO products
		(product_id, product_name, brand_name, category_name, description_text,
		 price, currency, processor, memory, release_date, average_rating, rating_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.Exec(query,
		id, *in.ProductName, *in.Brand.Name, in.CategoryName, in.DescriptionText,
		*in.Price, *in.Currency, in.Processor, in.Memory, *in.ReleaseDate,
		in.AverageRating, in.RatingCount,
	)
	if err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// UpdateProduct replaces the stored row for an existing product identifier.
func (s *Store) UpdateProduct(id string, in models.ProductInput) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRow("SELECT 1 FROM products WHERE product_id = ?", id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}

	if err := upsertBrand(tx, in.Brand); err != nil {
		return err
	}

	query := `
		UPDATE products SET
			product_name = ?, brand_name = ?, category_name = ?, description_text = ?,
			price = ?, currency = ?, processor = ?, memory = ?, release_date = ?,
			average_rating = ?, rating_count = ?
		WHERE product_id = ?`

	_, err = tx.Exec(query,
		*in.ProductName, *in.Brand.Name, in.CategoryName, in.DescriptionText,
		*in.Price, *in.Currency, in.Processor, in.Memory, *in.ReleaseDate,
		in.AverageRating, in.RatingCount, id,
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteProduct removes the row; a missing identifier is ErrNotFound.
func (s *Store) DeleteProduct(id string) error {
	result, err := s.DB.Exec("DELETE FROM products WHERE product_id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// upsertBrand is insert-if-absent by name; an existing brand row is left
// untouched.
func upsertBrand(tx *sql.Tx, b *models.BrandInput) error {
	query := `
		INSERT INTO brands (name, year_founded, street, city, state, postal_code, country)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO NOTHING`
	_, err := tx.Exec(query, *b.Name, b.YearFounded, b.Street, b.City, b.State, b.PostalCode, b.Country)
	return err
}

// ImportRecords refreshes the store from live upstream data: brands first so
// the product rows have something to join against, replacing on conflict in
// both tables. Records that cannot keep product_name NOT NULL are skipped the
// same way the read path drops them.
func (s *Store) ImportRecords(products []models.Product, brands []pipeline.BrandRecord) (int, int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	brandQuery := `
		INSERT OR REPLACE INTO brands
		(name, year_founded, street, city, state, postal_code, country)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	brandCount := 0
	for _, b := range brands {
		if _, err := tx.Exec(brandQuery, b.Name, b.YearFounded, b.Street, b.City, b.State, b.PostalCode, b.Country); err != nil {
			return 0, 0, err
		}
		brandCount++
	}

	productQuery := `
		INSERT OR REPLACE INTO products
		(product_id, product_name, brand_name, category_name, description_text,
		 price, currency, processor, memory, release_date, average_rating, rating_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	productCount := 0
	for _, p := range products {
		if p.ProductName == nil {
			continue
		}
		id := productIDKey(p.ProductID)
		if id == "" {
			continue
		}
		if _, err := tx.Exec(productQuery,
			id, *p.ProductName, p.BrandName, p.CategoryName, p.DescriptionText,
			p.Price, p.Currency, p.Processor, p.Memory, p.ReleaseDate,
			p.AverageRating, p.RatingCount,
		); err != nil {
			return 0, 0, err
		}
		productCount++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return productCount, brandCount, nil
}

// productIDKey flattens the opaque upstream identifier into the TEXT primary
// key. Numeric IDs keep their literal form ("1", not "1.000000").
func productIDKey(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// storedProductID restores the JSON type of an identifier coming back out of
// the TEXT column: numeric upstream IDs round-trip as numbers on every serving
// path, anything else stays a string.
func storedProductID(id string) any {
	if f, err := strconv.ParseFloat(id, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return id
}

func nullStrPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

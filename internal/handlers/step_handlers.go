package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-apis/internal/models"
	"product-apis/internal/pipeline"
)

// GetAllProducts is the handler for GET /step1: fetch, validate, normalize.
func (h *Handlers) GetAllProducts(c *gin.Context) {
	raw, err := h.Upstream.FetchProducts(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, pipeline.Normalize(raw))
}

// GetProductsByReleaseDate is the handler for GET /step2: step1 plus an
// inclusive release-date range.
func (h *Handlers) GetProductsByReleaseDate(c *gin.Context) {
	dateFilter, err := pipeline.ParseDateFilter(c.Query("release_date_start"), c.Query("release_date_end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, err := h.Upstream.FetchProducts(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	products := pipeline.FilterByDate(pipeline.Normalize(raw), dateFilter)
	c.JSON(http.StatusOK, products)
}

// GetProductsByBrand is the handler for GET /step3: step2 plus a
// comma-separated brand filter.
func (h *Handlers) GetProductsByBrand(c *gin.Context) {
	dateFilter, err := pipeline.ParseDateFilter(c.Query("release_date_start"), c.Query("release_date_end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	brandSet := pipeline.ParseBrandFilter(c.Query("brands"))

	raw, err := h.Upstream.FetchProducts(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	products := pipeline.Normalize(raw)
	products = pipeline.FilterByDate(products, dateFilter)
	products = pipeline.FilterByBrand(products, brandSet)
	c.JSON(http.StatusOK, products)
}

// GetProductsPaginated is the handler for GET /step4: step3 plus mandatory
// pagination.
func (h *Handlers) GetProductsPaginated(c *gin.Context) {
	products, ok := h.filteredPage(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetMergedProducts is the handler for GET /step5: the step4 pipeline joined
// against the brand directory. Both upstream payloads are fetched
// concurrently; either failure fails the request.
func (h *Handlers) GetMergedProducts(c *gin.Context) {
	dateFilter, err := pipeline.ParseDateFilter(c.Query("release_date_start"), c.Query("release_date_end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	brandSet := pipeline.ParseBrandFilter(c.Query("brands"))
	page, err := pipeline.ParsePagination(c.Query("page_size"), c.Query("page_number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rawProducts, rawBrands, err := h.Upstream.FetchBoth(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	products := pipeline.Normalize(rawProducts)
	products = pipeline.FilterByDate(products, dateFilter)
	products = pipeline.FilterByBrand(products, brandSet)
	products = pipeline.Paginate(products, page)

	directory := pipeline.ParseBrandRecords(rawBrands)
	c.JSON(http.StatusOK, pipeline.Join(products, directory, h.Now()))
}

// filteredPage runs the shared parse/fetch/filter/paginate sequence for the
// single-source routes. It writes the error response itself and reports
// success through ok.
func (h *Handlers) filteredPage(c *gin.Context) ([]models.Product, bool) {
	dateFilter, err := pipeline.ParseDateFilter(c.Query("release_date_start"), c.Query("release_date_end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	brandSet := pipeline.ParseBrandFilter(c.Query("brands"))
	page, err := pipeline.ParsePagination(c.Query("page_size"), c.Query("page_number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	raw, err := h.Upstream.FetchProducts(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err)
		return nil, false
	}

	products := pipeline.Normalize(raw)
	products = pipeline.FilterByDate(products, dateFilter)
	products = pipeline.FilterByBrand(products, brandSet)
	return pipeline.Paginate(products, page), true
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"product-apis/internal/models"
	"product-apis/internal/pipeline"
	"product-apis/internal/store"
)

// GetStoredProducts is the handler for GET /step6: same query surface as
// step5 but served from the local store through a single SQL query.
func (h *Handlers) GetStoredProducts(c *gin.Context) {
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

	merged, err := h.Store.QueryMerged(dateFilter, brandSet, page, h.Now())
	if err != nil {
		log.Error().Err(err).Msg("store query failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to query product store"})
		return
	}
	c.JSON(http.StatusOK, merged)
}

// SyncStore is the handler for POST /step6/sync: pull both upstream payloads
// and refresh the local tables from them.
func (h *Handlers) SyncStore(c *gin.Context) {
	rawProducts, rawBrands, err := h.Upstream.FetchBoth(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	products := pipeline.Normalize(rawProducts)
	directory := pipeline.ParseBrandRecords(rawBrands)

	nProducts, nBrands, err := h.Store.ImportRecords(products, directory)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Store synchronized",
		"products": nProducts,
		"brands":   nBrands,
	})
}

// CreateProduct is the handler for POST /step7/create.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := store.ValidateProductInput(input); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	id, err := h.Store.CreateProduct(input)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Product created successfully",
		"product_id": id,
	})
}

// UpdateProduct is the handler for PUT /step7/update/:product_id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id := c.Param("product_id")

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := store.ValidateProductInput(input); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := h.Store.UpdateProduct(id, input); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Product updated successfully",
		"product_id": id,
	})
}

// DeleteProduct is the handler for DELETE /step7/delete/:product_id.
// Successful deletions return no body.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id := c.Param("product_id")

	if err := h.Store.DeleteProduct(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

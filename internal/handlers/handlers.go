package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"product-apis/internal/store"
	"product-apis/internal/upstream"
)

// Handlers holds all dependencies for the route handlers. Now is injectable
// so tests control the year used for company_age.
type Handlers struct {
	Upstream *upstream.Client
	Store    *store.Store
	Now      func() time.Time
}

func New(up *upstream.Client, st *store.Store) *Handlers {
	return &Handlers{
		Upstream: up,
		Store:    st,
		Now:      time.Now,
	}
}

// upstreamError maps a fetch failure to 502. The detailed cause stays in the
// server log; callers only see which class of failure occurred.
func (h *Handlers) upstreamError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("upstream fetch failed")
	if errors.Is(err, upstream.ErrBadFormat) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "External API returned unexpected format"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch data from external provider"})
}

// storeError maps a persistence failure on the mutation routes to 500.
func (h *Handlers) storeError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("store operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}

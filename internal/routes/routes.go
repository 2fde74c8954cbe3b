package routes

import (
	"github.com/gin-gonic/gin"

	"product-apis/internal/handlers"
)

// CORSMiddleware keeps the API usable from browser frontends; the original
// deployment served one.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	router.GET("/health", h.Health)

	// --- Upstream pipeline routes ---
	router.GET("/step1", h.GetAllProducts)
	router.GET("/step2", h.GetProductsByReleaseDate)
	router.GET("/step3", h.GetProductsByBrand)
	router.GET("/step4", h.GetProductsPaginated)
	router.GET("/step5", h.GetMergedProducts)

	// --- Store-backed routes ---
	router.GET("/step6", h.GetStoredProducts)
	router.POST("/step6/sync", h.SyncStore)

	step7 := router.Group("/step7")
	{
		step7.POST("/create", h.CreateProduct)
		step7.PUT("/update/:product_id", h.UpdateProduct)
		step7.DELETE("/delete/:product_id", h.DeleteProduct)
	}

	// --- Placeholders ---
	router.GET("/step8", h.ExportSpreadsheet)
	router.GET("/step9", h.ConvertImagesToVideo)

	return router
}

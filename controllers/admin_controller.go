package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReloadCatalog re-runs the configured loader and swaps the product list.
// Product ids restart from 0 afterwards.
func ReloadCatalog(c *gin.Context) {
	if err := Store.Load(); err != nil {
		log.Printf("Catalog reload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload catalog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog reloaded",
		"count":   Store.Count(),
	})
}

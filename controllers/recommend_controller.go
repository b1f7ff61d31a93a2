package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetRecommendations(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	selected, ok := Store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// Without an explicit budget the whole catalog is in range and the
	// price blend centers on half the catalog max.
	maxBudget := Store.MaxPrice()
	if budgetStr := c.Query("maxBudget"); budgetStr != "" {
		budget, err := strconv.ParseFloat(budgetStr, 64)
		if err != nil || budget < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxBudget"})
			return
		}
		maxBudget = budget
	}

	recommendations := Engine.Recommend(selected, c.Query("category"), maxBudget)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Fetch success",
		"product":         selected,
		"recommendations": recommendations,
	})
}

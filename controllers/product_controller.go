package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ronak1998bacancy/E-commerce/catalog"
)

const itemsPerPage = 10

func parseFilter(c *gin.Context) (catalog.Filter, bool) {
	f := catalog.Filter{
		Category:  c.Query("category"),
		MaxBudget: math.Inf(1),
		Query:     c.Query("q"),
	}

	if budgetStr := c.Query("maxBudget"); budgetStr != "" {
		budget, err := strconv.ParseFloat(budgetStr, 64)
		if err != nil || budget < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxBudget"})
			return f, false
		}
		f.MaxBudget = budget
	}

	return f, true
}

func GetProducts(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		page = n
	}

	items := Store.Filter(f)
	paged, page, totalPages := catalog.Page(items, page, itemsPerPage)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetch success",
		"products":   paged,
		"total":      len(items),
		"page":       page,
		"totalPages": totalPages,
	})
}

func GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	item, ok := Store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "product": item})
}

func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetch success",
		"categories": Store.Categories(),
	})
}

func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":      Store.Count(),
		"categories": len(Store.Categories()),
		"maxPrice":   Store.MaxPrice(),
		"meanPrice":  Store.MeanPrice(),
	})
}

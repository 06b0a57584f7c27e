package controllers

import (
	"context"
	"pet-shop/services"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	searchService *services.SearchService
}

func NewSearchController() *SearchController {
	return &SearchController{
		searchService: services.NewSearchService(),
	}
}

// Search godoc
// @Summary Search pets
// @Description Search pets by any combination of category, price range, name and vaccinated flag. All supplied criteria must match. With no criteria the whole catalog is returned.
// @Tags Pets
// @Produce json
// @Param category query string false "Exact category name"
// @Param price_min query int false "Minimum price"
// @Param price_max query int false "Maximum price"
// @Param name query string false "Name substring, case-insensitive"
// @Param vaccinated query string false "Pass yes to require vaccinated"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /search [get]
func (ctrl *SearchController) Search(c *gin.Context) {
	filter, err := services.ParseFilter(
		c.Query("category"),
		c.Query("price_min"),
		c.Query("price_max"),
		c.Query("name"),
		c.Query("vaccinated"),
	)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	pets, err := ctrl.searchService.Search(context.Background(), filter)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Search failed"})
		return
	}

	results := []gin.H{}
	for _, p := range pets {
		results = append(results, gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"stock":       p.Stock,
			"vaccinated":  p.Vaccinated,
			"image_url":   p.ImageURL,
			"available":   p.Stock >= 1,
		})
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Search results",
		"data":    results,
		"meta": gin.H{
			"total": len(results),
		},
	})
}

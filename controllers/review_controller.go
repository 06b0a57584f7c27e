package controllers

import (
	"context"
	"fmt"
	"net/http"
	"pet-shop/models"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type ReviewController struct{}

// parseReviewSubmission decides whether a form submission becomes a
// review. Blank comment, blank rate, or a non-numeric rate mean the
// submission is dropped. The rating is clamped to 1..5.
func parseReviewSubmission(comment, rate string) (int, string, bool) {
	comment = strings.TrimSpace(comment)
	rate = strings.TrimSpace(rate)
	if comment == "" || rate == "" {
		return 0, "", false
	}
	rating, err := strconv.Atoi(rate)
	if err != nil {
		return 0, "", false
	}
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return rating, comment, true
}

// CreateReview godoc
// @Summary Review a pet
// @Description Post a review for a pet. Blank or malformed submissions are dropped without an error; either way the client is sent back to the pet page.
// @Tags Reviews
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Pet ID"
// @Param comment formData string true "Review text"
// @Param rate formData int true "Rating 1-5"
// @Security BearerAuth
// @Success 303
// @Failure 404 {object} models.ErrorResponse
// @Router /pets/{id}/reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	userID := c.GetInt("user_id")
	petID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	var exists bool
	models.DB.QueryRow(context.Background(),
		"SELECT EXISTS(SELECT 1 FROM pets WHERE id=$1)", petID).Scan(&exists)
	if !exists {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	petURL := fmt.Sprintf("/pets/%d", petID)

	// Incomplete submissions are silently ignored rather than
	// rejected; the redirect target is the same either way.
	rating, comment, ok := parseReviewSubmission(c.PostForm("comment"), c.PostForm("rate"))
	if !ok {
		c.Redirect(http.StatusSeeOther, petURL)
		return
	}

	models.DB.Exec(context.Background(),
		"INSERT INTO reviews (user_id, pet_id, rating, comment, created_at) VALUES ($1,$2,$3,$4,$5)",
		userID, petID, rating, comment, time.Now())

	c.Redirect(http.StatusSeeOther, petURL)
}

package controllers

import (
	"context"
	"pet-shop/models"
	"pet-shop/repositories"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AddressController struct {
	addressRepo *repositories.AddressRepository
}

func NewAddressController() *AddressController {
	return &AddressController{
		addressRepo: repositories.NewAddressRepository(),
	}
}

// GetAddresses godoc
// @Summary List addresses
// @Description List the current user's saved addresses, newest first
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /api/addresses [get]
func (ctrl *AddressController) GetAddresses(c *gin.Context) {
	userID := c.GetInt("user_id")

	addresses, err := ctrl.addressRepo.List(context.Background(), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve addresses"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Addresses retrieved",
		"data":    addresses,
	})
}

// GetAddressByID godoc
// @Summary Get address
// @Description Get one of the current user's addresses. Other users' addresses answer 404.
// @Tags Addresses
// @Produce json
// @Param id path int true "Address ID"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/addresses/{id} [get]
func (ctrl *AddressController) GetAddressByID(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Address not found"})
		return
	}

	address, err := ctrl.addressRepo.GetByID(context.Background(), id, userID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Address not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Address retrieved",
		"data":    address,
	})
}

// CreateAddress godoc
// @Summary Create address
// @Description Save a new address for the current user
// @Tags Addresses
// @Accept json
// @Produce json
// @Param request body models.AddressRequest true "Address"
// @Security BearerAuth
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/addresses [post]
func (ctrl *AddressController) CreateAddress(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddressRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid address", "errors": errs})
		return
	}

	address, err := ctrl.addressRepo.Create(context.Background(), userID, req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create address"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Address created successfully",
		"data":    address,
	})
}

// UpdateAddress godoc
// @Summary Update address
// @Description Replace one of the current user's addresses
// @Tags Addresses
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Param request body models.AddressRequest true "Address"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/addresses/{id} [put]
func (ctrl *AddressController) UpdateAddress(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Address not found"})
		return
	}

	var req models.AddressRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid address", "errors": errs})
		return
	}

	updated, err := ctrl.addressRepo.Update(context.Background(), id, userID, req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update address"})
		return
	}
	if !updated {
		c.JSON(404, gin.H{"success": false, "message": "Address not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Address updated successfully",
	})
}

// DeleteAddress godoc
// @Summary Delete address
// @Description Delete one of the current user's addresses
// @Tags Addresses
// @Produce json
// @Param id path int true "Address ID"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/addresses/{id} [delete]
func (ctrl *AddressController) DeleteAddress(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Address not found"})
		return
	}

	deleted, err := ctrl.addressRepo.Delete(context.Background(), id, userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete address"})
		return
	}
	if !deleted {
		c.JSON(404, gin.H{"success": false, "message": "Address not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Address deleted successfully",
	})
}

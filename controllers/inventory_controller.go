package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gamevault/database"
)

// RestockRequest adjusts shelf stock and optionally reprices a game
type RestockRequest struct {
	Units int      `json:"units" binding:"required"`
	Price *float64 `json:"price" binding:"omitempty,gte=0"`
}

// SaleRequest records units sold for a game
type SaleRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// RestockGame adds stock for a game (manager only)
func RestockGame(c *gin.Context) {
	id, ok := gameIDParam(c)
	if !ok {
		return
	}

	var request RestockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.RestockGame(id, request.Units, request.Price); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game is not stocked"})
			return
		}
		if errors.Is(err, database.ErrConstraintViolation) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Restock error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restock game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock updated successfully"})
}

// RecordSale records a sale of one game
func RecordSale(c *gin.Context) {
	id, ok := gameIDParam(c)
	if !ok {
		return
	}

	var request SaleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.RecordSale(id, request.Quantity); err != nil {
		if errors.Is(err, database.ErrConstraintViolation) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Sale recording error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale recorded successfully"})
}

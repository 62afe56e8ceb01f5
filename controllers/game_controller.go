package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamevault/database"
)

// GameRequest carries the catalog fields for a new game
type GameRequest struct {
	Name        string  `json:"name" binding:"required"`
	Platform    string  `json:"platform" binding:"required"`
	Genre       *string `json:"genre"`
	ReleaseYear string  `json:"release_year" binding:"omitempty,len=4"`
	Description string  `json:"description"`
	UnitsSold   int     `json:"units_sold" binding:"gte=0"`
}

// GameMatchRequest is the expected-current-state / new-state pair for
// updates and deletes
type GameMatchRequest struct {
	Name      string `json:"name" binding:"required"`
	Platform  string `json:"platform" binding:"required"`
	UnitsSold int    `json:"units_sold" binding:"gte=0"`
}

// GameUpdateRequest pairs the values the caller last read with the values
// it wants written
type GameUpdateRequest struct {
	Expected GameMatchRequest `json:"expected" binding:"required"`
	Updated  GameMatchRequest `json:"updated" binding:"required"`
}

// actingPrincipal returns the identity recorded in the audit log for this request
func actingPrincipal(c *gin.Context) string {
	if email, exists := c.Get("email"); exists {
		return email.(string)
	}
	return "unknown"
}

func gameIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return 0, false
	}
	return uint(id), true
}

// CreateGame creates a new catalog entry (manager only)
func CreateGame(c *gin.Context) {
	var request GameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := database.CreateGame(actingPrincipal(c), database.GameItemInput{
		Name:        request.Name,
		Platform:    request.Platform,
		Genre:       request.Genre,
		ReleaseYear: request.ReleaseYear,
		Description: request.Description,
		UnitsSold:   request.UnitsSold,
	})
	if err != nil {
		log.Printf("Game creation error: %v", err)
		if errors.Is(err, database.ErrReferentialIntegrity) || errors.Is(err, database.ErrConstraintViolation) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	game, err := database.GetGame(id)
	if err != nil || game == nil {
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusCreated, game)
}

// GetGame retrieves a catalog entry by ID
func GetGame(c *gin.Context) {
	id, ok := gameIDParam(c)
	if !ok {
		return
	}

	game, err := database.GetGame(id)
	if err != nil {
		log.Printf("Game lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, game)
}

// GetAllGames retrieves the full catalog
func GetAllGames(c *gin.Context) {
	var games []database.GameItem
	if err := database.DB.Preload("Inventory").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}
	c.JSON(http.StatusOK, games)
}

// UpdateGame overwrites name/platform/units-sold when the expected current
// values still match the row (manager only)
func UpdateGame(c *gin.Context) {
	id, ok := gameIDParam(c)
	if !ok {
		return
	}

	var request GameUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.UpdateGame(actingPrincipal(c), id,
		database.GameItemMatch(request.Expected),
		database.GameItemMatch(request.Updated))
	if err != nil {
		if errors.Is(err, database.ErrPreconditionFailed) {
			// The row changed since the caller read it; refresh and retry.
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Game update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	game, err := database.GetGame(id)
	if err != nil || game == nil {
		c.JSON(http.StatusOK, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusOK, game)
}

// DeleteGame removes a catalog entry when the expected current values still
// match the row (manager only)
func DeleteGame(c *gin.Context) {
	id, ok := gameIDParam(c)
	if !ok {
		return
	}

	var request GameMatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DeleteGame(actingPrincipal(c), id, database.GameItemMatch(request))
	if err != nil {
		if errors.Is(err, database.ErrPreconditionFailed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, database.ErrReferentialIntegrity) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Game deletion error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}

// GetAuditLog lists catalog audit entries, newest first (admin only)
func GetAuditLog(c *gin.Context) {
	var entries []database.AuditLogEntry
	if err := database.DB.Order("id DESC").Limit(200).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve audit log"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gamevault/database"
)

// EmployeeRequest carries a new employee record
type EmployeeRequest struct {
	FirstName   string    `json:"first_name" binding:"required,max=50"`
	LastName    string    `json:"last_name" binding:"required,max=50"`
	DateOfBirth time.Time `json:"date_of_birth" binding:"required"`
}

// PayRateRequest assigns a new position and wage starting at the given date
type PayRateRequest struct {
	Position   string    `json:"position" binding:"required,max=50"`
	HourlyWage float64   `json:"hourly_wage" binding:"required,gt=0"`
	StartDate  time.Time `json:"start_date" binding:"required"`
}

// EndPayRateRequest closes an employee's open pay rate
type EndPayRateRequest struct {
	EndDate time.Time `json:"end_date" binding:"required"`
}

func employeeIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return 0, false
	}
	return uint(id), true
}

// CreateEmployee creates an employee record (admin only)
func CreateEmployee(c *gin.Context) {
	var request EmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee := database.Employee{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		DateOfBirth: request.DateOfBirth,
	}

	if err := database.DB.Create(&employee).Error; err != nil {
		log.Printf("Employee creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployee retrieves an employee with their pay history
func GetEmployee(c *gin.Context) {
	id := c.Param("id")
	var employee database.Employee
	if err := database.DB.Preload("PayRates").First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employee"})
		}
		return
	}
	c.JSON(http.StatusOK, employee)
}

// GetAllEmployees retrieves all employees
func GetAllEmployees(c *gin.Context) {
	var employees []database.Employee
	if err := database.DB.Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employees"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

// AssignPayRate gives an employee a new pay rate, closing any open one
// (admin only)
func AssignPayRate(c *gin.Context) {
	id, ok := employeeIDParam(c)
	if !ok {
		return
	}

	var request PayRateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.AssignPayRate(id, request.Position, request.HourlyWage, request.StartDate)
	if err != nil {
		if errors.Is(err, database.ErrReferentialIntegrity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Employee does not exist"})
			return
		}
		if errors.Is(err, database.ErrConstraintViolation) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Pay rate assignment error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign pay rate"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pay rate assigned successfully"})
}

// EndPayRate closes an employee's open pay rate (admin only)
func EndPayRate(c *gin.Context) {
	id, ok := employeeIDParam(c)
	if !ok {
		return
	}

	var request EndPayRateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.EndPayRate(id, request.EndDate); err != nil {
		if errors.Is(err, database.ErrPreconditionFailed) {
			c.JSON(http.StatusConflict, gin.H{"error": "Employee has no open pay rate"})
			return
		}
		log.Printf("Pay rate closure error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end pay rate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pay rate closed successfully"})
}

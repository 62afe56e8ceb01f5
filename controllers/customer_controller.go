package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gamevault/database"
)

// AddressRequest carries a new mailing address. State codes are exactly two
// letters; lengths are display bounds checked at this boundary.
type AddressRequest struct {
	Street string `json:"street" binding:"required,max=100"`
	City   string `json:"city" binding:"required,max=50"`
	State  string `json:"state" binding:"required,len=2"`
	Zip    string `json:"zip" binding:"required,max=10"`
}

// CustomerRequest carries a new customer profile
type CustomerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	AddressID uint   `json:"address_id" binding:"required"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
}

// CreateAddress creates a standalone address
func CreateAddress(c *gin.Context) {
	var request AddressRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address := database.Address{
		Street: request.Street,
		City:   request.City,
		State:  request.State,
		Zip:    request.Zip,
	}

	if err := database.DB.Create(&address).Error; err != nil {
		log.Printf("Address creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
		return
	}

	c.JSON(http.StatusCreated, address)
}

// DeleteAddress removes an address unless a customer still references it
func DeleteAddress(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
		return
	}

	if err := database.DeleteAddress(uint(id)); err != nil {
		if errors.Is(err, database.ErrReferentialIntegrity) {
			c.JSON(http.StatusConflict, gin.H{"error": "Address is still referenced by a customer"})
			return
		}
		if errors.Is(err, database.ErrPreconditionFailed) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		log.Printf("Address deletion error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
}

// CreateCustomer creates a customer referencing an existing address
func CreateCustomer(c *gin.Context) {
	var request CustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := database.Customer{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		AddressID: request.AddressID,
		Phone:     request.Phone,
	}

	if err := database.DB.Create(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Address does not exist"})
			return
		}
		log.Printf("Customer creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// DeleteCustomer removes a customer unless invoices still reference them
func DeleteCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	if err := database.DeleteCustomer(uint(id)); err != nil {
		if errors.Is(err, database.ErrReferentialIntegrity) {
			c.JSON(http.StatusConflict, gin.H{"error": "Customer has invoices on file"})
			return
		}
		if errors.Is(err, database.ErrPreconditionFailed) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		log.Printf("Customer deletion error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// GetCustomer retrieves a customer with their address
func GetCustomer(c *gin.Context) {
	id := c.Param("id")
	var customer database.Customer
	if err := database.DB.Preload("Address").First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customer"})
		}
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetAllCustomers retrieves all customers
func GetAllCustomers(c *gin.Context) {
	var customers []database.Customer
	if err := database.DB.Preload("Address").Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gamevault/config"
	"gamevault/database"
)

// InvoiceRequest carries a new invoice. Tax is computed from the configured
// sales tax rate; invoices are immutable once created.
type InvoiceRequest struct {
	CustomerID uint    `json:"customer_id" binding:"required"`
	ItemCount  int     `json:"item_count" binding:"required,gt=0"`
	Subtotal   float64 `json:"subtotal" binding:"required,gte=0"`
}

// CreateInvoice creates an immutable invoice for a customer
func CreateInvoice(c *gin.Context) {
	var request InvoiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tax := math.Round(request.Subtotal*config.AppConfig.SalesTaxRate*100) / 100

	invoice := database.Invoice{
		CustomerID: request.CustomerID,
		ItemCount:  request.ItemCount,
		Subtotal:   request.Subtotal,
		Tax:        tax,
	}

	if err := database.DB.Create(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer does not exist"})
			return
		}
		log.Printf("Invoice creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoice retrieves an invoice by ID
func GetInvoice(c *gin.Context) {
	id := c.Param("id")
	var invoice database.Invoice
	if err := database.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		}
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// GetCustomerInvoices retrieves all invoices for one customer
func GetCustomerInvoices(c *gin.Context) {
	customerID := c.Param("id")
	var invoices []database.Invoice
	if err := database.DB.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoices"})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

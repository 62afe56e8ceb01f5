package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/razorpay/razorpay-go"
	"gorm.io/gorm"

	"gamevault/config"
	"gamevault/database"
)

// CreateInvoicePaymentOrder creates a Razorpay payment order for an
// invoice's total (subtotal + tax)
func CreateInvoicePaymentOrder(c *gin.Context) {
	id := c.Param("id")

	var invoice database.Invoice
	if err := database.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		log.Printf("Database error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if config.AppConfig.RazorpayKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment gateway is not configured"})
		return
	}

	client := razorpay.NewClient(config.AppConfig.RazorpayKey, config.AppConfig.RazorpaySecret)

	total := invoice.Subtotal + invoice.Tax
	// Razorpay expects the smallest currency unit
	amount := int64(total * 100)

	data := map[string]interface{}{
		"amount":   amount,
		"currency": "INR",
		"receipt":  uuid.NewString(),
		"notes": map[string]interface{}{
			"invoice_id":  invoice.ID,
			"customer_id": invoice.CustomerID,
		},
	}

	order, err := client.Order.Create(data, nil)
	if err != nil {
		log.Printf("Razorpay order creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating payment order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"razorpay_order_id": order["id"],
		"amount":            total,
		"currency":          "INR",
		"key":               config.AppConfig.RazorpayKey,
		"invoice_id":        invoice.ID,
	})
}

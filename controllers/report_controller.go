package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamevault/database"
)

// GetGameSalesReport returns the sales report view: every game with at
// least one recorded sale and its total revenue
func GetGameSalesReport(c *gin.Context) {
	report, err := database.GameSalesReport()
	if err != nil {
		log.Printf("Sales report error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate sales report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetEmployeePaymentHistory returns the payment history view: every
// employee's pay periods, current and past
func GetEmployeePaymentHistory(c *gin.Context) {
	history, err := database.EmployeePaymentHistory()
	if err != nil {
		log.Printf("Payment history error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate payment history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mockview/services/booking"
)

// PricingHandler serves the per-field session pricing table.
func PricingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pricing": booking.GetPricingMap()})
	}
}

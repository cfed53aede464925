package handlers

import (
	"net/http"

	"apna/utils"

	"github.com/gin-gonic/gin"
)

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Hi, I'm Apna",
		"checks":  utils.GetHealthStatus(),
	})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func handleLivenessProbe(conf Configuration) func(c *gin.Context) {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"app": conf.AppName,
		})
	}
}

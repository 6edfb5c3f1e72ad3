package v1

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API reports handled failures in-body with success:false and a
// human-readable status; the HTTP code stays 200. Only unhandled
// panics fall through to gin's 500 recovery.

func fail(c *gin.Context, status string) {
	c.JSON(http.StatusOK, gin.H{
		"success": false,
		"status":  status,
	})
}

func internalError(c *gin.Context, context string, err error) {
	log.Println(context, err)
	fail(c, "Internal server error.")
}

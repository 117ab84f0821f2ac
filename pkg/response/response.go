package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
)

// Success sends a success envelope, merging the given payload fields with the
// mandatory status marker.
func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range payload {
		body[k] = v
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusOK, body)
}

// Error converts any error into the uniform error envelope. The transport
// status stays 200: clients inspect the status field, not the HTTP code.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusOK, gin.H{"status": "error", "message": appErr.Message})
}

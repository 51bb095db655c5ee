package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/apperror"
)

// JSON renders a success body as-is. Resource representations, pages and
// short links are returned unwrapped; only errors use the envelope.
func JSON(c *gin.Context, statusCode int, body any) {
	c.JSON(statusCode, body)
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// StatusFor maps an error kind to its HTTP status. Conflicts render as 400.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation, apperror.KindConflict:
		return http.StatusBadRequest
	case apperror.KindAuthorization:
		return http.StatusForbidden
	case apperror.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// FromError renders err with the status its kind maps to. Unknown errors are
// attached to the context for the error logger and rendered as 500.
func FromError(c *gin.Context, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		FromErrorWithStatus(c, http.StatusInternalServerError, err)
		return
	}
	FromErrorWithStatus(c, StatusFor(appErr.Kind), err)
}

// FromErrorWithStatus renders err with an explicit status.
func FromErrorWithStatus(c *gin.Context, status int, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}
	if len(appErr.Fields) > 0 {
		ErrorWithDetails(c, status, string(appErr.Kind), appErr.Message, appErr.Fields)
		return
	}
	Error(c, status, string(appErr.Kind), appErr.Message)
}

func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}

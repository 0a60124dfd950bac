package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/naveen/management/internal/app/models/dto"
	"github.com/naveen/management/internal/pkg/apperrors"
)

// HandleAPIError writes the JSON error envelope for a failed operation.
// The message gives the operation context ("Error adding user"); the error
// field carries the failure detail. The status is derived from the error
// kind: 400 validation and blocked deletes, 404 missing targets, 500
// everything else.
func HandleAPIError(c *gin.Context, message string, err error) {
	c.JSON(apperrors.HTTPStatus(err), dto.NewErrorResponse(message, err.Error()))
}

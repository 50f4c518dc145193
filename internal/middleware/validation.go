package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// BindAndValidate binds the JSON body into obj and writes a 400 response
// when binding or validation fails. It returns false when the handler
// should stop.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if fields := validation.BindJSON(c, obj); fields != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(fields)
		c.JSON(http.StatusBadRequest, dto.NewFailureResponse(detail))
		return false
	}
	return true
}

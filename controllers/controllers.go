package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/UCDC-Institute/Website_BCMS/res"
)

// abortBindError maps a binding failure to the 400 envelope, carrying
// one detail line per failed field.
func abortBindError(c *gin.Context, err error) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		details := make([]string, len(validationErrs))
		for i, fieldErr := range validationErrs {
			details[i] = fmt.Sprintf(
				"%s failed on the '%s' rule",
				fieldErr.Field(),
				fieldErr.Tag(),
			)
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "Validation failed",
			Details: details,
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
		Success: false,
		Message: err.Error(),
	})
}

package forms

import (
	"github.com/go-playground/validator/v10"

	"github.com/UCDC-Institute/Website_BCMS/models"
)

type StudentCornerForm struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"required,min=1,max=500"`
	Image       string `json:"image" binding:"required"`
	Link        string `json:"link" binding:"omitempty"`
	Category    string `json:"category" binding:"required,cornerCategory" example:"announcement"`
	IsActive    *bool  `json:"isActive"`
}

type StudentCornerUpdateForm struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,min=1,max=500"`
	Image       *string `json:"image" binding:"omitempty,min=1"`
	Link        *string `json:"link"`
	Category    *string `json:"category" binding:"omitempty,cornerCategory"`
	IsActive    *bool   `json:"isActive"`
}

var CornerCategory validator.Func = func(fl validator.FieldLevel) bool {
	category, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	for _, valid := range models.CornerCategories {
		if category == valid {
			return true
		}
	}
	return false
}

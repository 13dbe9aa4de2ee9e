package forms

import (
	"github.com/go-playground/validator/v10"

	"github.com/UCDC-Institute/Website_BCMS/models"
)

type GalleryForm struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Image       string `json:"image" binding:"required"`
	Category    string `json:"category" binding:"required,galleryCategory" example:"event"`
	IsActive    *bool  `json:"isActive"`
}

type GalleryUpdateForm struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Image       *string `json:"image" binding:"omitempty,min=1"`
	Category    *string `json:"category" binding:"omitempty,galleryCategory"`
	IsActive    *bool   `json:"isActive"`
}

var GalleryCategory validator.Func = func(fl validator.FieldLevel) bool {
	category, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	for _, valid := range models.GalleryCategories {
		if category == valid {
			return true
		}
	}
	return false
}

package forms

import (
	"github.com/go-playground/validator/v10"

	"github.com/UCDC-Institute/Website_BCMS/models"
)

type FacilityImageForm struct {
	URL string `json:"url" binding:"required"`
	Alt string `json:"alt" binding:"omitempty,max=200"`
}

type FacilityForm struct {
	Type        string              `json:"type" binding:"required,facilityType" example:"library"`
	Title       string              `json:"title" binding:"required,min=1,max=100"`
	Description string              `json:"description" binding:"required,min=1,max=1000"`
	Features    []string            `json:"features" binding:"omitempty,dive,required"`
	Images      []FacilityImageForm `json:"images" binding:"omitempty,dive"`
	Capacity    string              `json:"capacity" binding:"omitempty,max=100"`
	Timings     string              `json:"timings" binding:"omitempty,max=200"`
	Contact     string              `json:"contact" binding:"omitempty,max=200"`
	IsActive    *bool               `json:"isActive"`
}

type FacilityUpdateForm struct {
	Type        *string             `json:"type" binding:"omitempty,facilityType"`
	Title       *string             `json:"title" binding:"omitempty,min=1,max=100"`
	Description *string             `json:"description" binding:"omitempty,min=1,max=1000"`
	Features    []string            `json:"features" binding:"omitempty,dive,required"`
	Images      []FacilityImageForm `json:"images" binding:"omitempty,dive"`
	Capacity    *string             `json:"capacity" binding:"omitempty,max=100"`
	Timings     *string             `json:"timings" binding:"omitempty,max=200"`
	Contact     *string             `json:"contact" binding:"omitempty,max=200"`
	IsActive    *bool               `json:"isActive"`
}

var FacilityType validator.Func = func(fl validator.FieldLevel) bool {
	facilityType, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return models.IsFacilityType(facilityType)
}

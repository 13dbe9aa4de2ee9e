package forms

import (
	"github.com/go-playground/validator/v10"

	"github.com/UCDC-Institute/Website_BCMS/models"
)

type CourseForm struct {
	Title       string   `json:"title" binding:"required,min=1,max=100" example:"UPSC Foundation"`
	Description string   `json:"description" binding:"required,min=1,max=500"`
	Duration    string   `json:"duration" binding:"required" example:"12 months"`
	BatchSize   string   `json:"batchSize" binding:"required" example:"40 students"`
	Fees        *float64 `json:"fees" binding:"required"`
	Features    []string `json:"features" binding:"required,min=1,dive,required"`
	Image       string   `json:"image" binding:"omitempty"`
}

// NewCourseForm is the POST /courses body: the category rides next to
// the course payload and tags the created document.
type NewCourseForm struct {
	Category string      `json:"category" binding:"required,courseCategory" example:"upsc"`
	Course   *CourseForm `json:"course" binding:"required"`
}

// CourseUpdateForm deliberately has no category field: on update the
// category is taken from the route and any body value is ignored.
type CourseUpdateForm struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,min=1,max=500"`
	Duration    *string  `json:"duration" binding:"omitempty,min=1"`
	BatchSize   *string  `json:"batchSize" binding:"omitempty,min=1"`
	Fees        *float64 `json:"fees"`
	Features    []string `json:"features" binding:"omitempty,min=1,dive,required"`
	Image       *string  `json:"image"`
}

var CourseCategory validator.Func = func(fl validator.FieldLevel) bool {
	category, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return models.IsCourseCategory(category)
}

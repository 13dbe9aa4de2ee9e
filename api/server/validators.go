package server

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/UCDC-Institute/Website_BCMS/forms"
)

func InitValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("courseCategory", forms.CourseCategory)
		v.RegisterValidation("galleryCategory", forms.GalleryCategory)
		v.RegisterValidation("cornerCategory", forms.CornerCategory)
		v.RegisterValidation("facilityType", forms.FacilityType)
	}
}

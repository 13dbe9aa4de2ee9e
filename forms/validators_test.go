package forms

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	if err := v.RegisterValidation("courseCategory", CourseCategory); err != nil {
		t.Fatalf("register courseCategory: %s", err)
	}
	if err := v.RegisterValidation("galleryCategory", GalleryCategory); err != nil {
		t.Fatalf("register galleryCategory: %s", err)
	}
	if err := v.RegisterValidation("cornerCategory", CornerCategory); err != nil {
		t.Fatalf("register cornerCategory: %s", err)
	}
	if err := v.RegisterValidation("facilityType", FacilityType); err != nil {
		t.Fatalf("register facilityType: %s", err)
	}
	return v
}

func TestCourseCategoryValidator(t *testing.T) {
	v := newValidator(t)
	for _, category := range []string{"upsc", "gpsc", "ielts", "cds"} {
		if err := v.Var(category, "courseCategory"); err != nil {
			t.Errorf("%q rejected: %s", category, err)
		}
	}
	for _, category := range []string{"", "UPSC", "neet", "upsc "} {
		if err := v.Var(category, "courseCategory"); err == nil {
			t.Errorf("%q accepted", category)
		}
	}
}

func TestGalleryCategoryValidator(t *testing.T) {
	v := newValidator(t)
	for _, category := range []string{"event", "classroom", "achievement", "facility", "other"} {
		if err := v.Var(category, "galleryCategory"); err != nil {
			t.Errorf("%q rejected: %s", category, err)
		}
	}
	if err := v.Var("party", "galleryCategory"); err == nil {
		t.Error("unknown gallery category accepted")
	}
}

func TestCornerCategoryValidator(t *testing.T) {
	v := newValidator(t)
	for _, category := range []string{"announcement", "event", "news", "achievement"} {
		if err := v.Var(category, "cornerCategory"); err != nil {
			t.Errorf("%q rejected: %s", category, err)
		}
	}
	if err := v.Var("classroom", "cornerCategory"); err == nil {
		t.Error("unknown corner category accepted")
	}
}

func TestFacilityTypeValidator(t *testing.T) {
	v := newValidator(t)
	for _, facilityType := range []string{"accommodation", "library", "classroom", "computer-lab", "canteen"} {
		if err := v.Var(facilityType, "facilityType"); err != nil {
			t.Errorf("%q rejected: %s", facilityType, err)
		}
	}
	if err := v.Var("gym", "facilityType"); err == nil {
		t.Error("unknown facility type accepted")
	}
}

func TestNewCourseFormBinding(t *testing.T) {
	v := newValidator(t)
	fees := 45000.0
	form := &NewCourseForm{
		Category: "upsc",
		Course: &CourseForm{
			Title:       "UPSC Foundation",
			Description: "Two year foundation batch",
			Duration:    "24 months",
			BatchSize:   "40 students",
			Fees:        &fees,
			Features:    []string{"Daily tests"},
		},
	}
	if err := v.Struct(form); err != nil {
		t.Errorf("valid form rejected: %s", err)
	}
	form.Category = "neet"
	if err := v.Struct(form); err == nil {
		t.Error("invalid category accepted")
	}
	form.Category = "upsc"
	form.Course.Features = []string{}
	if err := v.Struct(form); err == nil {
		t.Error("empty features accepted")
	}
}

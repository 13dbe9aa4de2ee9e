package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/res"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("courseCategory", forms.CourseCategory)
		v.RegisterValidation("galleryCategory", forms.GalleryCategory)
		v.RegisterValidation("cornerCategory", forms.CornerCategory)
		v.RegisterValidation("facilityType", forms.FacilityType)
	}
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) *res.Response {
	t.Helper()
	var response res.Response
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %s", err)
	}
	return &response
}

func TestNewBannerValidationFailure(t *testing.T) {
	router := gin.New()
	bannerController := new(BannerController)
	router.POST("/banners", bannerController.NewBanner)

	w := postJSON(router, "/banners", `{"description": "missing title and image"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	response := decodeResponse(t, w)
	if response.Success {
		t.Error("success = true on validation failure")
	}
	if response.Message != "Validation failed" {
		t.Errorf("message = %q, want %q", response.Message, "Validation failed")
	}
	if len(response.Details) == 0 {
		t.Error("no detail lines for failed fields")
	}
	for _, wantField := range []string{"Title", "Image"} {
		found := false
		for _, detail := range response.Details {
			if strings.Contains(detail, wantField) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no detail mentions %s: %v", wantField, response.Details)
		}
	}
}

func TestNewBannerMalformedJSON(t *testing.T) {
	router := gin.New()
	bannerController := new(BannerController)
	router.POST("/banners", bannerController.NewBanner)

	w := postJSON(router, "/banners", `{"title": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	response := decodeResponse(t, w)
	if response.Success {
		t.Error("success = true on malformed body")
	}
}

func TestNewCourseInvalidCategory(t *testing.T) {
	router := gin.New()
	courseController := new(CourseController)
	router.POST("/courses", courseController.NewCourse)

	w := postJSON(router, "/courses", `{
		"category": "neet",
		"course": {
			"title": "NEET Crash",
			"description": "desc",
			"duration": "6 months",
			"batchSize": "30",
			"fees": 20000,
			"features": ["tests"]
		}
	}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	response := decodeResponse(t, w)
	if response.Message != "Validation failed" {
		t.Errorf("message = %q, want %q", response.Message, "Validation failed")
	}
	found := false
	for _, detail := range response.Details {
		if strings.Contains(detail, "courseCategory") {
			found = true
		}
	}
	if !found {
		t.Errorf("no detail mentions the category rule: %v", response.Details)
	}
}

func TestUpdateCourseInvalidCategoryParam(t *testing.T) {
	router := gin.New()
	courseController := new(CourseController)
	router.PUT("/courses/:category/:idCourse", courseController.UpdateCourse)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPut,
		"/courses/neet/62c4b1e8a9d3f20d9c6b1a2e",
		strings.NewReader(`{"title": "Renamed"}`),
	)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadImageMissingFile(t *testing.T) {
	router := gin.New()
	filesController := new(FilesController)
	router.POST("/upload", filesController.UploadImage)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	response := decodeResponse(t, w)
	if response.Success {
		t.Error("success = true without a file")
	}
}

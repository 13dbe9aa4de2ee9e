package services

import (
	"testing"

	"github.com/UCDC-Institute/Website_BCMS/models"
)

func TestGroupCoursesByCategoryKeepsEmptyBuckets(t *testing.T) {
	grouped := GroupCoursesByCategory(nil)
	if len(grouped) != len(models.CourseCategories) {
		t.Fatalf("got %d buckets, want %d", len(grouped), len(models.CourseCategories))
	}
	for _, category := range models.CourseCategories {
		bucket, ok := grouped[category]
		if !ok {
			t.Errorf("missing bucket %q", category)
			continue
		}
		if bucket == nil || len(bucket) != 0 {
			t.Errorf("bucket %q = %v, want empty slice", category, bucket)
		}
	}
}

func TestGroupCoursesByCategory(t *testing.T) {
	courses := []models.Course{
		{Title: "UPSC Foundation", Category: models.CATEGORY_UPSC},
		{Title: "IELTS Crash", Category: models.CATEGORY_IELTS},
		{Title: "UPSC Mains", Category: models.CATEGORY_UPSC},
		{Title: "Orphan", Category: "neet"},
	}
	grouped := GroupCoursesByCategory(courses)
	if len(grouped[models.CATEGORY_UPSC]) != 2 {
		t.Errorf("upsc bucket = %d courses, want 2", len(grouped[models.CATEGORY_UPSC]))
	}
	if len(grouped[models.CATEGORY_IELTS]) != 1 {
		t.Errorf("ielts bucket = %d courses, want 1", len(grouped[models.CATEGORY_IELTS]))
	}
	if len(grouped[models.CATEGORY_GPSC]) != 0 {
		t.Errorf("gpsc bucket not empty")
	}
	total := 0
	for _, bucket := range grouped {
		total += len(bucket)
	}
	if total != 3 {
		t.Errorf("grouped %d courses, want 3 (unknown category dropped)", total)
	}
	if grouped[models.CATEGORY_UPSC][0].Title != "UPSC Foundation" {
		t.Error("input order not preserved inside bucket")
	}
}

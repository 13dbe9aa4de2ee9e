package services

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UCDC-Institute/Website_BCMS/db"
	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/models"
	"github.com/UCDC-Institute/Website_BCMS/res"
)

var courseService *CourseService

type CourseService struct{}

// GroupCoursesByCategory buckets courses under every known category,
// keeping empty buckets so the payload always carries all four keys.
func GroupCoursesByCategory(courses []models.Course) map[string][]models.Course {
	grouped := make(map[string][]models.Course, len(models.CourseCategories))
	for _, category := range models.CourseCategories {
		grouped[category] = []models.Course{}
	}
	for _, course := range courses {
		if _, ok := grouped[course.Category]; !ok {
			continue
		}
		grouped[course.Category] = append(grouped[course.Category], course)
	}
	return grouped
}

// GetCourses returns all courses grouped by category, newest first
// inside each bucket.
func (c *CourseService) GetCourses() (map[string][]models.Course, *res.ErrorRes) {
	findOptions := options.Find().SetSort(bson.D{
		{
			Key:   "createdAt",
			Value: -1,
		},
	})
	cursor, err := courseModel.GetAll(bson.D{}, findOptions)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	courses := []models.Course{}
	if err := cursor.All(db.Ctx, &courses); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return GroupCoursesByCategory(courses), nil
}

// GetCourse resolves a course by id within a category; an id stored
// under another category is not found.
func (c *CourseService) GetCourse(category, idCourse string) (*models.Course, *res.ErrorRes) {
	if !models.IsCourseCategory(category) {
		return nil, &res.ErrorRes{
			Err:        errors.New("invalid category"),
			StatusCode: http.StatusBadRequest,
		}
	}
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        errors.New("invalid course id"),
			StatusCode: http.StatusBadRequest,
		}
	}
	var course models.Course
	cursor := courseModel.GetOne(bson.D{
		{
			Key:   "_id",
			Value: idObjCourse,
		},
		{
			Key:   "category",
			Value: category,
		},
	})
	if err := cursor.Decode(&course); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("course not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &course, nil
}

func (c *CourseService) NewCourse(courseForm *forms.NewCourseForm) (*models.Course, *res.ErrorRes) {
	image := courseForm.Course.Image
	if image == "" {
		image = models.DEFAULT_COURSE_IMAGE
	}
	course := &models.Course{
		Title:       courseForm.Course.Title,
		Description: courseForm.Course.Description,
		Duration:    courseForm.Course.Duration,
		BatchSize:   courseForm.Course.BatchSize,
		Fees:        *courseForm.Course.Fees,
		Features:    courseForm.Course.Features,
		Image:       image,
		Category:    courseForm.Category,
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}
	inserted, err := courseModel.NewDocument(course)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	course.ID = inserted.InsertedID.(primitive.ObjectID)
	return course, nil
}

// UpdateCourse sets the provided fields on the {id, category} match.
// The stored category always stays the one of the route: it is written
// into the $set last, so a category in the body can never override it.
func (c *CourseService) UpdateCourse(
	category,
	idCourse string,
	courseForm *forms.CourseUpdateForm,
) (*models.Course, *res.ErrorRes) {
	if !models.IsCourseCategory(category) {
		return nil, &res.ErrorRes{
			Err:        errors.New("invalid category"),
			StatusCode: http.StatusBadRequest,
		}
	}
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        errors.New("invalid course id"),
			StatusCode: http.StatusBadRequest,
		}
	}
	set := bson.M{}
	if courseForm.Title != nil {
		set["title"] = *courseForm.Title
	}
	if courseForm.Description != nil {
		set["description"] = *courseForm.Description
	}
	if courseForm.Duration != nil {
		set["duration"] = *courseForm.Duration
	}
	if courseForm.BatchSize != nil {
		set["batchSize"] = *courseForm.BatchSize
	}
	if courseForm.Fees != nil {
		set["fees"] = *courseForm.Fees
	}
	if courseForm.Features != nil {
		set["features"] = courseForm.Features
	}
	if courseForm.Image != nil {
		set["image"] = *courseForm.Image
	}
	set["category"] = category
	set["updatedAt"] = now()

	var course models.Course
	err = courseModel.Use().FindOneAndUpdate(
		db.Ctx,
		bson.D{
			{
				Key:   "_id",
				Value: idObjCourse,
			},
			{
				Key:   "category",
				Value: category,
			},
		},
		bson.D{
			{
				Key:   "$set",
				Value: set,
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("course not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &course, nil
}

func (c *CourseService) DeleteCourse(category, idCourse string) *res.ErrorRes {
	if !models.IsCourseCategory(category) {
		return &res.ErrorRes{
			Err:        errors.New("invalid category"),
			StatusCode: http.StatusBadRequest,
		}
	}
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return &res.ErrorRes{
			Err:        errors.New("invalid course id"),
			StatusCode: http.StatusBadRequest,
		}
	}
	var deleted models.Course
	err = courseModel.Use().FindOneAndDelete(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: idObjCourse,
		},
		{
			Key:   "category",
			Value: category,
		},
	}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &res.ErrorRes{
				Err:        errors.New("course not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func NewCourseService() *CourseService {
	if courseService == nil {
		courseService = &CourseService{}
	}
	return courseService
}

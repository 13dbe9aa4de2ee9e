package models

import (
	"github.com/UCDC-Institute/Website_BCMS/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const COURSES_COLLECTION = "courses"

// Course categories. The category of a stored course never changes
// through the API: updates always keep the category of the route.
const (
	CATEGORY_UPSC  = "upsc"
	CATEGORY_GPSC  = "gpsc"
	CATEGORY_IELTS = "ielts"
	CATEGORY_CDS   = "cds"
)

var CourseCategories = []string{
	CATEGORY_UPSC,
	CATEGORY_GPSC,
	CATEGORY_IELTS,
	CATEGORY_CDS,
}

const DEFAULT_COURSE_IMAGE = "/placeholder.svg?height=300&width=500"

var courseModel *CourseModel

type Course struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Title       string             `json:"title" bson:"title" example:"UPSC Foundation"`
	Description string             `json:"description" bson:"description"`
	Duration    string             `json:"duration" bson:"duration" example:"12 months"`
	BatchSize   string             `json:"batchSize" bson:"batchSize" example:"40 students"`
	Fees        float64            `json:"fees" bson:"fees" example:"45000"`
	Features    []string           `json:"features" bson:"features"`
	Image       string             `json:"image" bson:"image"`
	Category    string             `json:"category" bson:"category" example:"upsc"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt   primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

func IsCourseCategory(category string) bool {
	for _, valid := range CourseCategories {
		if category == valid {
			return true
		}
	}
	return false
}

type CourseModel struct {
	CollectionName string
}

func (course *CourseModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(course.CollectionName)
}

func (course *CourseModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := course.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (course *CourseModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := course.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (course *CourseModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := course.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (course *CourseModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := course.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (course *CourseModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := course.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewCourseModel() Collection {
	if courseModel == nil {
		courseModel = &CourseModel{
			CollectionName: COURSES_COLLECTION,
		}
	}
	return courseModel
}

var courseJsonSchema = bson.M{
	"bsonType": "object",
	"required": []string{"title", "description", "duration", "batchSize", "fees", "features", "image", "category", "createdAt", "updatedAt"},
	"properties": bson.M{
		"title":       bson.M{"bsonType": "string", "maxLength": 100},
		"description": bson.M{"bsonType": "string", "maxLength": 500},
		"duration":    bson.M{"bsonType": "string"},
		"batchSize":   bson.M{"bsonType": "string"},
		"fees":        bson.M{"bsonType": "double"},
		"features": bson.M{
			"bsonType": "array",
			"minItems": 1,
			"items":    bson.M{"bsonType": "string"},
		},
		"image":     bson.M{"bsonType": "string"},
		"category":  bson.M{"enum": CourseCategories},
		"createdAt": bson.M{"bsonType": "date"},
		"updatedAt": bson.M{"bsonType": "date"},
	},
}

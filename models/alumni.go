package models

import (
	"github.com/UCDC-Institute/Website_BCMS/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ALUMNI_COLLECTION = "alumni"

var alumniModel *AlumniModel

// Alumni records come in through the public registration form with
// IsApproved false; only approved rows reach the public site.
type Alumni struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Name            string             `json:"name" bson:"name"`
	Email           string             `json:"email" bson:"email"`
	Phone           string             `json:"phone" bson:"phone"`
	Course          string             `json:"course" bson:"course" example:"UPSC Foundation"`
	Batch           string             `json:"batch" bson:"batch" example:"2019"`
	CurrentPosition string             `json:"currentPosition,omitempty" bson:"currentPosition,omitempty"`
	Company         string             `json:"company,omitempty" bson:"company,omitempty"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	Testimonial     string             `json:"testimonial,omitempty" bson:"testimonial,omitempty"`
	IsApproved      bool               `json:"isApproved" bson:"isApproved"`
	CreatedAt       primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

type AlumniModel struct {
	CollectionName string
}

func (alumni *AlumniModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(alumni.CollectionName)
}

func (alumni *AlumniModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := alumni.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (alumni *AlumniModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := alumni.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (alumni *AlumniModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := alumni.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (alumni *AlumniModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := alumni.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (alumni *AlumniModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := alumni.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewAlumniModel() Collection {
	if alumniModel == nil {
		alumniModel = &AlumniModel{
			CollectionName: ALUMNI_COLLECTION,
		}
	}
	return alumniModel
}

var alumniJsonSchema = bson.M{
	"bsonType": "object",
	"required": []string{"name", "email", "phone", "course", "batch", "isApproved", "createdAt"},
	"properties": bson.M{
		"name":            bson.M{"bsonType": "string", "maxLength": 100},
		"email":           bson.M{"bsonType": "string"},
		"phone":           bson.M{"bsonType": "string"},
		"course":          bson.M{"bsonType": "string"},
		"batch":           bson.M{"bsonType": "string"},
		"currentPosition": bson.M{"bsonType": "string", "maxLength": 200},
		"company":         bson.M{"bsonType": "string", "maxLength": 100},
		"image":           bson.M{"bsonType": "string"},
		"testimonial":     bson.M{"bsonType": "string", "maxLength": 1000},
		"isApproved":      bson.M{"bsonType": "bool"},
		"createdAt":       bson.M{"bsonType": "date"},
	},
}

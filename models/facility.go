package models

import (
	"github.com/UCDC-Institute/Website_BCMS/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const FACILITIES_COLLECTION = "facilities"

var FacilityTypes = []string{"accommodation", "library", "classroom", "computer-lab", "canteen"}

var facilityModel *FacilityModel

type FacilityImage struct {
	URL string `json:"url" bson:"url"`
	Alt string `json:"alt" bson:"alt"`
}

// Facility rows are grouped by Type for the tabbed public page.
type Facility struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Type        string             `json:"type" bson:"type" example:"library"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Features    []string           `json:"features" bson:"features"`
	Images      []FacilityImage    `json:"images" bson:"images"`
	Capacity    string             `json:"capacity,omitempty" bson:"capacity,omitempty"`
	Timings     string             `json:"timings,omitempty" bson:"timings,omitempty"`
	Contact     string             `json:"contact,omitempty" bson:"contact,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt   primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

func IsFacilityType(facilityType string) bool {
	for _, valid := range FacilityTypes {
		if facilityType == valid {
			return true
		}
	}
	return false
}

type FacilityModel struct {
	CollectionName string
}

func (facility *FacilityModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(facility.CollectionName)
}

func (facility *FacilityModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := facility.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (facility *FacilityModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := facility.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (facility *FacilityModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := facility.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (facility *FacilityModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := facility.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (facility *FacilityModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := facility.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewFacilityModel() Collection {
	if facilityModel == nil {
		facilityModel = &FacilityModel{
			CollectionName: FACILITIES_COLLECTION,
		}
	}
	return facilityModel
}

var facilityJsonSchema = bson.M{
	"bsonType": "object",
	"required": []string{"type", "title", "description", "isActive", "createdAt", "updatedAt"},
	"properties": bson.M{
		"type":        bson.M{"enum": FacilityTypes},
		"title":       bson.M{"bsonType": "string", "maxLength": 100},
		"description": bson.M{"bsonType": "string", "maxLength": 1000},
		"features": bson.M{
			"bsonType": "array",
			"items":    bson.M{"bsonType": "string"},
		},
		"images": bson.M{
			"bsonType": "array",
			"items": bson.M{
				"bsonType": "object",
				"required": []string{"url"},
				"properties": bson.M{
					"url": bson.M{"bsonType": "string"},
					"alt": bson.M{"bsonType": "string"},
				},
			},
		},
		"capacity":  bson.M{"bsonType": "string"},
		"timings":   bson.M{"bsonType": "string"},
		"contact":   bson.M{"bsonType": "string"},
		"isActive":  bson.M{"bsonType": "bool"},
		"createdAt": bson.M{"bsonType": "date"},
		"updatedAt": bson.M{"bsonType": "date"},
	},
}

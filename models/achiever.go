package models

import (
	"github.com/UCDC-Institute/Website_BCMS/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ACHIEVERS_COLLECTION = "achievers"

var achieverModel *AchieverModel

type Achiever struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Name        string             `json:"name" bson:"name" example:"A. Patel"`
	Exam        string             `json:"exam" bson:"exam" example:"UPSC CSE"`
	Rank        string             `json:"rank" bson:"rank" example:"AIR 45"`
	Year        int                `json:"year" bson:"year" example:"2023"`
	Image       string             `json:"image" bson:"image"`
	Testimonial string             `json:"testimonial,omitempty" bson:"testimonial,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

type AchieverModel struct {
	CollectionName string
}

func (achiever *AchieverModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(achiever.CollectionName)
}

func (achiever *AchieverModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := achiever.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (achiever *AchieverModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := achiever.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (achiever *AchieverModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := achiever.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (achiever *AchieverModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := achiever.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (achiever *AchieverModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := achiever.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewAchieverModel() Collection {
	if achieverModel == nil {
		achieverModel = &AchieverModel{
			CollectionName: ACHIEVERS_COLLECTION,
		}
	}
	return achieverModel
}

var achieverJsonSchema = bson.M{
	"bsonType": "object",
	"required": []string{"name", "exam", "rank", "year", "image", "isActive", "createdAt"},
	"properties": bson.M{
		"name":        bson.M{"bsonType": "string", "maxLength": 100},
		"exam":        bson.M{"bsonType": "string", "maxLength": 50},
		"rank":        bson.M{"bsonType": "string", "maxLength": 20},
		"year":        bson.M{"bsonType": "int"},
		"image":       bson.M{"bsonType": "string"},
		"testimonial": bson.M{"bsonType": "string", "maxLength": 1000},
		"isActive":    bson.M{"bsonType": "bool"},
		"createdAt":   bson.M{"bsonType": "date"},
	},
}

package models

import (
	"github.com/UCDC-Institute/Website_BCMS/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const STUDENT_CORNER_COLLECTION = "studentcorners"

var CornerCategories = []string{"announcement", "event", "news", "achievement"}

var studentCornerModel *StudentCornerModel

type StudentCorner struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image" bson:"image"`
	Link        string             `json:"link,omitempty" bson:"link,omitempty"`
	Category    string             `json:"category" bson:"category" example:"announcement"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

type StudentCornerModel struct {
	CollectionName string
}

func (corner *StudentCornerModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(corner.CollectionName)
}

func (corner *StudentCornerModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := corner.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (corner *StudentCornerModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := corner.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (corner *StudentCornerModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := corner.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (corner *StudentCornerModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := corner.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (corner *StudentCornerModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := corner.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewStudentCornerModel() Collection {
	if studentCornerModel == nil {
		studentCornerModel = &StudentCornerModel{
			CollectionName: STUDENT_CORNER_COLLECTION,
		}
	}
	return studentCornerModel
}

var studentCornerJsonSchema = bson.M{
	"bsonType": "object",
	"required": []string{"title", "description", "image", "category", "isActive", "createdAt"},
	"properties": bson.M{
		"title":       bson.M{"bsonType": "string", "maxLength": 100},
		"description": bson.M{"bsonType": "string", "maxLength": 500},
		"image":       bson.M{"bsonType": "string"},
		"link":        bson.M{"bsonType": "string"},
		"category":    bson.M{"enum": CornerCategories},
		"isActive":    bson.M{"bsonType": "bool"},
		"createdAt":   bson.M{"bsonType": "date"},
	},
}

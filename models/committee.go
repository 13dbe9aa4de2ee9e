package models

import (
	"github.com/UCDC-Institute/Website_BCMS/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const COMMITTEE_COLLECTION = "committees"

var committeeModel *CommitteeModel

type Committee struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Name      string             `json:"name" bson:"name"`
	Position  string             `json:"position" bson:"position" example:"Director"`
	Image     string             `json:"image" bson:"image"`
	Bio       string             `json:"bio,omitempty" bson:"bio,omitempty"`
	Order     int                `json:"order" bson:"order"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

type CommitteeModel struct {
	CollectionName string
}

func (committee *CommitteeModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(committee.CollectionName)
}

func (committee *CommitteeModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := committee.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (committee *CommitteeModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := committee.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (committee *CommitteeModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := committee.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (committee *CommitteeModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := committee.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (committee *CommitteeModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := committee.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewCommitteeModel() Collection {
	if committeeModel == nil {
		committeeModel = &CommitteeModel{
			CollectionName: COMMITTEE_COLLECTION,
		}
	}
	return committeeModel
}

var committeeJsonSchema = bson.M{
	"bsonType": "object",
	"required": []string{"name", "position", "image", "order", "isActive", "createdAt"},
	"properties": bson.M{
		"name":      bson.M{"bsonType": "string", "maxLength": 100},
		"position":  bson.M{"bsonType": "string", "maxLength": 100},
		"image":     bson.M{"bsonType": "string"},
		"bio":       bson.M{"bsonType": "string", "maxLength": 1000},
		"order":     bson.M{"bsonType": "int"},
		"isActive":  bson.M{"bsonType": "bool"},
		"createdAt": bson.M{"bsonType": "date"},
	},
}

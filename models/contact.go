package models

import (
	"github.com/UCDC-Institute/Website_BCMS/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CONTACTS_COLLECTION = "contacts"

var contactModel *ContactModel

// Contact messages are write-only from the public form; listing,
// marking read and deleting are admin operations.
type Contact struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone" bson:"phone"`
	Subject   string             `json:"subject" bson:"subject"`
	Message   string             `json:"message" bson:"message"`
	IsRead    bool               `json:"isRead" bson:"isRead"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

type ContactModel struct {
	CollectionName string
}

func (contact *ContactModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(contact.CollectionName)
}

func (contact *ContactModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := contact.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (contact *ContactModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := contact.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (contact *ContactModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := contact.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (contact *ContactModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := contact.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (contact *ContactModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := contact.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewContactModel() Collection {
	if contactModel == nil {
		contactModel = &ContactModel{
			CollectionName: CONTACTS_COLLECTION,
		}
	}
	return contactModel
}

var contactJsonSchema = bson.M{
	"bsonType": "object",
	"required": []string{"name", "email", "phone", "subject", "message", "isRead", "createdAt"},
	"properties": bson.M{
		"name":      bson.M{"bsonType": "string", "maxLength": 100},
		"email":     bson.M{"bsonType": "string"},
		"phone":     bson.M{"bsonType": "string"},
		"subject":   bson.M{"bsonType": "string", "maxLength": 200},
		"message":   bson.M{"bsonType": "string", "maxLength": 1000},
		"isRead":    bson.M{"bsonType": "bool"},
		"createdAt": bson.M{"bsonType": "date"},
	},
}

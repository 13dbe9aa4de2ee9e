package models

import (
	"github.com/UCDC-Institute/Website_BCMS/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const USERS_COLLECTION = "users"

// Roles
const (
	ADMIN  = "admin"
	EDITOR = "editor"
)

var userModel *UserModel

// User is a dashboard account. Users are never exposed through the
// collection CRUD surface; only login and /auth/me read them.
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role" example:"admin"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

type SimpleUser struct {
	ID    string `json:"id" example:"63785424db1efbc237faecca"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UserModel struct {
	CollectionName string
}

func (user *UserModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(user.CollectionName)
}

func (user *UserModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := user.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (user *UserModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := user.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (user *UserModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := user.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (user *UserModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := user.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (user *UserModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := user.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewUserModel() Collection {
	if userModel == nil {
		userModel = &UserModel{
			CollectionName: USERS_COLLECTION,
		}
	}
	return userModel
}

var userJsonSchema = bson.M{
	"bsonType": "object",
	"required": []string{"name", "email", "password", "role", "isActive", "createdAt"},
	"properties": bson.M{
		"name":      bson.M{"bsonType": "string", "maxLength": 100},
		"email":     bson.M{"bsonType": "string"},
		"password":  bson.M{"bsonType": "string"},
		"role":      bson.M{"enum": []string{ADMIN, EDITOR}},
		"isActive":  bson.M{"bsonType": "bool"},
		"createdAt": bson.M{"bsonType": "date"},
	},
}

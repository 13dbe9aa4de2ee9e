package models

import (
	"github.com/UCDC-Institute/Website_BCMS/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const GALLERY_COLLECTION = "galleries"

var GalleryCategories = []string{"event", "classroom", "achievement", "facility", "other"}

var galleryModel *GalleryModel

type Gallery struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image" bson:"image"`
	Category    string             `json:"category" bson:"category" example:"event"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

type GalleryModel struct {
	CollectionName string
}

func (gallery *GalleryModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(gallery.CollectionName)
}

func (gallery *GalleryModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := gallery.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (gallery *GalleryModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := gallery.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (gallery *GalleryModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := gallery.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (gallery *GalleryModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := gallery.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (gallery *GalleryModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := gallery.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewGalleryModel() Collection {
	if galleryModel == nil {
		galleryModel = &GalleryModel{
			CollectionName: GALLERY_COLLECTION,
		}
	}
	return galleryModel
}

var galleryJsonSchema = bson.M{
	"bsonType": "object",
	"required": []string{"title", "image", "category", "isActive", "createdAt"},
	"properties": bson.M{
		"title":       bson.M{"bsonType": "string", "maxLength": 100},
		"description": bson.M{"bsonType": "string", "maxLength": 500},
		"image":       bson.M{"bsonType": "string"},
		"category":    bson.M{"enum": GalleryCategories},
		"isActive":    bson.M{"bsonType": "bool"},
		"createdAt":   bson.M{"bsonType": "date"},
	},
}

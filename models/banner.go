package models

import (
	"github.com/UCDC-Institute/Website_BCMS/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BANNERS_COLLECTION = "banners"

var bannerModel *BannerModel

// Banner is a slide of the home carousel. Order drives the display
// sequence; only active banners are rendered publicly.
type Banner struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Title       string             `json:"title" bson:"title" example:"Admissions Open"`
	Description string             `json:"description" bson:"description" example:"Apply now"`
	Image       string             `json:"image" bson:"image" example:"/uploads/banner.jpg"`
	Link        string             `json:"link,omitempty" bson:"link,omitempty" example:"https://example.com"`
	Order       int                `json:"order" bson:"order" example:"1"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

type BannerModel struct {
	CollectionName string
}

func (banner *BannerModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(banner.CollectionName)
}

func (banner *BannerModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := banner.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (banner *BannerModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := banner.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (banner *BannerModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := banner.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (banner *BannerModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := banner.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (banner *BannerModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := banner.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewBannerModel() Collection {
	if bannerModel == nil {
		bannerModel = &BannerModel{
			CollectionName: BANNERS_COLLECTION,
		}
	}
	return bannerModel
}

var bannerJsonSchema = bson.M{
	"bsonType": "object",
	"required": []string{"title", "description", "image", "order", "isActive", "createdAt"},
	"properties": bson.M{
		"title":       bson.M{"bsonType": "string", "maxLength": 100},
		"description": bson.M{"bsonType": "string", "maxLength": 500},
		"image":       bson.M{"bsonType": "string"},
		"link":        bson.M{"bsonType": "string"},
		"order":       bson.M{"bsonType": "int"},
		"isActive":    bson.M{"bsonType": "bool"},
		"createdAt":   bson.M{"bsonType": "date"},
	},
}

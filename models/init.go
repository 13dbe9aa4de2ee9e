package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UCDC-Institute/Website_BCMS/db"
)

var collectionSchemas = map[string]bson.M{
	BANNERS_COLLECTION:        bannerJsonSchema,
	ACHIEVERS_COLLECTION:      achieverJsonSchema,
	ALUMNI_COLLECTION:         alumniJsonSchema,
	COMMITTEE_COLLECTION:      committeeJsonSchema,
	CONTACTS_COLLECTION:       contactJsonSchema,
	COURSES_COLLECTION:        courseJsonSchema,
	GALLERY_COLLECTION:        galleryJsonSchema,
	STUDENT_CORNER_COLLECTION: studentCornerJsonSchema,
	FACILITIES_COLLECTION:     facilityJsonSchema,
	USERS_COLLECTION:          userJsonSchema,
}

// InitCollections creates every missing collection with its JSON schema
// validator and the unique email indexes. Called once at server start.
func InitCollections() error {
	existing, err := DbConnect.GetCollections()
	if err != nil {
		return err
	}
	exists := make(map[string]bool)
	for _, collection := range existing {
		exists[collection] = true
	}

	for name, schema := range collectionSchemas {
		if exists[name] {
			continue
		}
		opts := options.CreateCollection().SetValidator(bson.M{
			"$jsonSchema": schema,
		})
		err := DbConnect.GetCollection(name).Database().CreateCollection(db.Ctx, name, opts)
		if err != nil {
			return err
		}
	}
	// Unique emails
	for _, name := range []string{ALUMNI_COLLECTION, USERS_COLLECTION} {
		_, err := DbConnect.GetCollection(name).Indexes().CreateOne(db.Ctx, mongo.IndexModel{
			Keys: bson.D{
				{
					Key:   "email",
					Value: 1,
				},
			},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

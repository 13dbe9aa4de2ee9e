package services

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UCDC-Institute/Website_BCMS/db"
	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/models"
	"github.com/UCDC-Institute/Website_BCMS/res"
)

var facilityService *FacilityService

type FacilityService struct{}

func facilityImages(imageForms []forms.FacilityImageForm) []models.FacilityImage {
	images := make([]models.FacilityImage, len(imageForms))
	for i, image := range imageForms {
		images[i] = models.FacilityImage{
			URL: image.URL,
			Alt: image.Alt,
		}
	}
	return images
}

// GetFacilities lists facilities, optionally narrowed to one type for
// the tabbed public page. An unknown type is rejected.
func (f *FacilityService) GetFacilities(facilityType string) ([]models.Facility, *res.ErrorRes) {
	filter := bson.D{}
	if facilityType != "" {
		if !models.IsFacilityType(facilityType) {
			return nil, &res.ErrorRes{
				Err:        errors.New("invalid facility type"),
				StatusCode: http.StatusBadRequest,
			}
		}
		filter = bson.D{
			{
				Key:   "type",
				Value: facilityType,
			},
		}
	}
	findOptions := options.Find().SetSort(bson.D{
		{
			Key:   "createdAt",
			Value: -1,
		},
	})
	cursor, err := facilityModel.GetAll(filter, findOptions)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	facilities := []models.Facility{}
	if err := cursor.All(db.Ctx, &facilities); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return facilities, nil
}

func (f *FacilityService) NewFacility(facilityForm *forms.FacilityForm) (*models.Facility, *res.ErrorRes) {
	features := facilityForm.Features
	if features == nil {
		features = []string{}
	}
	facility := &models.Facility{
		Type:        facilityForm.Type,
		Title:       facilityForm.Title,
		Description: facilityForm.Description,
		Features:    features,
		Images:      facilityImages(facilityForm.Images),
		Capacity:    facilityForm.Capacity,
		Timings:     facilityForm.Timings,
		Contact:     facilityForm.Contact,
		IsActive:    boolOrTrue(facilityForm.IsActive),
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}
	inserted, err := facilityModel.NewDocument(facility)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	facility.ID = inserted.InsertedID.(primitive.ObjectID)
	return facility, nil
}

func (f *FacilityService) UpdateFacility(
	idFacility string,
	facilityForm *forms.FacilityUpdateForm,
) (*models.Facility, *res.ErrorRes) {
	idObjFacility, err := primitive.ObjectIDFromHex(idFacility)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	set := bson.M{}
	if facilityForm.Type != nil {
		set["type"] = *facilityForm.Type
	}
	if facilityForm.Title != nil {
		set["title"] = *facilityForm.Title
	}
	if facilityForm.Description != nil {
		set["description"] = *facilityForm.Description
	}
	if facilityForm.Features != nil {
		set["features"] = facilityForm.Features
	}
	if facilityForm.Images != nil {
		set["images"] = facilityImages(facilityForm.Images)
	}
	if facilityForm.Capacity != nil {
		set["capacity"] = *facilityForm.Capacity
	}
	if facilityForm.Timings != nil {
		set["timings"] = *facilityForm.Timings
	}
	if facilityForm.Contact != nil {
		set["contact"] = *facilityForm.Contact
	}
	if facilityForm.IsActive != nil {
		set["isActive"] = *facilityForm.IsActive
	}
	set["updatedAt"] = now()

	var facility models.Facility
	err = facilityModel.Use().FindOneAndUpdate(
		db.Ctx,
		bson.D{
			{
				Key:   "_id",
				Value: idObjFacility,
			},
		},
		bson.D{
			{
				Key:   "$set",
				Value: set,
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&facility)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("facility not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &facility, nil
}

func (f *FacilityService) DeleteFacility(idFacility string) *res.ErrorRes {
	idObjFacility, err := primitive.ObjectIDFromHex(idFacility)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	var deleted models.Facility
	err = facilityModel.Use().FindOneAndDelete(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: idObjFacility,
		},
	}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &res.ErrorRes{
				Err:        errors.New("facility not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func NewFacilityService() *FacilityService {
	if facilityService == nil {
		facilityService = &FacilityService{}
	}
	return facilityService
}

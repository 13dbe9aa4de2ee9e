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

var achieverService *AchieverService

type AchieverService struct{}

func (a *AchieverService) GetAchievers() ([]models.Achiever, *res.ErrorRes) {
	findOptions := options.Find().SetSort(bson.D{
		{
			Key:   "createdAt",
			Value: -1,
		},
	})
	cursor, err := achieverModel.GetAll(bson.D{}, findOptions)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	achievers := []models.Achiever{}
	if err := cursor.All(db.Ctx, &achievers); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return achievers, nil
}

func (a *AchieverService) NewAchiever(achieverForm *forms.AchieverForm) (*models.Achiever, *res.ErrorRes) {
	achiever := &models.Achiever{
		Name:        achieverForm.Name,
		Exam:        achieverForm.Exam,
		Rank:        achieverForm.Rank,
		Year:        achieverForm.Year,
		Image:       achieverForm.Image,
		Testimonial: achieverForm.Testimonial,
		IsActive:    boolOrTrue(achieverForm.IsActive),
		CreatedAt:   now(),
	}
	inserted, err := achieverModel.NewDocument(achiever)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	achiever.ID = inserted.InsertedID.(primitive.ObjectID)
	return achiever, nil
}

func (a *AchieverService) UpdateAchiever(
	idAchiever string,
	achieverForm *forms.AchieverUpdateForm,
) (*models.Achiever, *res.ErrorRes) {
	idObjAchiever, err := primitive.ObjectIDFromHex(idAchiever)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	set := bson.M{}
	if achieverForm.Name != nil {
		set["name"] = *achieverForm.Name
	}
	if achieverForm.Exam != nil {
		set["exam"] = *achieverForm.Exam
	}
	if achieverForm.Rank != nil {
		set["rank"] = *achieverForm.Rank
	}
	if achieverForm.Year != nil {
		set["year"] = *achieverForm.Year
	}
	if achieverForm.Image != nil {
		set["image"] = *achieverForm.Image
	}
	if achieverForm.Testimonial != nil {
		set["testimonial"] = *achieverForm.Testimonial
	}
	if achieverForm.IsActive != nil {
		set["isActive"] = *achieverForm.IsActive
	}

	var achiever models.Achiever
	if len(set) == 0 {
		if err := achieverModel.GetByID(idObjAchiever).Decode(&achiever); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &res.ErrorRes{
					Err:        errors.New("achiever not found"),
					StatusCode: http.StatusNotFound,
				}
			}
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		return &achiever, nil
	}
	err = achieverModel.Use().FindOneAndUpdate(
		db.Ctx,
		bson.D{
			{
				Key:   "_id",
				Value: idObjAchiever,
			},
		},
		bson.D{
			{
				Key:   "$set",
				Value: set,
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&achiever)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("achiever not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &achiever, nil
}

func (a *AchieverService) DeleteAchiever(idAchiever string) *res.ErrorRes {
	idObjAchiever, err := primitive.ObjectIDFromHex(idAchiever)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	var deleted models.Achiever
	err = achieverModel.Use().FindOneAndDelete(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: idObjAchiever,
		},
	}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &res.ErrorRes{
				Err:        errors.New("achiever not found"),
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

func NewAchieverService() *AchieverService {
	if achieverService == nil {
		achieverService = &AchieverService{}
	}
	return achieverService
}

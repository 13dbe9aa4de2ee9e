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

var studentCornerService *StudentCornerService

type StudentCornerService struct{}

func (s *StudentCornerService) GetItems() ([]models.StudentCorner, *res.ErrorRes) {
	findOptions := options.Find().SetSort(bson.D{
		{
			Key:   "createdAt",
			Value: -1,
		},
	})
	cursor, err := studentCornerModel.GetAll(bson.D{}, findOptions)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	items := []models.StudentCorner{}
	if err := cursor.All(db.Ctx, &items); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return items, nil
}

func (s *StudentCornerService) NewItem(itemForm *forms.StudentCornerForm) (*models.StudentCorner, *res.ErrorRes) {
	item := &models.StudentCorner{
		Title:       itemForm.Title,
		Description: itemForm.Description,
		Image:       itemForm.Image,
		Link:        itemForm.Link,
		Category:    itemForm.Category,
		IsActive:    boolOrTrue(itemForm.IsActive),
		CreatedAt:   now(),
	}
	inserted, err := studentCornerModel.NewDocument(item)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	item.ID = inserted.InsertedID.(primitive.ObjectID)
	return item, nil
}

func (s *StudentCornerService) UpdateItem(
	idItem string,
	itemForm *forms.StudentCornerUpdateForm,
) (*models.StudentCorner, *res.ErrorRes) {
	idObjItem, err := primitive.ObjectIDFromHex(idItem)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	set := bson.M{}
	if itemForm.Title != nil {
		set["title"] = *itemForm.Title
	}
	if itemForm.Description != nil {
		set["description"] = *itemForm.Description
	}
	if itemForm.Image != nil {
		set["image"] = *itemForm.Image
	}
	if itemForm.Link != nil {
		set["link"] = *itemForm.Link
	}
	if itemForm.Category != nil {
		set["category"] = *itemForm.Category
	}
	if itemForm.IsActive != nil {
		set["isActive"] = *itemForm.IsActive
	}

	var item models.StudentCorner
	if len(set) == 0 {
		if err := studentCornerModel.GetByID(idObjItem).Decode(&item); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &res.ErrorRes{
					Err:        errors.New("student corner item not found"),
					StatusCode: http.StatusNotFound,
				}
			}
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		return &item, nil
	}
	err = studentCornerModel.Use().FindOneAndUpdate(
		db.Ctx,
		bson.D{
			{
				Key:   "_id",
				Value: idObjItem,
			},
		},
		bson.D{
			{
				Key:   "$set",
				Value: set,
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("student corner item not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &item, nil
}

func (s *StudentCornerService) DeleteItem(idItem string) *res.ErrorRes {
	idObjItem, err := primitive.ObjectIDFromHex(idItem)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	var deleted models.StudentCorner
	err = studentCornerModel.Use().FindOneAndDelete(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: idObjItem,
		},
	}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &res.ErrorRes{
				Err:        errors.New("student corner item not found"),
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

func NewStudentCornerService() *StudentCornerService {
	if studentCornerService == nil {
		studentCornerService = &StudentCornerService{}
	}
	return studentCornerService
}

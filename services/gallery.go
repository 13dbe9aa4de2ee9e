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

var galleryService *GalleryService

type GalleryService struct{}

func (g *GalleryService) GetGallery() ([]models.Gallery, *res.ErrorRes) {
	findOptions := options.Find().SetSort(bson.D{
		{
			Key:   "createdAt",
			Value: -1,
		},
	})
	cursor, err := galleryModel.GetAll(bson.D{}, findOptions)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	images := []models.Gallery{}
	if err := cursor.All(db.Ctx, &images); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return images, nil
}

func (g *GalleryService) NewImage(galleryForm *forms.GalleryForm) (*models.Gallery, *res.ErrorRes) {
	image := &models.Gallery{
		Title:       galleryForm.Title,
		Description: galleryForm.Description,
		Image:       galleryForm.Image,
		Category:    galleryForm.Category,
		IsActive:    boolOrTrue(galleryForm.IsActive),
		CreatedAt:   now(),
	}
	inserted, err := galleryModel.NewDocument(image)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	image.ID = inserted.InsertedID.(primitive.ObjectID)
	return image, nil
}

func (g *GalleryService) UpdateImage(
	idImage string,
	galleryForm *forms.GalleryUpdateForm,
) (*models.Gallery, *res.ErrorRes) {
	idObjImage, err := primitive.ObjectIDFromHex(idImage)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	set := bson.M{}
	if galleryForm.Title != nil {
		set["title"] = *galleryForm.Title
	}
	if galleryForm.Description != nil {
		set["description"] = *galleryForm.Description
	}
	if galleryForm.Image != nil {
		set["image"] = *galleryForm.Image
	}
	if galleryForm.Category != nil {
		set["category"] = *galleryForm.Category
	}
	if galleryForm.IsActive != nil {
		set["isActive"] = *galleryForm.IsActive
	}

	var image models.Gallery
	if len(set) == 0 {
		if err := galleryModel.GetByID(idObjImage).Decode(&image); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &res.ErrorRes{
					Err:        errors.New("gallery image not found"),
					StatusCode: http.StatusNotFound,
				}
			}
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		return &image, nil
	}
	err = galleryModel.Use().FindOneAndUpdate(
		db.Ctx,
		bson.D{
			{
				Key:   "_id",
				Value: idObjImage,
			},
		},
		bson.D{
			{
				Key:   "$set",
				Value: set,
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&image)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("gallery image not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &image, nil
}

func (g *GalleryService) DeleteImage(idImage string) *res.ErrorRes {
	idObjImage, err := primitive.ObjectIDFromHex(idImage)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	var deleted models.Gallery
	err = galleryModel.Use().FindOneAndDelete(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: idObjImage,
		},
	}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &res.ErrorRes{
				Err:        errors.New("gallery image not found"),
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

func NewGalleryService() *GalleryService {
	if galleryService == nil {
		galleryService = &GalleryService{}
	}
	return galleryService
}

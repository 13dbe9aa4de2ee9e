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

var bannerService *BannerService

type BannerService struct{}

// GetBanners returns every banner sorted by display order.
func (b *BannerService) GetBanners() ([]models.Banner, *res.ErrorRes) {
	findOptions := options.Find().SetSort(bson.D{
		{
			Key:   "order",
			Value: 1,
		},
	})
	cursor, err := bannerModel.GetAll(bson.D{}, findOptions)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	banners := []models.Banner{}
	if err := cursor.All(db.Ctx, &banners); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return banners, nil
}

func (b *BannerService) NewBanner(bannerForm *forms.BannerForm) (*models.Banner, *res.ErrorRes) {
	banner := &models.Banner{
		Title:       bannerForm.Title,
		Description: bannerForm.Description,
		Image:       bannerForm.Image,
		Link:        bannerForm.Link,
		Order:       bannerForm.Order,
		IsActive:    boolOrTrue(bannerForm.IsActive),
		CreatedAt:   now(),
	}
	inserted, err := bannerModel.NewDocument(banner)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	banner.ID = inserted.InsertedID.(primitive.ObjectID)
	return banner, nil
}

func (b *BannerService) UpdateBanner(
	idBanner string,
	bannerForm *forms.BannerUpdateForm,
) (*models.Banner, *res.ErrorRes) {
	idObjBanner, err := primitive.ObjectIDFromHex(idBanner)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	set := bson.M{}
	if bannerForm.Title != nil {
		set["title"] = *bannerForm.Title
	}
	if bannerForm.Description != nil {
		set["description"] = *bannerForm.Description
	}
	if bannerForm.Image != nil {
		set["image"] = *bannerForm.Image
	}
	if bannerForm.Link != nil {
		set["link"] = *bannerForm.Link
	}
	if bannerForm.Order != nil {
		set["order"] = *bannerForm.Order
	}
	if bannerForm.IsActive != nil {
		set["isActive"] = *bannerForm.IsActive
	}

	var banner models.Banner
	if len(set) == 0 {
		if err := bannerModel.GetByID(idObjBanner).Decode(&banner); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &res.ErrorRes{
					Err:        errors.New("banner not found"),
					StatusCode: http.StatusNotFound,
				}
			}
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		return &banner, nil
	}
	err = bannerModel.Use().FindOneAndUpdate(
		db.Ctx,
		bson.D{
			{
				Key:   "_id",
				Value: idObjBanner,
			},
		},
		bson.D{
			{
				Key:   "$set",
				Value: set,
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&banner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("banner not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &banner, nil
}

func (b *BannerService) DeleteBanner(idBanner string) *res.ErrorRes {
	idObjBanner, err := primitive.ObjectIDFromHex(idBanner)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	var deleted models.Banner
	err = bannerModel.Use().FindOneAndDelete(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: idObjBanner,
		},
	}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &res.ErrorRes{
				Err:        errors.New("banner not found"),
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

func NewBannerService() *BannerService {
	if bannerService == nil {
		bannerService = &BannerService{}
	}
	return bannerService
}

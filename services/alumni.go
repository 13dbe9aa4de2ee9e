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

var alumniService *AlumniService

type AlumniService struct{}

func (a *AlumniService) GetAlumni() ([]models.Alumni, *res.ErrorRes) {
	findOptions := options.Find().SetSort(bson.D{
		{
			Key:   "createdAt",
			Value: -1,
		},
	})
	cursor, err := alumniModel.GetAll(bson.D{}, findOptions)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	alumni := []models.Alumni{}
	if err := cursor.All(db.Ctx, &alumni); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return alumni, nil
}

// RegisterAlumni stores a public self-registration. The row always
// starts unapproved; an admin flips isApproved through UpdateAlumni.
func (a *AlumniService) RegisterAlumni(alumniForm *forms.AlumniRegisterForm) (*models.Alumni, *res.ErrorRes) {
	alumni := &models.Alumni{
		Name:            alumniForm.Name,
		Email:           alumniForm.Email,
		Phone:           alumniForm.Phone,
		Course:          alumniForm.Course,
		Batch:           alumniForm.Batch,
		CurrentPosition: alumniForm.CurrentPosition,
		Company:         alumniForm.Company,
		Image:           alumniForm.Image,
		Testimonial:     alumniForm.Testimonial,
		IsApproved:      false,
		CreatedAt:       now(),
	}
	inserted, err := alumniModel.NewDocument(alumni)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &res.ErrorRes{
				Err:        errors.New("email already registered"),
				StatusCode: http.StatusBadRequest,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	alumni.ID = inserted.InsertedID.(primitive.ObjectID)
	return alumni, nil
}

func (a *AlumniService) UpdateAlumni(
	idAlumni string,
	alumniForm *forms.AlumniUpdateForm,
) (*models.Alumni, *res.ErrorRes) {
	idObjAlumni, err := primitive.ObjectIDFromHex(idAlumni)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	set := bson.M{}
	if alumniForm.Name != nil {
		set["name"] = *alumniForm.Name
	}
	if alumniForm.Email != nil {
		set["email"] = *alumniForm.Email
	}
	if alumniForm.Phone != nil {
		set["phone"] = *alumniForm.Phone
	}
	if alumniForm.Course != nil {
		set["course"] = *alumniForm.Course
	}
	if alumniForm.Batch != nil {
		set["batch"] = *alumniForm.Batch
	}
	if alumniForm.CurrentPosition != nil {
		set["currentPosition"] = *alumniForm.CurrentPosition
	}
	if alumniForm.Company != nil {
		set["company"] = *alumniForm.Company
	}
	if alumniForm.Image != nil {
		set["image"] = *alumniForm.Image
	}
	if alumniForm.Testimonial != nil {
		set["testimonial"] = *alumniForm.Testimonial
	}
	if alumniForm.IsApproved != nil {
		set["isApproved"] = *alumniForm.IsApproved
	}

	var alumni models.Alumni
	if len(set) == 0 {
		if err := alumniModel.GetByID(idObjAlumni).Decode(&alumni); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &res.ErrorRes{
					Err:        errors.New("alumni not found"),
					StatusCode: http.StatusNotFound,
				}
			}
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		return &alumni, nil
	}
	err = alumniModel.Use().FindOneAndUpdate(
		db.Ctx,
		bson.D{
			{
				Key:   "_id",
				Value: idObjAlumni,
			},
		},
		bson.D{
			{
				Key:   "$set",
				Value: set,
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&alumni)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("alumni not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, &res.ErrorRes{
				Err:        errors.New("email already registered"),
				StatusCode: http.StatusBadRequest,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &alumni, nil
}

func (a *AlumniService) DeleteAlumni(idAlumni string) *res.ErrorRes {
	idObjAlumni, err := primitive.ObjectIDFromHex(idAlumni)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	var deleted models.Alumni
	err = alumniModel.Use().FindOneAndDelete(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: idObjAlumni,
		},
	}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &res.ErrorRes{
				Err:        errors.New("alumni not found"),
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

func NewAlumniService() *AlumniService {
	if alumniService == nil {
		alumniService = &AlumniService{}
	}
	return alumniService
}

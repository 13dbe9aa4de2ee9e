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

var committeeService *CommitteeService

type CommitteeService struct{}

func (c *CommitteeService) GetCommittee() ([]models.Committee, *res.ErrorRes) {
	findOptions := options.Find().SetSort(bson.D{
		{
			Key:   "order",
			Value: 1,
		},
	})
	cursor, err := committeeModel.GetAll(bson.D{}, findOptions)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	members := []models.Committee{}
	if err := cursor.All(db.Ctx, &members); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return members, nil
}

func (c *CommitteeService) NewMember(memberForm *forms.CommitteeForm) (*models.Committee, *res.ErrorRes) {
	member := &models.Committee{
		Name:      memberForm.Name,
		Position:  memberForm.Position,
		Image:     memberForm.Image,
		Bio:       memberForm.Bio,
		Order:     memberForm.Order,
		IsActive:  boolOrTrue(memberForm.IsActive),
		CreatedAt: now(),
	}
	inserted, err := committeeModel.NewDocument(member)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	member.ID = inserted.InsertedID.(primitive.ObjectID)
	return member, nil
}

func (c *CommitteeService) UpdateMember(
	idMember string,
	memberForm *forms.CommitteeUpdateForm,
) (*models.Committee, *res.ErrorRes) {
	idObjMember, err := primitive.ObjectIDFromHex(idMember)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	set := bson.M{}
	if memberForm.Name != nil {
		set["name"] = *memberForm.Name
	}
	if memberForm.Position != nil {
		set["position"] = *memberForm.Position
	}
	if memberForm.Image != nil {
		set["image"] = *memberForm.Image
	}
	if memberForm.Bio != nil {
		set["bio"] = *memberForm.Bio
	}
	if memberForm.Order != nil {
		set["order"] = *memberForm.Order
	}
	if memberForm.IsActive != nil {
		set["isActive"] = *memberForm.IsActive
	}

	var member models.Committee
	if len(set) == 0 {
		if err := committeeModel.GetByID(idObjMember).Decode(&member); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &res.ErrorRes{
					Err:        errors.New("committee member not found"),
					StatusCode: http.StatusNotFound,
				}
			}
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		return &member, nil
	}
	err = committeeModel.Use().FindOneAndUpdate(
		db.Ctx,
		bson.D{
			{
				Key:   "_id",
				Value: idObjMember,
			},
		},
		bson.D{
			{
				Key:   "$set",
				Value: set,
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("committee member not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &member, nil
}

func (c *CommitteeService) DeleteMember(idMember string) *res.ErrorRes {
	idObjMember, err := primitive.ObjectIDFromHex(idMember)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	var deleted models.Committee
	err = committeeModel.Use().FindOneAndDelete(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: idObjMember,
		},
	}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &res.ErrorRes{
				Err:        errors.New("committee member not found"),
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

func NewCommitteeService() *CommitteeService {
	if committeeService == nil {
		committeeService = &CommitteeService{}
	}
	return committeeService
}

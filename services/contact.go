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

var contactService *ContactService

type ContactService struct{}

// GetContacts lists every message, newest first. Admin only.
func (c *ContactService) GetContacts() ([]models.Contact, *res.ErrorRes) {
	findOptions := options.Find().SetSort(bson.D{
		{
			Key:   "createdAt",
			Value: -1,
		},
	})
	cursor, err := contactModel.GetAll(bson.D{}, findOptions)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	contacts := []models.Contact{}
	if err := cursor.All(db.Ctx, &contacts); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return contacts, nil
}

func (c *ContactService) NewContact(contactForm *forms.ContactForm) (*models.Contact, *res.ErrorRes) {
	contact := &models.Contact{
		Name:      contactForm.Name,
		Email:     contactForm.Email,
		Phone:     contactForm.Phone,
		Subject:   contactForm.Subject,
		Message:   contactForm.Message,
		IsRead:    false,
		CreatedAt: now(),
	}
	inserted, err := contactModel.NewDocument(contact)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	contact.ID = inserted.InsertedID.(primitive.ObjectID)
	return contact, nil
}

// MarkRead toggles the read flag of a message.
func (c *ContactService) MarkRead(
	idContact string,
	contactForm *forms.ContactUpdateForm,
) (*models.Contact, *res.ErrorRes) {
	idObjContact, err := primitive.ObjectIDFromHex(idContact)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	var contact models.Contact
	err = contactModel.Use().FindOneAndUpdate(
		db.Ctx,
		bson.D{
			{
				Key:   "_id",
				Value: idObjContact,
			},
		},
		bson.D{
			{
				Key: "$set",
				Value: bson.M{
					"isRead": *contactForm.IsRead,
				},
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &res.ErrorRes{
				Err:        errors.New("contact message not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &contact, nil
}

func (c *ContactService) DeleteContact(idContact string) *res.ErrorRes {
	idObjContact, err := primitive.ObjectIDFromHex(idContact)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	var deleted models.Contact
	err = contactModel.Use().FindOneAndDelete(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: idObjContact,
		},
	}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &res.ErrorRes{
				Err:        errors.New("contact message not found"),
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

func NewContactService() *ContactService {
	if contactService == nil {
		contactService = &ContactService{}
	}
	return contactService
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type ContactController struct{}

var contactService = services.NewContactService()

// NewContact godoc
// @Summary New contact message
// @Desc    Public contact form submission
// @Tags    contact
// @Accept  json
// @Produce json
// @Success 201 {object} res.Response{}
// @Failure 400 {object} res.Response{} "Validation failed"
// @Router  /contact [post]
func (contact *ContactController) NewContact(c *gin.Context) {
	var contactData *forms.ContactForm

	if err := c.ShouldBindJSON(&contactData); err != nil {
		abortBindError(c, err)
		return
	}
	created, errRes := contactService.NewContact(contactData)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data: gin.H{
			"contact": created,
		},
	})
}

// MarkRead godoc
// @Summary Mark contact message read
// @Desc    Only the read flag is mutable. Messages themselves are immutable
// @Tags    contact
// @Tags    roles.admin
// @Accept  json
// @Produce json
// @Param   idContact path     string true "MongoID"
// @Success 200       {object} res.Response{}
// @Failure 404       {object} res.Response{} "Message not found"
// @Router  /contact/{idContact} [put]
func (contact *ContactController) MarkRead(c *gin.Context) {
	idContact := c.Param("idContact")
	var contactData *forms.ContactUpdateForm

	if err := c.ShouldBindJSON(&contactData); err != nil {
		abortBindError(c, err)
		return
	}
	updated, errRes := contactService.MarkRead(idContact, contactData)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Data: gin.H{
			"contact": updated,
		},
	})
}

// DeleteContact godoc
// @Summary Delete contact message
// @Tags    contact
// @Tags    roles.admin
// @Produce json
// @Param   idContact path     string true "MongoID"
// @Success 200       {object} res.Response{}
// @Failure 404       {object} res.Response{} "Message not found"
// @Router  /contact/{idContact} [delete]
func (contact *ContactController) DeleteContact(c *gin.Context) {
	idContact := c.Param("idContact")

	if errRes := contactService.DeleteContact(idContact); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Message: "Contact message deleted successfully",
	})
}

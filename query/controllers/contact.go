package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type ContactController struct{}

var contactService = services.NewContactService()

// GetContacts godoc
// @Summary Get contact messages
// @Tags    contact
// @Tags    roles.admin
// @Produce json
// @Success 200 {object} res.Response{}
// @Failure 401 {object} res.Response{} "Unauthorized"
// @Router  /contact [get]
func (contact *ContactController) GetContacts(c *gin.Context) {
	contacts, errRes := contactService.GetContacts()
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
		Data: gin.H{
			"contacts": contacts,
		},
	})
}

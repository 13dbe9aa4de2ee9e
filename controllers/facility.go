package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type FacilityController struct{}

var facilityService = services.NewFacilityService()

func (facility *FacilityController) NewFacility(c *gin.Context) {
	var facilityData *forms.FacilityForm

	if err := c.ShouldBindJSON(&facilityData); err != nil {
		abortBindError(c, err)
		return
	}
	created, errRes := facilityService.NewFacility(facilityData)
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
			"facility": created,
		},
	})
}

func (facility *FacilityController) UpdateFacility(c *gin.Context) {
	idFacility := c.Param("idFacility")
	var facilityData *forms.FacilityUpdateForm

	if err := c.ShouldBindJSON(&facilityData); err != nil {
		abortBindError(c, err)
		return
	}
	updated, errRes := facilityService.UpdateFacility(idFacility, facilityData)
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
			"facility": updated,
		},
	})
}

func (facility *FacilityController) DeleteFacility(c *gin.Context) {
	idFacility := c.Param("idFacility")

	if errRes := facilityService.DeleteFacility(idFacility); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Message: "Facility deleted successfully",
	})
}

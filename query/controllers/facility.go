package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type FacilityController struct{}

var facilityService = services.NewFacilityService()

// GetFacilities godoc
// @Summary Get facilities
// @Tags    facilities
// @Produce json
// @Param   type query    string false "accommodation|library|classroom|computer-lab|canteen"
// @Success 200  {object} res.Response{}
// @Failure 400  {object} res.Response{} "Invalid facility type"
// @Router  /facilities [get]
func (facility *FacilityController) GetFacilities(c *gin.Context) {
	facilityType := c.DefaultQuery("type", "")

	facilities, errRes := facilityService.GetFacilities(facilityType)
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
			"facilities": facilities,
		},
	})
}

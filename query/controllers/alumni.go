package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type AlumniController struct{}

var alumniService = services.NewAlumniService()

// GetAlumni godoc
// @Summary Get alumni
// @Desc    All alumni entries, newest first. Approval filtering is up to
// @Desc    the client
// @Tags    alumni
// @Produce json
// @Success 200 {object} res.Response{}
// @Router  /alumni [get]
func (alumni *AlumniController) GetAlumni(c *gin.Context) {
	entries, errRes := alumniService.GetAlumni()
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
			"alumni": entries,
		},
	})
}

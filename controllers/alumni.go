package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type AlumniController struct{}

var alumniService = services.NewAlumniService()

// RegisterAlumni godoc
// @Summary Register alumni
// @Desc    Public alumni registration. Entries stay unapproved until an
// @Desc    admin flips isApproved
// @Tags    alumni
// @Accept  json
// @Produce json
// @Success 201 {object} res.Response{}
// @Failure 400 {object} res.Response{} "Validation failed / email taken"
// @Router  /alumni [post]
func (alumni *AlumniController) RegisterAlumni(c *gin.Context) {
	var alumniData *forms.AlumniRegisterForm

	if err := c.ShouldBindJSON(&alumniData); err != nil {
		abortBindError(c, err)
		return
	}
	registered, errRes := alumniService.RegisterAlumni(alumniData)
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
			"alumni": registered,
		},
	})
}

// UpdateAlumni godoc
// @Summary Update alumni
// @Tags    alumni
// @Tags    roles.admin
// @Accept  json
// @Produce json
// @Param   idAlumni path     string true "MongoID"
// @Success 200      {object} res.Response{}
// @Failure 404      {object} res.Response{} "Alumni not found"
// @Router  /alumni/{idAlumni} [put]
func (alumni *AlumniController) UpdateAlumni(c *gin.Context) {
	idAlumni := c.Param("idAlumni")
	var alumniData *forms.AlumniUpdateForm

	if err := c.ShouldBindJSON(&alumniData); err != nil {
		abortBindError(c, err)
		return
	}
	updated, errRes := alumniService.UpdateAlumni(idAlumni, alumniData)
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
			"alumni": updated,
		},
	})
}

// DeleteAlumni godoc
// @Summary Delete alumni
// @Tags    alumni
// @Tags    roles.admin
// @Produce json
// @Param   idAlumni path     string true "MongoID"
// @Success 200      {object} res.Response{}
// @Failure 404      {object} res.Response{} "Alumni not found"
// @Router  /alumni/{idAlumni} [delete]
func (alumni *AlumniController) DeleteAlumni(c *gin.Context) {
	idAlumni := c.Param("idAlumni")

	if errRes := alumniService.DeleteAlumni(idAlumni); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Message: "Alumni deleted successfully",
	})
}

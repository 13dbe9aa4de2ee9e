package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type AchieverController struct{}

var achieverService = services.NewAchieverService()

func (achiever *AchieverController) NewAchiever(c *gin.Context) {
	var achieverData *forms.AchieverForm

	if err := c.ShouldBindJSON(&achieverData); err != nil {
		abortBindError(c, err)
		return
	}
	created, errRes := achieverService.NewAchiever(achieverData)
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
			"achiever": created,
		},
	})
}

func (achiever *AchieverController) UpdateAchiever(c *gin.Context) {
	idAchiever := c.Param("idAchiever")
	var achieverData *forms.AchieverUpdateForm

	if err := c.ShouldBindJSON(&achieverData); err != nil {
		abortBindError(c, err)
		return
	}
	updated, errRes := achieverService.UpdateAchiever(idAchiever, achieverData)
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
			"achiever": updated,
		},
	})
}

func (achiever *AchieverController) DeleteAchiever(c *gin.Context) {
	idAchiever := c.Param("idAchiever")

	if errRes := achieverService.DeleteAchiever(idAchiever); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Message: "Achiever deleted successfully",
	})
}

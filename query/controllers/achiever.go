package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type AchieverController struct{}

var achieverService = services.NewAchieverService()

func (achiever *AchieverController) GetAchievers(c *gin.Context) {
	achievers, errRes := achieverService.GetAchievers()
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
			"achievers": achievers,
		},
	})
}

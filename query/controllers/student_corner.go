package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type StudentCornerController struct{}

var studentCornerService = services.NewStudentCornerService()

func (corner *StudentCornerController) GetItems(c *gin.Context) {
	items, errRes := studentCornerService.GetItems()
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
			"items": items,
		},
	})
}

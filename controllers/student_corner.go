package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type StudentCornerController struct{}

var studentCornerService = services.NewStudentCornerService()

func (corner *StudentCornerController) NewItem(c *gin.Context) {
	var itemData *forms.StudentCornerForm

	if err := c.ShouldBindJSON(&itemData); err != nil {
		abortBindError(c, err)
		return
	}
	created, errRes := studentCornerService.NewItem(itemData)
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
			"item": created,
		},
	})
}

func (corner *StudentCornerController) UpdateItem(c *gin.Context) {
	idItem := c.Param("idItem")
	var itemData *forms.StudentCornerUpdateForm

	if err := c.ShouldBindJSON(&itemData); err != nil {
		abortBindError(c, err)
		return
	}
	updated, errRes := studentCornerService.UpdateItem(idItem, itemData)
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
			"item": updated,
		},
	})
}

func (corner *StudentCornerController) DeleteItem(c *gin.Context) {
	idItem := c.Param("idItem")

	if errRes := studentCornerService.DeleteItem(idItem); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Message: "Student corner item deleted successfully",
	})
}

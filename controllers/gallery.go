package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type GalleryController struct{}

var galleryService = services.NewGalleryService()

func (gallery *GalleryController) NewImage(c *gin.Context) {
	var imageData *forms.GalleryForm

	if err := c.ShouldBindJSON(&imageData); err != nil {
		abortBindError(c, err)
		return
	}
	created, errRes := galleryService.NewImage(imageData)
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
			"image": created,
		},
	})
}

func (gallery *GalleryController) UpdateImage(c *gin.Context) {
	idImage := c.Param("idImage")
	var imageData *forms.GalleryUpdateForm

	if err := c.ShouldBindJSON(&imageData); err != nil {
		abortBindError(c, err)
		return
	}
	updated, errRes := galleryService.UpdateImage(idImage, imageData)
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
			"image": updated,
		},
	})
}

func (gallery *GalleryController) DeleteImage(c *gin.Context) {
	idImage := c.Param("idImage")

	if errRes := galleryService.DeleteImage(idImage); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Message: "Gallery image deleted successfully",
	})
}

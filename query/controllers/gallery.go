package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type GalleryController struct{}

var galleryService = services.NewGalleryService()

func (gallery *GalleryController) GetGallery(c *gin.Context) {
	images, errRes := galleryService.GetGallery()
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
			"gallery": images,
		},
	})
}

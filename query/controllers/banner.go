package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type BannerController struct{}

// Services
var bannerService = services.NewBannerService()

// GetBanners godoc
// @Summary Get banners
// @Desc    Home carousel banners, sorted by order ascending
// @Tags    banners
// @Produce json
// @Success 200 {object} res.Response{}
// @Router  /banners [get]
func (banner *BannerController) GetBanners(c *gin.Context) {
	banners, errRes := bannerService.GetBanners()
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
			"banners": banners,
		},
	})
}

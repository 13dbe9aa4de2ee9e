package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type BannerController struct{}

// Services
var bannerService = services.NewBannerService()

// NewBanner godoc
// @Summary New banner
// @Desc    New home carousel banner
// @Tags    banners
// @Tags    roles.admin
// @Accept  json
// @Produce json
// @Success 201 {object} res.Response{}
// @Failure 400 {object} res.Response{} "Validation failed"
// @Failure 401 {object} res.Response{} "Unauthorized"
// @Router  /banners [post]
func (banner *BannerController) NewBanner(c *gin.Context) {
	var bannerData *forms.BannerForm

	if err := c.ShouldBindJSON(&bannerData); err != nil {
		abortBindError(c, err)
		return
	}
	created, errRes := bannerService.NewBanner(bannerData)
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
			"banner": created,
		},
	})
}

// UpdateBanner godoc
// @Summary Update banner
// @Tags    banners
// @Tags    roles.admin
// @Accept  json
// @Produce json
// @Param   idBanner path     string true "MongoID"
// @Success 200      {object} res.Response{}
// @Failure 400      {object} res.Response{} "Bad path param"
// @Failure 404      {object} res.Response{} "Banner not found"
// @Router  /banners/{idBanner} [put]
func (banner *BannerController) UpdateBanner(c *gin.Context) {
	idBanner := c.Param("idBanner")
	var bannerData *forms.BannerUpdateForm

	if err := c.ShouldBindJSON(&bannerData); err != nil {
		abortBindError(c, err)
		return
	}
	updated, errRes := bannerService.UpdateBanner(idBanner, bannerData)
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
			"banner": updated,
		},
	})
}

// DeleteBanner godoc
// @Summary Delete banner
// @Tags    banners
// @Tags    roles.admin
// @Produce json
// @Param   idBanner path     string true "MongoID"
// @Success 200      {object} res.Response{}
// @Failure 404      {object} res.Response{} "Banner not found"
// @Router  /banners/{idBanner} [delete]
func (banner *BannerController) DeleteBanner(c *gin.Context) {
	idBanner := c.Param("idBanner")

	if errRes := bannerService.DeleteBanner(idBanner); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Message: "Banner deleted successfully",
	})
}

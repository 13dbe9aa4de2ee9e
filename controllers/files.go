package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type FilesController struct{}

var filesService = services.NewFilesService()

// UploadImage godoc
// @Summary Upload image
// @Desc    Multipart image upload. Stores the file in S3 and returns the
// @Desc    key and a presigned URL
// @Tags    files
// @Tags    roles.admin
// @Accept  mpfd
// @Produce json
// @Param   image formData file true "Image file, max 5 MiB"
// @Success 201   {object} res.Response{}
// @Failure 400   {object} res.Response{} "Missing file / bad type / too big"
// @Router  /upload [post]
func (files *FilesController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "image file is required",
		})
		return
	}
	uploaded, errRes := filesService.UploadImage(file)
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
			"file": uploaded,
		},
	})
}

package controllers

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type ExportsController struct{}

var filesService = services.NewFilesService()

// ExportContacts godoc
// @Summary Export contact messages
// @Desc    All contact messages as an Excel sheet
// @Tags    exports
// @Tags    roles.admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Sucess  200 {file} io.Writer "Excel File"
// @Failure 401 {object} res.Response{} "Unauthorized"
// @Router  /contact/export [get]
func (e *ExportsController) ExportContacts(c *gin.Context) {
	c.Writer.Header().Set(
		"Content-type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	)
	c.Writer.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename='contacts_%s.xlsx'", time.Now().Format("2006-01-02")),
	)
	c.Stream(func(w io.Writer) bool {
		if errRes := contactService.ExportContacts(w); errRes != nil {
			c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
				Success: false,
				Message: errRes.Err.Error(),
			})
		}
		return false
	})
}

// ExportAlumni godoc
// @Summary Export alumni
// @Desc    All alumni entries as a PDF table
// @Tags    exports
// @Tags    roles.admin
// @Produce application/pdf
// @Sucess  200 {file} binary "PDF File"
// @Failure 401 {object} res.Response{} "Unauthorized"
// @Router  /alumni/export [get]
func (e *ExportsController) ExportAlumni(c *gin.Context) {
	c.Writer.Header().Set("Content-type", "application/pdf")
	c.Writer.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename='alumni_%s.pdf'", time.Now().Format("2006-01-02")),
	)
	c.Stream(func(w io.Writer) bool {
		if errRes := alumniService.ExportAlumni(w); errRes != nil {
			c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
				Success: false,
				Message: errRes.Err.Error(),
			})
		}
		return false
	})
}

// DownloadGallery godoc
// @Summary Download gallery
// @Desc    Every gallery image fetched from storage and zipped
// @Tags    exports
// @Tags    roles.admin
// @Produce application/zip
// @Sucess  200 {file} binary "Zip File"
// @Failure 401 {object} res.Response{} "Unauthorized"
// @Router  /gallery/download [get]
func (e *ExportsController) DownloadGallery(c *gin.Context) {
	c.Writer.Header().Set("Content-type", "application/zip")
	c.Writer.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename='gallery_%s.zip'", time.Now().Format("2006-01-02")),
	)
	c.Stream(func(w io.Writer) bool {
		if errRes := filesService.DownloadGalleryZip(w); errRes != nil {
			c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
				Success: false,
				Message: errRes.Err.Error(),
			})
		}
		return false
	})
}

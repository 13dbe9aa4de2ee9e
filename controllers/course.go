package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type CourseController struct{}

var courseService = services.NewCourseService()

// NewCourse godoc
// @Summary New course
// @Desc    The category in the body tags the created course and fixes
// @Desc    it under /courses/{category}
// @Tags    courses
// @Tags    roles.admin
// @Accept  json
// @Produce json
// @Success 201 {object} res.Response{}
// @Failure 400 {object} res.Response{} "Validation failed"
// @Router  /courses [post]
func (course *CourseController) NewCourse(c *gin.Context) {
	var courseData *forms.NewCourseForm

	if err := c.ShouldBindJSON(&courseData); err != nil {
		abortBindError(c, err)
		return
	}
	created, errRes := courseService.NewCourse(courseData)
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
			"course": created,
		},
	})
}

// UpdateCourse godoc
// @Summary Update course
// @Desc    The category of the route wins over any category in the body
// @Tags    courses
// @Tags    roles.admin
// @Accept  json
// @Produce json
// @Param   category path     string true "upsc|gpsc|ielts|cds"
// @Param   idCourse path     string true "MongoID"
// @Success 200      {object} res.Response{}
// @Failure 400      {object} res.Response{} "Invalid category"
// @Failure 404      {object} res.Response{} "Course not found"
// @Router  /courses/{category}/{idCourse} [put]
func (course *CourseController) UpdateCourse(c *gin.Context) {
	category := c.Param("category")
	idCourse := c.Param("idCourse")
	var courseData *forms.CourseUpdateForm

	if err := c.ShouldBindJSON(&courseData); err != nil {
		abortBindError(c, err)
		return
	}
	updated, errRes := courseService.UpdateCourse(category, idCourse, courseData)
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
			"course": updated,
		},
	})
}

// DeleteCourse godoc
// @Summary Delete course
// @Tags    courses
// @Tags    roles.admin
// @Produce json
// @Param   category path     string true "upsc|gpsc|ielts|cds"
// @Param   idCourse path     string true "MongoID"
// @Success 200      {object} res.Response{}
// @Failure 404      {object} res.Response{} "Course not found"
// @Router  /courses/{category}/{idCourse} [delete]
func (course *CourseController) DeleteCourse(c *gin.Context) {
	category := c.Param("category")
	idCourse := c.Param("idCourse")

	if errRes := courseService.DeleteCourse(category, idCourse); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Message: "Course deleted successfully",
	})
}

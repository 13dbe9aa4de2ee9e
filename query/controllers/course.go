package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type CourseController struct{}

var courseService = services.NewCourseService()

// GetCourses godoc
// @Summary Get courses
// @Desc    Courses grouped by category. Every category is present in the
// @Desc    response, empty ones as empty arrays
// @Tags    courses
// @Produce json
// @Success 200 {object} res.Response{}
// @Router  /courses [get]
func (course *CourseController) GetCourses(c *gin.Context) {
	grouped, errRes := courseService.GetCourses()
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
			"courses": grouped,
		},
	})
}

// GetCourse godoc
// @Summary Get course
// @Tags    courses
// @Produce json
// @Param   category path     string true "upsc|gpsc|ielts|cds"
// @Param   idCourse path     string true "MongoID"
// @Success 200      {object} res.Response{}
// @Failure 400      {object} res.Response{} "Invalid category"
// @Failure 404      {object} res.Response{} "Course not found"
// @Router  /courses/{category}/{idCourse} [get]
func (course *CourseController) GetCourse(c *gin.Context) {
	category := c.Param("category")
	idCourse := c.Param("idCourse")

	found, errRes := courseService.GetCourse(category, idCourse)
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
			"course": found,
		},
	})
}

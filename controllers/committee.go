package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type CommitteeController struct{}

var committeeService = services.NewCommitteeService()

func (committee *CommitteeController) NewMember(c *gin.Context) {
	var memberData *forms.CommitteeForm

	if err := c.ShouldBindJSON(&memberData); err != nil {
		abortBindError(c, err)
		return
	}
	created, errRes := committeeService.NewMember(memberData)
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
			"member": created,
		},
	})
}

func (committee *CommitteeController) UpdateMember(c *gin.Context) {
	idMember := c.Param("idMember")
	var memberData *forms.CommitteeUpdateForm

	if err := c.ShouldBindJSON(&memberData); err != nil {
		abortBindError(c, err)
		return
	}
	updated, errRes := committeeService.UpdateMember(idMember, memberData)
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
			"member": updated,
		},
	})
}

func (committee *CommitteeController) DeleteMember(c *gin.Context) {
	idMember := c.Param("idMember")

	if errRes := committeeService.DeleteMember(idMember); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Message: "Committee member deleted successfully",
	})
}

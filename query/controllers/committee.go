package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

type CommitteeController struct{}

var committeeService = services.NewCommitteeService()

func (committee *CommitteeController) GetCommittee(c *gin.Context) {
	members, errRes := committeeService.GetCommittee()
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
			"committee": members,
		},
	})
}

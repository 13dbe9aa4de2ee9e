package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UCDC-Institute/Website_BCMS/forms"
	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
	"github.com/UCDC-Institute/Website_BCMS/settings"
)

type AuthController struct{}

var authService = services.NewAuthService()

var settingsData = settings.GetSettings()

// Login godoc
// @Summary Log in
// @Desc    Verifies credentials and sets the session cookie. The token is
// @Desc    also returned in the body for bearer clients
// @Tags    auth
// @Accept  json
// @Produce json
// @Success 200 {object} res.Response{}
// @Failure 401 {object} res.Response{} "Invalid credentials"
// @Router  /auth/login [post]
func (auth *AuthController) Login(c *gin.Context) {
	var loginData *forms.LoginForm

	if err := c.ShouldBindJSON(&loginData); err != nil {
		abortBindError(c, err)
		return
	}
	user, token, errRes := authService.Login(loginData)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		services.AUTH_COOKIE,
		token,
		int(services.SESSION_DURATION.Seconds()),
		"/",
		"",
		settingsData.NODE_ENV == "prod",
		true,
	)
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Data: gin.H{
			"user":  user,
			"token": token,
		},
	})
}

// Logout godoc
// @Summary Log out
// @Desc    Expires the session cookie
// @Tags    auth
// @Produce json
// @Success 200 {object} res.Response{}
// @Router  /auth/logout [post]
func (auth *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		services.AUTH_COOKIE,
		"",
		-1,
		"/",
		"",
		settingsData.NODE_ENV == "prod",
		true,
	)
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Message: "Logged out",
	})
}

// GetMe godoc
// @Summary Current user
// @Tags    auth
// @Tags    roles.admin
// @Tags    roles.editor
// @Produce json
// @Success 200 {object} res.Response{}
// @Failure 401 {object} res.Response{} "Unauthorized"
// @Router  /auth/me [get]
func (auth *AuthController) GetMe(c *gin.Context) {
	claims, ok := services.NewClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}
	user, errRes := authService.GetUserFromID(claims.ID)
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
			"user": user,
		},
	})
}

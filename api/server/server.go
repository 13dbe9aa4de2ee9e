package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/UCDC-Institute/Website_BCMS/controllers"
	"github.com/UCDC-Institute/Website_BCMS/middlewares"
	"github.com/UCDC-Institute/Website_BCMS/models"
	"github.com/UCDC-Institute/Website_BCMS/res"
	"github.com/UCDC-Institute/Website_BCMS/services"
	"github.com/UCDC-Institute/Website_BCMS/settings"
)

var settingsData = settings.GetSettings()

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, &res.Response{
		Success: false,
		Message: "Too many requests. Try again in" + time.Until(info.ResetTime).String(),
	})
}

func Init() {
	if err := models.InitCollections(); err != nil {
		log.Fatalf("Error init collections: %s", err)
	}
	if err := services.NewAuthService().EnsureAdminUser(); err != nil {
		log.Fatalf("Error ensuring admin user: %s", err)
	}

	router := gin.New()
	// Proxies
	router.SetTrustedProxies([]string{"localhost"})
	// Zap logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/healthz"},
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(string); ok {
			c.String(http.StatusInternalServerError, fmt.Sprintf("Server Internal Error: %s", err))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.Response{
			Success: false,
			Message: "Server Internal Error",
		})
	}))
	// CORS
	httpOrigin := "http://" + settingsData.CLIENT_URL
	httpsOrigin := "https://" + settingsData.CLIENT_URL
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{httpOrigin, httpsOrigin},
		AllowMethods:     []string{"GET", "OPTIONS", "PUT", "DELETE", "POST"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		AllowWebSockets:  false,
		MaxAge:           12 * time.Hour,
	}))
	// Secure
	sslUrl := "ssl." + settingsData.CLIENT_URL
	secureConfig := secure.Config{
		SSLHost:              sslUrl,
		STSSeconds:           315360000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		IENoOpen:             true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		SSLProxyHeaders: map[string]string{
			"X-Fowarded-Proto": "https",
		},
	}
	router.Use(secure.New(secureConfig))
	// Rate limit
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: 7,
	})
	mw := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: ErrorHandler,
		KeyFunc:      keyFunc,
	})
	router.Use(mw)
	// Validators
	InitValidators()
	// Routes
	adminRoles := []string{models.ADMIN, models.EDITOR}
	auth := router.Group("/api/auth")
	public := router.Group("/api")
	admin := router.Group(
		"/api",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(adminRoles),
	)
	{
		// Init controllers
		authController := new(controllers.AuthController)
		bannerController := new(controllers.BannerController)
		achieverController := new(controllers.AchieverController)
		alumniController := new(controllers.AlumniController)
		committeeController := new(controllers.CommitteeController)
		contactController := new(controllers.ContactController)
		courseController := new(controllers.CourseController)
		galleryController := new(controllers.GalleryController)
		studentCornerController := new(controllers.StudentCornerController)
		facilityController := new(controllers.FacilityController)
		filesController := new(controllers.FilesController)
		// Define routes
		// Auth
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", middlewares.JWTMiddleware(), authController.GetMe)
		// Public writes
		public.POST("/contact", contactController.NewContact)
		public.POST("/alumni", alumniController.RegisterAlumni)
		// Banners
		admin.POST("/banners", bannerController.NewBanner)
		admin.PUT("/banners/:idBanner", bannerController.UpdateBanner)
		admin.DELETE("/banners/:idBanner", bannerController.DeleteBanner)
		// Achievers
		admin.POST("/achievers", achieverController.NewAchiever)
		admin.PUT("/achievers/:idAchiever", achieverController.UpdateAchiever)
		admin.DELETE("/achievers/:idAchiever", achieverController.DeleteAchiever)
		// Alumni
		admin.PUT("/alumni/:idAlumni", alumniController.UpdateAlumni)
		admin.DELETE("/alumni/:idAlumni", alumniController.DeleteAlumni)
		// Committee
		admin.POST("/committee", committeeController.NewMember)
		admin.PUT("/committee/:idMember", committeeController.UpdateMember)
		admin.DELETE("/committee/:idMember", committeeController.DeleteMember)
		// Contact
		admin.PUT("/contact/:idContact", contactController.MarkRead)
		admin.DELETE("/contact/:idContact", contactController.DeleteContact)
		// Courses
		admin.POST("/courses", courseController.NewCourse)
		admin.PUT("/courses/:category/:idCourse", courseController.UpdateCourse)
		admin.DELETE("/courses/:category/:idCourse", courseController.DeleteCourse)
		// Gallery
		admin.POST("/gallery", galleryController.NewImage)
		admin.PUT("/gallery/:idImage", galleryController.UpdateImage)
		admin.DELETE("/gallery/:idImage", galleryController.DeleteImage)
		// Student corner
		admin.POST("/student-corner", studentCornerController.NewItem)
		admin.PUT("/student-corner/:idItem", studentCornerController.UpdateItem)
		admin.DELETE("/student-corner/:idItem", studentCornerController.DeleteItem)
		// Facilities
		admin.POST("/facilities", facilityController.NewFacility)
		admin.PUT("/facilities/:idFacility", facilityController.UpdateFacility)
		admin.DELETE("/facilities/:idFacility", facilityController.DeleteFacility)
		// Upload
		admin.POST("/upload", filesController.UploadImage)
	}
	// Route healthz
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, &res.Response{
			Success: true,
		})
	})
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(404, res.Response{
			Success: false,
			Message: "Not found",
		})
	})
	// Init server
	if err := router.Run(); err != nil {
		log.Fatalf("Error init server")
	}
}

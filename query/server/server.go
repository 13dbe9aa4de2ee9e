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

	"github.com/UCDC-Institute/Website_BCMS/middlewares"
	"github.com/UCDC-Institute/Website_BCMS/models"
	controllers_query "github.com/UCDC-Institute/Website_BCMS/query/controllers"
	"github.com/UCDC-Institute/Website_BCMS/res"
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
		AllowMethods:     []string{"GET", "OPTIONS"},
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
	// Routes
	adminRoles := []string{models.ADMIN, models.EDITOR}
	public := router.Group("/api")
	admin := router.Group(
		"/api",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(adminRoles),
	)
	{
		// Init controllers
		bannerController := new(controllers_query.BannerController)
		achieverController := new(controllers_query.AchieverController)
		alumniController := new(controllers_query.AlumniController)
		committeeController := new(controllers_query.CommitteeController)
		contactController := new(controllers_query.ContactController)
		courseController := new(controllers_query.CourseController)
		galleryController := new(controllers_query.GalleryController)
		studentCornerController := new(controllers_query.StudentCornerController)
		facilityController := new(controllers_query.FacilityController)
		exportsController := new(controllers_query.ExportsController)
		// Define routes
		// Public reads
		public.GET("/banners", bannerController.GetBanners)
		public.GET("/achievers", achieverController.GetAchievers)
		public.GET("/alumni", alumniController.GetAlumni)
		public.GET("/committee", committeeController.GetCommittee)
		public.GET("/courses", courseController.GetCourses)
		public.GET("/courses/:category/:idCourse", courseController.GetCourse)
		public.GET("/gallery", galleryController.GetGallery)
		public.GET("/student-corner", studentCornerController.GetItems)
		public.GET("/facilities", facilityController.GetFacilities)
		// Admin reads
		admin.GET("/contact", contactController.GetContacts)
		admin.GET("/contact/export", exportsController.ExportContacts)
		admin.GET("/alumni/export", exportsController.ExportAlumni)
		admin.GET("/gallery/download", exportsController.DownloadGallery)
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

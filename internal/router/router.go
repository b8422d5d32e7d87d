package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/tours360/tourgraph/docs"
	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/config"
	"github.com/tours360/tourgraph/internal/middleware"
	"github.com/tours360/tourgraph/internal/modules/handler"
	"github.com/tours360/tourgraph/internal/modules/serializer"
	"github.com/tours360/tourgraph/internal/telemetry"
)

type RouterDeps struct {
	Config          *config.Config
	Log             *zap.Logger
	Authorizer      auth.Authorizer
	PropertyHandler *handler.PropertyHandler
	SceneHandler    *handler.SceneHandler
	HotspotHandler  *handler.HotspotHandler
	GalleryHandler  *handler.GalleryHandler
	LeadHandler     *handler.LeadHandler
	StatsHandler    *handler.StatsHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.ExposeHeaders = []string{"X-Trace-Id"}
	r.Use(cors.New(corsCfg))

	if telemetry.Enabled(d.Config) {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		// Add trace ID to response header
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/public")
	{
		public.GET("/properties/:property_id/tour", d.PropertyHandler.GetPublicTour)
		public.POST("/properties/:property_id/leads", d.LeadHandler.CreateLead)
	}

	v1 := r.Group("/api/v1")
	{
		// every editor route is authorized before its input is parsed
		v1.Use(middleware.BearerCaller(), middleware.Authorize(d.Authorizer))

		v1.GET("/stats", d.StatsHandler.GetStats)

		properties := v1.Group("/properties")
		{
			properties.GET("", d.PropertyHandler.ListProperties)
			properties.POST("", d.PropertyHandler.CreateProperty)
			properties.GET("/:property_id", d.PropertyHandler.GetProperty)
			properties.PATCH("/:property_id", d.PropertyHandler.UpdateProperty)
			properties.DELETE("/:property_id", d.PropertyHandler.DeleteProperty)

			properties.GET("/:property_id/tour", d.PropertyHandler.GetTour)
			properties.POST("/:property_id/publish", d.PropertyHandler.Publish)
			properties.POST("/:property_id/unpublish", d.PropertyHandler.Unpublish)

			properties.GET("/:property_id/scenes", d.SceneHandler.ListScenes)
			properties.POST("/:property_id/scenes", d.SceneHandler.CreateScene)
			properties.POST("/:property_id/scenes/upload", d.SceneHandler.UploadScene)
			properties.PUT("/:property_id/scenes/order", d.SceneHandler.ReorderScenes)

			properties.GET("/:property_id/gallery", d.GalleryHandler.ListGallery)
			properties.POST("/:property_id/gallery", d.GalleryHandler.AddImage)
			properties.POST("/:property_id/gallery/upload", d.GalleryHandler.UploadImage)

			properties.GET("/:property_id/leads", d.LeadHandler.ListPropertyLeads)
		}

		scenes := v1.Group("/scenes")
		{
			scenes.GET("/:scene_id", d.SceneHandler.GetScene)
			scenes.PATCH("/:scene_id", d.SceneHandler.UpdateScene)
			scenes.DELETE("/:scene_id", d.SceneHandler.DeleteScene)
			scenes.PUT("/:scene_id/title", d.SceneHandler.RenameScene)
			scenes.POST("/:scene_id/default", d.SceneHandler.SetDefaultScene)

			scenes.GET("/:scene_id/hotspots", d.HotspotHandler.ListHotspots)
		}

		hotspots := v1.Group("/hotspots")
		{
			hotspots.POST("", d.HotspotHandler.CreateHotspot)
			hotspots.PATCH("/:hotspot_id", d.HotspotHandler.UpdateHotspot)
			hotspots.DELETE("/:hotspot_id", d.HotspotHandler.DeleteHotspot)
		}

		gallery := v1.Group("/gallery")
		{
			gallery.POST("/:image_id/main", d.GalleryHandler.SetMainImage)
			gallery.DELETE("/:image_id", d.GalleryHandler.DeleteImage)
		}

		leads := v1.Group("/leads")
		{
			leads.GET("", d.LeadHandler.ListLeads)
			leads.PATCH("/:lead_id", d.LeadHandler.UpdateLeadStatus)
			leads.DELETE("/:lead_id", d.LeadHandler.DeleteLead)
		}
	}
	return r
}

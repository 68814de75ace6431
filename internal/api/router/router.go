package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campusplan/backend/config"
	"campusplan/backend/internal/api/handler"
	"campusplan/backend/internal/api/middleware"
	"campusplan/backend/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
//
// The admin frontend consumes resource collections under trailing-slash
// paths (/lecturers/, /scheduler-constraints/, ...); Gin's trailing-slash
// redirect covers the bare variants.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// Mutations share one abuse limiter; reads stay unthrottled.
	limited := middleware.RateLimit(rdb, cfg.Server.RateLimit.Limit, cfg.Server.RateLimit.Window)

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── scheduler constraints & rule builder ──
	constraints := r.Group("/scheduler-constraints")
	{
		constraints.GET("/", h.Constraint.List)
		constraints.GET("/targets", h.Constraint.Targets)
		constraints.GET("/categories", h.Constraint.Categories)
		constraints.POST("/preview", h.Constraint.Preview)
		constraints.GET("/:id", h.Constraint.Get)
		constraints.POST("/", limited, h.Constraint.Create)
		constraints.PUT("/:id", limited, h.Constraint.Update)
		constraints.DELETE("/:id", limited, h.Constraint.Delete)
	}

	// ── lecturers ──
	lecturers := r.Group("/lecturers")
	{
		lecturers.GET("/", h.Lecturer.List)
		lecturers.GET("/:id", h.Lecturer.Get)
		lecturers.POST("/", limited, h.Lecturer.Create)
		lecturers.PUT("/:id", limited, h.Lecturer.Update)
		lecturers.DELETE("/:id", limited, h.Lecturer.Delete)
	}

	// ── student groups ──
	groups := r.Group("/groups")
	{
		groups.GET("/", h.Group.List)
		groups.GET("/:id", h.Group.Get)
		groups.POST("/", limited, h.Group.Create)
		groups.PUT("/:id", limited, h.Group.Update)
		groups.DELETE("/:id", limited, h.Group.Delete)
	}

	// ── modules ──
	modules := r.Group("/modules")
	{
		modules.GET("/", h.Module.List)
		modules.GET("/:code", h.Module.Get)
		modules.POST("/", limited, h.Module.Create)
		modules.PUT("/:code", limited, h.Module.Update)
		modules.DELETE("/:code", limited, h.Module.Delete)
	}

	// ── rooms ──
	rooms := r.Group("/rooms")
	{
		rooms.GET("/", h.Room.List)
		rooms.GET("/:id", h.Room.Get)
		rooms.POST("/", limited, h.Room.Create)
		rooms.PUT("/:id", limited, h.Room.Update)
		rooms.DELETE("/:id", limited, h.Room.Delete)
	}

	// ── study programs & specializations ──
	programs := r.Group("/study-programs")
	{
		programs.GET("/", h.Program.List)
		programs.GET("/:id", h.Program.Get)
		programs.POST("/", limited, h.Program.Create)
		programs.PUT("/:id", limited, h.Program.Update)
		programs.DELETE("/:id", limited, h.Program.Delete)
	}
	specializations := r.Group("/specializations")
	{
		specializations.GET("/", h.Program.ListSpecializations)
		specializations.GET("/:id", h.Program.GetSpecialization)
		specializations.POST("/", limited, h.Program.CreateSpecialization)
		specializations.PUT("/:id", limited, h.Program.UpdateSpecialization)
		specializations.DELETE("/:id", limited, h.Program.DeleteSpecialization)
	}

	// ── lecturer availabilities ──
	availabilities := r.Group("/availabilities")
	{
		availabilities.GET("/:lecturer_id", h.Availability.Get)
		availabilities.PUT("/:lecturer_id", limited, h.Availability.Update)
		availabilities.POST("/:lecturer_id/import", limited, h.Availability.Import)
		availabilities.DELETE("/:lecturer_id", limited, h.Availability.Delete)
	}

	// ── exports ──
	export := r.Group("/export")
	{
		export.GET("/constraints", h.Export.Constraints)
	}

	return r
}

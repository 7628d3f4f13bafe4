package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-backend/internal/config"
	"github.com/campuskit/campus-backend/internal/handler"
	"github.com/campuskit/campus-backend/internal/middleware"
	"github.com/campuskit/campus-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	College    *handler.CollegeHandler
	Student    *handler.StudentHandler
	Course     *handler.CourseHandler
	Timetable  *handler.TimetableHandler
	Enrollment *handler.EnrollmentHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for mutation routes (120 requests per minute per IP).
	writeLimiter := middleware.NewRateLimiter(120, time.Minute)
	limited := writeLimiter.Middleware()

	colleges := router.Group("/colleges")
	{
		colleges.POST("", limited, handlers.College.Create)
		colleges.GET("", handlers.College.List)
		colleges.GET("/:id", handlers.College.Get)
		colleges.PATCH("/:id", limited, handlers.College.Update)
		colleges.DELETE("/:id", limited, handlers.College.Delete)
	}

	students := router.Group("/students")
	{
		students.POST("", limited, handlers.Student.Create)
		students.GET("", handlers.Student.List)
		students.GET("/:id", handlers.Student.Get)
		students.PATCH("/:id", limited, handlers.Student.Update)
		students.DELETE("/:id", limited, handlers.Student.Delete)
	}

	courses := router.Group("/courses")
	{
		courses.POST("", limited, handlers.Course.Create)
		courses.GET("", handlers.Course.List)
		courses.GET("/:id", handlers.Course.Get)
		courses.PATCH("/:id", limited, handlers.Course.Update)
		courses.DELETE("/:id", limited, handlers.Course.Delete)
	}

	timetables := router.Group("/course-timetables")
	{
		timetables.POST("", limited, handlers.Timetable.Create)
		timetables.GET("", handlers.Timetable.List)
		timetables.GET("/:id", handlers.Timetable.Get)
		timetables.PATCH("/:id", limited, handlers.Timetable.Update)
		timetables.DELETE("/:id", limited, handlers.Timetable.Delete)
	}

	enrollments := router.Group("/student-course-mapping")
	{
		enrollments.POST("", limited, handlers.Enrollment.Enroll)
		enrollments.GET("/:student_id", handlers.Enrollment.GetByStudent)
	}

	return router
}

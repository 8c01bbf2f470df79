package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pcos/handlers"
)

// HandlerBundle collects the handlers routed by the campus server.
type HandlerBundle struct {
	Courses     *handlers.CourseHandler
	Students    *handlers.StudentHandler
	Enrollments *handlers.EnrollmentHandler
	Finance     *handlers.FinanceHandler
	Assets      *handlers.AssetHandler
}

// RegisterCourseRoutes registers the course catalog endpoints.
func RegisterCourseRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/courses")
	{
		api.POST("", hb.Courses.AddCourse)
		api.GET("", hb.Courses.ListCourses)
		api.GET("/conflict", hb.Courses.CheckConflict)
		api.GET("/:code", hb.Courses.GetCourse)
		api.PUT("/:code/lecturer", hb.Courses.AssignLecturer)
		api.POST("/:code/schedule", hb.Courses.AddSchedule)
		api.GET("/:code/report", hb.Courses.CourseReport)
	}
}

// RegisterStudentRoutes registers the student register endpoints.
func RegisterStudentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/students")
	{
		api.POST("", hb.Students.AddStudent)
		api.GET("", hb.Students.ListStudents)
		api.GET("/:id", hb.Students.GetStudent)
		api.POST("/:id/tuition", hb.Students.AddTuitionFee)
		api.GET("/:id/report", hb.Students.StudentReport)
		api.GET("/:id/transcript", hb.Students.StudentTranscript)
		api.GET("/:id/schedule", hb.Students.StudentSchedule)
	}
}

// RegisterEnrollmentRoutes registers enrollment and grading endpoints.
func RegisterEnrollmentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/enrollments")
	{
		api.POST("", hb.Enrollments.Enroll)
		api.GET("/find", hb.Enrollments.FindEnrollment)
		api.GET("/:id", hb.Enrollments.GetEnrollment)
		api.POST("/:id/withdraw", hb.Enrollments.Withdraw)
		api.PUT("/:id/grade", hb.Enrollments.AssignGrade)
		api.POST("/:id/assignments", hb.Enrollments.AddAssignmentScore)
		api.PUT("/:id/exam", hb.Enrollments.SetExamScore)
		api.POST("/:id/finalize", hb.Enrollments.FinalizeGrade)
	}
}

// RegisterFinanceRoutes registers the payment endpoints.
func RegisterFinanceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("", hb.Finance.ProcessPayment)
		api.GET("/:studentID/balance", hb.Finance.StudentBalance)
	}
}

// RegisterAssetRoutes registers the asset register and booking endpoints.
func RegisterAssetRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/assets")
	{
		api.POST("", hb.Assets.RegisterAsset)
		api.GET("", hb.Assets.ListAssets)
		api.GET("/:id", hb.Assets.GetAsset)
		api.GET("/:id/availability", hb.Assets.CheckAvailability)
		api.POST("/:id/bookings", hb.Assets.BookAsset)
		api.POST("/:id/checkin", hb.Assets.CheckIn)
		api.POST("/:id/checkout", hb.Assets.CheckOut)
		api.POST("/:id/maintenance", hb.Assets.AddMaintenance)
		api.PUT("/:id/status", hb.Assets.SetStatus)
		api.GET("/:id/fee", hb.Assets.QuoteFee)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm the PCOS campus server"})
	})
}

// RegisterRoutes wires all route groups onto the engine.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCourseRoutes(r, hb)
	RegisterStudentRoutes(r, hb)
	RegisterEnrollmentRoutes(r, hb)
	RegisterFinanceRoutes(r, hb)
	RegisterAssetRoutes(r, hb)
	RegisterHealthRoute(r)
}

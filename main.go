// File: pcos/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pcos/config"
	assetRepoPkg "pcos/database/repository/asset"
	courseRepoPkg "pcos/database/repository/course"
	enrollmentRepoPkg "pcos/database/repository/enrollment"
	studentRepoPkg "pcos/database/repository/student"
	"pcos/handlers"
	"pcos/middleware"
	"pcos/routes"
	"pcos/services/asset"
	"pcos/services/course"
	enrollmentSvc "pcos/services/enrollment"
	"pcos/services/finance"
	"pcos/services/grading"
	"pcos/services/student"
	"pcos/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlers.RegisterBindingRules()

	// repositories.
	courseRepo := courseRepoPkg.NewMemoryCourseRepo()
	studentRepo := studentRepoPkg.NewMemoryStudentRepo()
	enrollmentRepo := enrollmentRepoPkg.NewMemoryEnrollmentRepo()
	assetRepo := assetRepoPkg.NewMemoryAssetRepo()

	// services.
	courseService := &course.DefaultCourseService{Repo: courseRepo}
	studentService := &student.DefaultStudentService{Repo: studentRepo}
	enrollmentService := enrollmentSvc.NewEnrollmentService(studentRepo, courseRepo, enrollmentRepo)
	gradingService := &grading.DefaultGradingService{
		Enrollments: enrollmentRepo,
		Students:    studentRepo,
	}
	financeService := &finance.DefaultFinanceService{Students: studentRepo}
	assetService := asset.NewAssetService(assetRepo)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Courses:     handlers.NewCourseHandler(courseService, logger),
		Students:    handlers.NewStudentHandler(studentService, enrollmentService, logger),
		Enrollments: handlers.NewEnrollmentHandler(enrollmentService, gradingService, logger),
		Finance:     handlers.NewFinanceHandler(financeService, logger),
		Assets:      handlers.NewAssetHandler(assetService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

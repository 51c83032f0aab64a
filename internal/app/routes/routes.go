package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sykli/college-backend/internal/app/controllers"
	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	applicationController *controllers.ApplicationController,
	studentController *controllers.StudentController,
	catalogController *controllers.CatalogController,
	assetController *controllers.AssetController,
	newsController *controllers.NewsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// The catalog is browsable without an account so applicants can pick a
	// course before registering
	v1.GET("/schools", catalogController.GetAllSchools)
	v1.GET("/schools/:id", catalogController.GetSchoolByID)
	v1.GET("/departments", catalogController.GetAllDepartments)
	v1.GET("/departments/:id", catalogController.GetDepartmentByID)
	v1.GET("/courses", catalogController.GetAllCourses)
	v1.GET("/courses/:id", catalogController.GetCourseByID)
	v1.GET("/courses/:id/subjects", catalogController.GetCourseSubjects)
	v1.GET("/faculty-members", catalogController.GetAllFacultyMembers)
	v1.GET("/faculty-members/:id", catalogController.GetFacultyMemberByID)
	v1.GET("/news", newsController.GetAll)
	v1.GET("/news/:id", newsController.GetByID)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetProfile)

		applications := authenticated.Group("/applications")
		{
			applications.POST("", applicationController.Submit)
			applications.GET("/mine", applicationController.GetMine)
		}

		authenticated.GET("/students/mine", studentController.GetMine)
	}

	// --- Admin routes ---
	admin := authenticated.Group("")
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		adminApplications := admin.Group("/applications")
		{
			adminApplications.GET("", applicationController.GetAll)
			adminApplications.GET("/:id", applicationController.GetByID)
			adminApplications.PUT("/:id/status", applicationController.UpdateStatus)
			adminApplications.POST("/:id/enroll", applicationController.Enroll)
		}

		adminStudents := admin.Group("/students")
		{
			adminStudents.GET("", studentController.GetAll)
			adminStudents.GET("/:id", studentController.GetByID)
			adminStudents.PUT("/:id/status", studentController.UpdateStatus)
		}

		admin.POST("/schools", catalogController.CreateSchool)
		admin.PUT("/schools/:id", catalogController.UpdateSchool)
		admin.DELETE("/schools/:id", catalogController.DeleteSchool)
		admin.POST("/departments", catalogController.CreateDepartment)
		admin.PUT("/departments/:id", catalogController.UpdateDepartment)
		admin.DELETE("/departments/:id", catalogController.DeleteDepartment)
		admin.POST("/courses", catalogController.CreateCourse)
		admin.PUT("/courses/:id", catalogController.UpdateCourse)
		admin.DELETE("/courses/:id", catalogController.DeleteCourse)
		admin.POST("/subjects", catalogController.CreateSubject)
		admin.PUT("/subjects/:id", catalogController.UpdateSubject)
		admin.DELETE("/subjects/:id", catalogController.DeleteSubject)
		admin.POST("/faculty-members", catalogController.CreateFacultyMember)
		admin.PUT("/faculty-members/:id", catalogController.UpdateFacultyMember)
		admin.DELETE("/faculty-members/:id", catalogController.DeleteFacultyMember)

		adminAssets := admin.Group("/assets")
		{
			adminAssets.POST("", assetController.Create)
			adminAssets.GET("", assetController.GetAll)
			adminAssets.GET("/:id", assetController.GetByID)
			adminAssets.PUT("/:id", assetController.Update)
			adminAssets.POST("/:id/assign", assetController.Assign)
			adminAssets.DELETE("/:id/assign", assetController.Unassign)
			adminAssets.POST("/:id/photo", assetController.UploadPhoto)
			adminAssets.DELETE("/:id", assetController.Delete)
		}

		adminNews := admin.Group("/news")
		{
			adminNews.POST("", newsController.Create)
			adminNews.PUT("/:id", newsController.Update)
			adminNews.POST("/:id/cover", newsController.UploadCover)
			adminNews.DELETE("/:id", newsController.Delete)
		}
	}
}

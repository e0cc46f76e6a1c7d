package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sachin/campushub/internal/app/controllers"
	"github.com/sachin/campushub/internal/app/models"
	"github.com/sachin/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	timetableController *controllers.TimetableController,
	bookingController *controllers.BookingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Registration is an administrative operation.
		authAdmin := authenticated.Group("/auth")
		authAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			authAdmin.POST("/register", authController.Register)
		}

		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetProfile)
			users.GET("/me/notifications", userController.GetMyNotifications)
			users.PATCH("/me/notifications/:id/read", userController.MarkNotificationRead)
			users.GET("/me/timetable", userController.GetMyTimetable)

			usersAdminProtected := users.Group("")
			usersAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				usersAdminProtected.GET("", userController.GetAllUsers)
				usersAdminProtected.GET("/role/:role", userController.GetUsersByRole)
			}
		}

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)

			coursesAdminProtected := courses.Group("")
			coursesAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				coursesAdminProtected.POST("", courseController.CreateCourse)
				coursesAdminProtected.PUT("/:id", courseController.UpdateCourse)
				coursesAdminProtected.DELETE("/:id", courseController.DeleteCourse)
			}
		}

		enrollments := authenticated.Group("/enrollments")
		{
			// Self-or-admin gating happens in the controller.
			enrollments.GET("/student/:studentId", enrollmentController.GetStudentEnrollments)

			enrollmentsAdminProtected := enrollments.Group("")
			enrollmentsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				enrollmentsAdminProtected.POST("", enrollmentController.EnrollStudent)
				enrollmentsAdminProtected.GET("", enrollmentController.GetAllEnrollments)
				enrollmentsAdminProtected.DELETE("/:id", enrollmentController.UnenrollStudent)
			}
		}

		timetables := authenticated.Group("/timetables")
		{
			timetables.GET("", timetableController.GetAllTimetables)
			timetables.GET("/:groupId", timetableController.GetTimetableByGroupID)

			timetablesAdminProtected := timetables.Group("")
			timetablesAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				timetablesAdminProtected.POST("", timetableController.CreateTimetable)
				timetablesAdminProtected.PUT("/:groupId", timetableController.UpdateTimetable)
				timetablesAdminProtected.DELETE("/:groupId", timetableController.DeleteTimetable)
			}
		}

		// Any authenticated user can book a venue.
		bookings := authenticated.Group("/bookings")
		{
			bookings.GET("", bookingController.GetAllBookings)
			bookings.GET("/:id", bookingController.GetBookingByID)
			bookings.POST("", bookingController.CreateBooking)
			bookings.PUT("/:id", bookingController.UpdateBooking)
			bookings.DELETE("/:id", bookingController.DeleteBooking)
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/evren/schoolhub/internal/app/controllers"
	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	staffController *controllers.StaffController,
	studentController *controllers.StudentController,
	eventController *controllers.EventController,
	achievementController *controllers.AchievementController,
	projectController *controllers.ProjectController,
	salaryTemplateController *controllers.SalaryTemplateController,
	transportFormController *controllers.TransportFormController,
	leaveRequestController *controllers.LeaveRequestController,
	enquiryController *controllers.EnquiryController,
	resourceController *controllers.ResourceController,
	supportTicketController *controllers.SupportTicketController,
	disciplinaryActionController *controllers.DisciplinaryActionController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// Admission enquiries arrive from the public website, so creation needs
	// no account. Everything else on enquiries is staff-only below.
	v1.POST("/enquiries", enquiryController.CreateEnquiry)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Staff routes (admin only, including reads)
		staff := authenticated.Group("/staff")
		staff.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			staff.POST("", staffController.CreateStaff)
			staff.GET("", staffController.GetAllStaff)
			staff.GET("/:id", staffController.GetStaffByID)
			staff.PUT("/:id", staffController.UpdateStaff)
			staff.DELETE("/:id", staffController.DeleteStaff)
		}

		// Student routes
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)

			// Role-protected routes within students
			studentsWriteProtected := students.Group("")
			studentsWriteProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleTeacher)))
			{
				studentsWriteProtected.POST("", studentController.CreateStudent)
				studentsWriteProtected.PUT("/:id", studentController.UpdateStudent)
				studentsWriteProtected.DELETE("/:id", studentController.DeleteStudent)
			}
		}

		// Event routes - participation is managed alongside the event itself
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.GetAllEvents)
			events.GET("/:id", eventController.GetEventByID)
			events.GET("/:id/participants", eventController.GetParticipants)

			eventsWriteProtected := events.Group("")
			eventsWriteProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleTeacher)))
			{
				eventsWriteProtected.POST("", eventController.CreateEvent)
				eventsWriteProtected.PUT("/:id", eventController.UpdateEvent)
				eventsWriteProtected.DELETE("/:id", eventController.DeleteEvent)

				// Participant management
				eventsWriteProtected.POST("/:id/participants", eventController.AddParticipant)
				eventsWriteProtected.DELETE("/:id/participants", eventController.RemoveParticipant)
			}
		}

		// Achievement routes (write-once records, no update/delete)
		achievements := authenticated.Group("/achievements")
		{
			achievements.GET("", achievementController.GetAllAchievements)
			achievements.GET("/:id", achievementController.GetAchievementByID)

			achievementsWriteProtected := achievements.Group("")
			achievementsWriteProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleTeacher)))
			{
				achievementsWriteProtected.POST("", achievementController.CreateAchievement)
			}
		}

		// Project routes - every handler scopes by the authenticated owner,
		// so no extra role split between reads and writes is needed here
		projects := authenticated.Group("/projects")
		projects.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleTeacher)))
		{
			projects.POST("", projectController.CreateProject)
			projects.GET("", projectController.GetAllProjects)
			projects.GET("/:id", projectController.GetProjectByID)
			projects.PUT("/:id", projectController.UpdateProject)
			projects.DELETE("/:id", projectController.DeleteProject)

			// Contribution log nested under the owning project
			projects.POST("/:id/contributions", projectController.CreateContribution)
			projects.GET("/:id/contributions", projectController.GetContributions)
		}

		// Salary template routes (accountant domain)
		salaryTemplates := authenticated.Group("/salary-templates")
		salaryTemplates.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleAccountant)))
		{
			salaryTemplates.POST("", salaryTemplateController.CreateSalaryTemplate)
			salaryTemplates.GET("", salaryTemplateController.GetAllSalaryTemplates)
			salaryTemplates.GET("/:id", salaryTemplateController.GetSalaryTemplateByID)
			salaryTemplates.PUT("/:id", salaryTemplateController.UpdateSalaryTemplate)
			salaryTemplates.DELETE("/:id", salaryTemplateController.DeleteSalaryTemplate)
		}

		// Transport form routes
		transportForms := authenticated.Group("/transport-forms")
		{
			transportForms.POST("", transportFormController.CreateTransportForm)
			transportForms.GET("", transportFormController.GetAllTransportForms)
			transportForms.GET("/:id", transportFormController.GetTransportFormByID)
			transportForms.PUT("/:id", transportFormController.UpdateTransportForm)
			transportForms.DELETE("/:id", transportFormController.DeleteTransportForm)
		}

		// Leave request routes (any staff member files their own; approval is
		// a plain status update by an admin)
		leaveRequests := authenticated.Group("/leave-requests")
		{
			leaveRequests.POST("", leaveRequestController.CreateLeaveRequest)
			leaveRequests.GET("", leaveRequestController.GetAllLeaveRequests)
			leaveRequests.GET("/:id", leaveRequestController.GetLeaveRequestByID)

			leaveRequestsAdminProtected := leaveRequests.Group("")
			leaveRequestsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				leaveRequestsAdminProtected.PUT("/:id", leaveRequestController.UpdateLeaveRequest)
				leaveRequestsAdminProtected.DELETE("/:id", leaveRequestController.DeleteLeaveRequest)
			}
		}

		// Enquiry follow-up routes (creation is public above)
		enquiries := authenticated.Group("/enquiries")
		{
			enquiries.GET("", enquiryController.GetAllEnquiries)
			enquiries.GET("/:id", enquiryController.GetEnquiryByID)
			enquiries.PUT("/:id", enquiryController.UpdateEnquiry)
			enquiries.DELETE("/:id", enquiryController.DeleteEnquiry)
		}

		// Resource routes
		resources := authenticated.Group("/resources")
		{
			resources.GET("", resourceController.GetAllResources)
			resources.GET("/:id", resourceController.GetResourceByID)

			resourcesWriteProtected := resources.Group("")
			resourcesWriteProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleTeacher)))
			{
				resourcesWriteProtected.POST("", resourceController.CreateResource)
				resourcesWriteProtected.PUT("/:id", resourceController.UpdateResource)
				resourcesWriteProtected.DELETE("/:id", resourceController.DeleteResource)
			}
		}

		// Support ticket routes - anyone can report, resolution is for the
		// support team
		supportTickets := authenticated.Group("/support-tickets")
		{
			supportTickets.POST("", supportTicketController.CreateSupportTicket)
			supportTickets.GET("", supportTicketController.GetAllSupportTickets)
			supportTickets.GET("/:id", supportTicketController.GetSupportTicketByID)

			supportTicketsSupportProtected := supportTickets.Group("")
			supportTicketsSupportProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleSupport)))
			{
				supportTicketsSupportProtected.PUT("/:id", supportTicketController.UpdateSupportTicket)
				supportTicketsSupportProtected.DELETE("/:id", supportTicketController.DeleteSupportTicket)
			}
		}

		// Disciplinary action routes
		disciplinaryActions := authenticated.Group("/disciplinary-actions")
		disciplinaryActions.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleTeacher)))
		{
			disciplinaryActions.POST("", disciplinaryActionController.CreateDisciplinaryAction)
			disciplinaryActions.GET("", disciplinaryActionController.GetAllDisciplinaryActions)
			disciplinaryActions.GET("/:id", disciplinaryActionController.GetDisciplinaryActionByID)
			disciplinaryActions.PUT("/:id", disciplinaryActionController.UpdateDisciplinaryAction)
			disciplinaryActions.DELETE("/:id", disciplinaryActionController.DeleteDisciplinaryAction)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}

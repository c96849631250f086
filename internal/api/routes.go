package api

import (
	"net/http"

	authmw "jobboard/internal/api/middleware"
	"jobboard/internal/handlers"
	"jobboard/internal/models"

	"github.com/labstack/echo/v4"
)

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "job board API")
	})

	api := s.echo.Group("/api")

	auth := authmw.NewAuthMiddleware(s.db, s.config.JWT.Secret)

	authHandler := handlers.NewAuthHandler(s.db, s.config.JWT.Secret)
	adminHandler := handlers.NewAdminHandler(s.db)
	userHandler := handlers.NewUserHandler(s.db)
	companyHandler := handlers.NewCompanyHandler(s.db)
	userDetailHandler := handlers.NewUserDetailHandler(s.db)
	companyDetailHandler := handlers.NewCompanyDetailHandler(s.db)
	educationHandler := handlers.NewEducationHandler(s.db)
	experienceHandler := handlers.NewExperienceHandler(s.db)
	skillHandler := handlers.NewSkillHandler(s.db)
	jobHandler := handlers.NewJobHandler(s.db)
	roleHandler := handlers.NewRoleHandler(s.db)
	permissionHandler := handlers.NewPermissionHandler(s.db)
	categoryHandler := handlers.NewCategoryHandler(s.db)
	locationHandler := handlers.NewLocationHandler(s.db)
	jobTypeHandler := handlers.NewJobTypeHandler(s.db)

	// Public routes
	api.POST("/login", authHandler.Login)
	api.POST("/register", authHandler.Register)

	api.GET("/jobs/show", jobHandler.GetJobByID)
	api.GET("/jobs/search", jobHandler.FilterJobs)

	api.GET("/companies", companyHandler.GetAllCompanies)
	api.GET("/companies/show", companyHandler.GetCompanyByID)
	api.GET("/companies/details", companyDetailHandler.GetCompanyDetails)

	api.GET("/categories", categoryHandler.GetAllCategories)
	api.GET("/category/show", categoryHandler.GetCategoryByID)

	api.GET("/locations", locationHandler.GetAllLocations)
	api.GET("/locations/show", locationHandler.GetLocationByID)

	api.GET("/Job-types", jobTypeHandler.GetAllJobTypes)
	api.GET("/Job-types/show", jobTypeHandler.GetJobTypeByID)

	// Authenticated routes
	protected := api.Group("", auth.Middleware())

	protected.POST("/logout", authHandler.Logout)
	protected.POST("/update-password", authHandler.UpdatePassword)

	protected.GET("/admins", adminHandler.GetAllAdmins, authmw.RequirePermissions("admins-read"))
	protected.GET("/admins/show", adminHandler.GetAdminByID, authmw.RequirePermissions("admins-read"))
	protected.POST("/admins/create", adminHandler.CreateAdmin, authmw.RequirePermissions("admins-create"))
	protected.POST("/admins/edit", adminHandler.UpdateAdmin, authmw.RequirePermissions("admins-update"))
	protected.POST("/admins/delete", adminHandler.SoftDeleteAdmin, authmw.RequirePermissions("admins-delete"))
	protected.POST("/admins/restore", adminHandler.RestoreAdmin, authmw.RequirePermissions("admins-delete"))

	protected.GET("/users", userHandler.GetAllUsers, authmw.RequirePermissions("users-read"))
	protected.GET("/users/show", userHandler.ShowUserByID, authmw.RequirePermissions("users-read"))
	protected.POST("/users/edit", userHandler.UpdateUser, authmw.RequirePermissions("users-update"))
	protected.POST("/users/delete", userHandler.SoftDeleteUser, authmw.RequirePermissions("admins-delete"))
	protected.POST("/users/restore", userHandler.RestoreUser, authmw.RequirePermissions("admins-delete"))

	protected.GET("/users/details", userDetailHandler.GetUserDetails)
	protected.POST("/users/details/create-or-update", userDetailHandler.UpdateOrCreateUserDetails)

	// Experiences, educations and skills belong to the caller's own
	// profile, so they ride the profile-* gates rather than users-*.
	protected.GET("/users/experiences", experienceHandler.GetUserExperiences, authmw.RequirePermissions("profile-read"))
	protected.POST("/users/experiences/create", experienceHandler.CreateUserExperience, authmw.RequirePermissions("profile-create"))
	protected.POST("/users/experiences/update", experienceHandler.UpdateUserExperience, authmw.RequirePermissions("profile-update"))
	protected.POST("/users/experiences/delete", experienceHandler.DeleteUserExperience, authmw.RequirePermissions("profile-delete"))

	protected.GET("/users/educations", educationHandler.GetUserEducations, authmw.RequirePermissions("profile-read"))
	protected.POST("/users/educations/create", educationHandler.CreateUserEducation, authmw.RequirePermissions("profile-create"))
	protected.POST("/users/educations/update", educationHandler.UpdateUserEducation, authmw.RequirePermissions("profile-update"))
	protected.POST("/users/educations/delete", educationHandler.DeleteUserEducation, authmw.RequirePermissions("profile-delete"))

	protected.POST("/companies/create", companyHandler.CreateCompany, authmw.RequirePermissions("companies-create"))
	protected.POST("/companies/edit", companyHandler.UpdateCompany, authmw.RequirePermissions("companies-update"))
	protected.POST("/companies/delete", companyHandler.SoftDeleteCompany, authmw.RequirePermissions("companies-delete"))
	protected.POST("/companies/restore", companyHandler.RestoreCompany, authmw.RequirePermissions("companies-delete"))

	protected.POST("/companies/details/create-or-update", companyDetailHandler.UpdateOrCreateCompanyDetails,
		authmw.RequirePermissions("companies-create", "companies-update"))

	protected.GET("/skills", skillHandler.GetAllSkills, authmw.RequirePermissions("profile-read"))
	protected.POST("/skills/create", skillHandler.CreateSkill, authmw.RequirePermissions("profile-create"))
	protected.POST("/skills/update", skillHandler.UpdateSkill, authmw.RequirePermissions("profile-update"))
	protected.POST("/skills/delete", skillHandler.DeleteSkill, authmw.RequirePermissions("profile-delete"))

	protected.GET("/jobs", jobHandler.GetAllJobs, authmw.RequirePermissions("admin-jobs-read"))
	protected.GET("/jobs/applied", jobHandler.GetUserJobs, authmw.RequirePermissions("jobs-read"))
	protected.POST("/jobs/apply", jobHandler.UserApplyJob, authmw.RequirePermissions("jobs-read"))
	protected.POST("/jobs/create", jobHandler.CreateJob, authmw.RequirePermissions("jobs-create"))
	protected.POST("/jobs/update", jobHandler.UpdateJob, authmw.RequirePermissions("jobs-update"))
	protected.POST("/jobs/delete", jobHandler.SoftDeleteJob, authmw.RequirePermissions("jobs-delete"))
	protected.POST("/jobs/restore", jobHandler.RestoreJob, authmw.RequirePermissions("jobs-delete"))
	protected.POST("/jobs/users/approve", jobHandler.ApproveUserJob, authmw.RequirePermissions("approve-user"))
	protected.POST("/jobs/companies/approve", jobHandler.ApproveCompanyJob, authmw.RequirePermissions("approve-company"))

	protected.GET("/roles", roleHandler.GetAllRoles, authmw.RequirePermissions("roles-read"))
	protected.GET("/roles/show", roleHandler.GetRoleByID, authmw.RequirePermissions("roles-read"))
	protected.POST("/roles/add", roleHandler.CreateRole, authmw.RequirePermissions("roles-create"))
	protected.POST("/roles/update", roleHandler.UpdateRole, authmw.RequirePermissions("roles-update"))
	protected.POST("/roles/delete", roleHandler.SoftDeleteRole, authmw.RequirePermissions("roles-delete"))
	protected.POST("/roles/restore", roleHandler.RestoreRole, authmw.RequirePermissions("roles-delete"))

	protected.GET("/permissions", permissionHandler.GetAllPermissions, authmw.RequirePermissions("permissions-read"))
	protected.GET("/permissions/show", permissionHandler.GetPermissionByID, authmw.RequirePermissions("permissions-read"))
	protected.POST("/permissions/add", permissionHandler.CreatePermission, authmw.RequirePermissions("permissions-create"))
	protected.POST("/permissions/edit", permissionHandler.UpdatePermission, authmw.RequirePermissions("permissions-update"))
	protected.POST("/permissions/delete", permissionHandler.SoftDeletePermission, authmw.RequirePermissions("permissions-delete"))
	protected.POST("/permissions/restore", permissionHandler.RestorePermission, authmw.RequirePermissions("permissions-delete"))

	// Category mutations are reserved for the super admin.
	protected.POST("/category/add", categoryHandler.CreateCategory, authmw.RequireRoles(models.RoleSuperAdmin))
	protected.POST("/category/update", categoryHandler.UpdateCategory, authmw.RequireRoles(models.RoleSuperAdmin))
	protected.POST("/category/delete", categoryHandler.SoftDeleteCategory, authmw.RequireRoles(models.RoleSuperAdmin))
	protected.POST("/category/restore", categoryHandler.RestoreCategory, authmw.RequireRoles(models.RoleSuperAdmin))

	protected.POST("/locations/create", locationHandler.CreateLocation, authmw.RequirePermissions("locations-create"))
	protected.POST("/locations/update", locationHandler.UpdateLocation, authmw.RequirePermissions("locations-update"))
	protected.POST("/locations/delete", locationHandler.SoftDeleteLocation, authmw.RequirePermissions("locations-delete"))
	protected.POST("/locations/restore", locationHandler.RestoreLocation, authmw.RequirePermissions("locations-delete"))

	protected.POST("/Job-types/create", jobTypeHandler.CreateJobType)
	protected.POST("/Job-types/update", jobTypeHandler.UpdateJobType)
	protected.POST("/Job-types/delete", jobTypeHandler.SoftDeleteJobType)
	protected.POST("/Job-types/restore", jobTypeHandler.RestoreJobType)
}

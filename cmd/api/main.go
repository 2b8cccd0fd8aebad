package main

import (
	"fmt"
	"net/http"

	"github.com/opsgrid/workforce-backend-go/internal/config"
	"github.com/opsgrid/workforce-backend-go/internal/domain/attendance"
	appHTTP "github.com/opsgrid/workforce-backend-go/internal/handler/http"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/cron"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/database"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/jwt"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/oauth"
	"github.com/opsgrid/workforce-backend-go/internal/repository/postgresql"
	applicationService "github.com/opsgrid/workforce-backend-go/internal/service/application"
	attendanceService "github.com/opsgrid/workforce-backend-go/internal/service/attendance"
	authService "github.com/opsgrid/workforce-backend-go/internal/service/auth"
	dashboardService "github.com/opsgrid/workforce-backend-go/internal/service/dashboard"
	employeeService "github.com/opsgrid/workforce-backend-go/internal/service/employee"
	jobService "github.com/opsgrid/workforce-backend-go/internal/service/job"
	leadService "github.com/opsgrid/workforce-backend-go/internal/service/lead"
	leaveService "github.com/opsgrid/workforce-backend-go/internal/service/leave"
	payrollService "github.com/opsgrid/workforce-backend-go/internal/service/payroll"
	resourceService "github.com/opsgrid/workforce-backend-go/internal/service/resource"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	if err := attendance.SetLateCutoff(cfg.Attendance.LateAfter); err != nil {
		fmt.Println("Error applying attendance config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRunRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leadRepo := postgresql.NewLeadRepository(db)
	resourceRepo := postgresql.NewResourceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(userRepo, jwtService, googleService, cfg.OAuth2Google.Enabled)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	jobSvc := jobService.NewJobService(jobRepo)
	applicationSvc := applicationService.NewApplicationService(applicationRepo, jobRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leadSvc := leadService.NewLeadService(leadRepo)
	resourceSvc := resourceService.NewResourceService(resourceRepo)
	dashboardSvc := dashboardService.NewDashboardService(
		applicationRepo,
		employeeRepo,
		leaveRequestRepo,
		attendanceRepo,
		payrollRepo,
		leadRepo,
	)

	scheduler := cron.NewScheduler()
	cron.NewLeadJobs(leadRepo).RegisterJobs(scheduler)
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, []string{cfg.App.FrontendURL}, cfg.App.Env, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtService, authSvc),
		Job:         appHTTP.NewJobHandler(jobSvc),
		Application: appHTTP.NewApplicationHandler(applicationSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Lead:        appHTTP.NewLeadHandler(leadSvc),
		Resource:    appHTTP.NewResourceHandler(resourceSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/opsgrid/workforce-backend-go/internal/handler/http/middleware"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Job         JobHandler
	Application ApplicationHandler
	Employee    EmployeeHandler
	Leave       LeaveHandler
	Payroll     PayrollHandler
	Attendance  AttendanceHandler
	Lead        LeadHandler
	Resource    ResourceHandler
	Dashboard   DashboardHandler
}

func NewRouter(jwtService jwt.Service, allowedOrigins []string, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Public surfaces: careers page and chatbot
		r.Get("/careers/jobs", h.Job.ListPublic)
		r.Post("/careers/applications", h.Application.Submit)
		r.Post("/chatbot/leads", h.Lead.Capture)
		r.Get("/content/resources/{slug}", h.Resource.GetPublic)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/jobs", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionJobManage)).Group(func(r chi.Router) {
					r.Post("/", h.Job.Create)
					r.Post("/{id}/open", h.Job.Open)
					r.Post("/{id}/close", h.Job.Close)
				})
				r.Get("/", h.Job.List)
				r.Get("/{id}", h.Job.Get)
			})

			r.Route("/applications", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionApplicationViewAll))
				r.Get("/", h.Application.List)
				r.Get("/{id}", h.Application.Get)
				r.Patch("/{id}/status", h.Application.UpdateStatus)
				r.Post("/{id}/notes", h.Application.AddNote)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Group(func(r chi.Router) {
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Post("/{id}/resign", h.Employee.Resign)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)
				r.Post("/{id}/cancel", h.Leave.Cancel)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).
					Patch("/{id}/status", h.Leave.Decide)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPayrollView))
				r.Get("/", h.Payroll.List)
				r.Get("/{id}", h.Payroll.Get)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Post("/", h.Payroll.Run)
					r.Post("/{id}/approve", h.Payroll.Approve)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/", h.Attendance.List)
				r.Get("/{id}", h.Attendance.Get)
				r.With(middleware.RequirePermission(user.PermissionAttendanceCorrect)).
					Patch("/{id}/status", h.Attendance.Correct)
			})

			r.Route("/leads", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionLeadViewAll))
				r.Get("/", h.Lead.List)
				r.Get("/{id}", h.Lead.Get)
				r.With(middleware.RequirePermission(user.PermissionLeadManage)).
					Patch("/{id}/status", h.Lead.UpdateStatus)
			})

			r.Route("/resources", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionResourceManage))
				r.Post("/", h.Resource.Create)
				r.Get("/", h.Resource.List)
				r.Get("/{id}", h.Resource.Get)
				r.Post("/{id}/publish", h.Resource.Publish)
				r.Post("/{id}/archive", h.Resource.Archive)
			})

			r.With(middleware.RequirePermission(user.PermissionDashboardView)).
				Get("/dashboard", h.Dashboard.Summary)
		})
	})

	return r
}

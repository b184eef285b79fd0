package http

import (
	"log/slog"
	"os"

	"github.com/161corp/hr-backend-go/internal/config"
	"github.com/161corp/hr-backend-go/internal/handler/http/middleware"
	"github.com/161corp/hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth           AuthHandler
	Employee       EmployeeHandler
	Department     DepartmentHandler
	Project        ProjectHandler
	Assignment     AssignmentHandler
	Attendance     AttendanceHandler
	BonusDeduction BonusDeductionHandler
	Salary         SalaryHandler
	Report         ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Get("/{employeeID}/assignments", h.Assignment.ListByEmployee)
				r.Get("/{employeeID}/attendance", h.Attendance.ListByEmployee)
				r.Get("/{employeeID}/bonus-deductions", h.BonusDeduction.ListByEmployee)
				r.Get("/{employeeID}/bonus-deductions/log", h.BonusDeduction.ListLog)
				r.Get("/{employeeID}/salary/preview", h.Salary.CalculateSalary)
				r.Get("/{employeeID}/salary/history", h.Salary.HistoryByEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.ListDepartments)
				r.Get("/{id}", h.Department.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Department.CreateDepartment)
					r.Put("/{id}", h.Department.UpdateDepartment)
					r.Delete("/{id}", h.Department.DeleteDepartment)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.ListProjects)
				r.Get("/{id}", h.Project.GetProject)
				r.Get("/{projectID}/assignments", h.Assignment.ListByProject)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Project.CreateProject)
					r.Put("/{id}", h.Project.UpdateProject)
					r.Delete("/{id}", h.Project.DeleteProject)
				})
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Assignment.AssignProject)
				r.Put("/{id}", h.Assignment.UpdateAssignment)
				r.Delete("/{id}", h.Assignment.DeleteAssignment)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/summary", h.Attendance.MonthlySummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Attendance.MarkAttendance)
				})
			})

			r.Route("/bonus-deductions", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.BonusDeduction.CreateBonusDeduction)
				r.Put("/{id}", h.BonusDeduction.UpdateBonusDeduction)
				r.Delete("/{id}", h.BonusDeduction.DeleteBonusDeduction)
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Get("/", h.Salary.ListByMonth)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/payments", h.Salary.RecordPayment)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/{kind}", h.Report.RunReport)
				r.Post("/{kind}/export", h.Report.ExportReport)
			})
		})
	})

	return r
}

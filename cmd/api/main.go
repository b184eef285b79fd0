package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/161corp/hr-backend-go/internal/config"
	appHTTP "github.com/161corp/hr-backend-go/internal/handler/http"
	"github.com/161corp/hr-backend-go/internal/pkg/database"
	"github.com/161corp/hr-backend-go/internal/pkg/jwt"
	"github.com/161corp/hr-backend-go/internal/repository/postgresql"
	assignmentService "github.com/161corp/hr-backend-go/internal/service/assignment"
	attendanceService "github.com/161corp/hr-backend-go/internal/service/attendance"
	authService "github.com/161corp/hr-backend-go/internal/service/auth"
	bonusDeductionService "github.com/161corp/hr-backend-go/internal/service/bonusdeduction"
	departmentService "github.com/161corp/hr-backend-go/internal/service/department"
	employeeService "github.com/161corp/hr-backend-go/internal/service/employee"
	projectService "github.com/161corp/hr-backend-go/internal/service/project"
	reportService "github.com/161corp/hr-backend-go/internal/service/report"
	salaryService "github.com/161corp/hr-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		log.Fatal("Failed to create export directory:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	bonusDeductionRepo := postgresql.NewBonusDeductionRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	projectSvc := projectService.NewProjectService(projectRepo)
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	bonusDeductionSvc := bonusDeductionService.NewBonusDeductionService(bonusDeductionRepo)
	salarySvc := salaryService.NewSalaryService(salaryRepo)
	reportSvc := reportService.NewReportService(reportRepo, cfg.Export.Dir)

	handlers := appHTTP.Handlers{
		Auth:           appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:       appHTTP.NewEmployeeHandler(employeeSvc),
		Department:     appHTTP.NewDepartmentHandler(departmentSvc),
		Project:        appHTTP.NewProjectHandler(projectSvc),
		Assignment:     appHTTP.NewAssignmentHandler(assignmentSvc),
		Attendance:     appHTTP.NewAttendanceHandler(attendanceSvc),
		BonusDeduction: appHTTP.NewBonusDeductionHandler(bonusDeductionSvc),
		Salary:         appHTTP.NewSalaryHandler(salarySvc),
		Report:         appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/educenter/educenter-backend-go/internal/config"
	appHTTP "github.com/educenter/educenter-backend-go/internal/handler/http"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/educenter/educenter-backend-go/internal/pkg/jwt"
	"github.com/educenter/educenter-backend-go/internal/repository/postgresql"
	"github.com/educenter/educenter-backend-go/internal/service/access"
	attendanceService "github.com/educenter/educenter-backend-go/internal/service/attendance"
	serviceAuth "github.com/educenter/educenter-backend-go/internal/service/auth"
	serviceBranch "github.com/educenter/educenter-backend-go/internal/service/branch"
	dashboardService "github.com/educenter/educenter-backend-go/internal/service/dashboard"
	expenseService "github.com/educenter/educenter-backend-go/internal/service/expense"
	groupService "github.com/educenter/educenter-backend-go/internal/service/group"
	paymentService "github.com/educenter/educenter-backend-go/internal/service/payment"
	reportService "github.com/educenter/educenter-backend-go/internal/service/report"
	salaryService "github.com/educenter/educenter-backend-go/internal/service/salary"
	studentService "github.com/educenter/educenter-backend-go/internal/service/student"
	teacherService "github.com/educenter/educenter-backend-go/internal/service/teacher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	teacherRepo := postgresql.NewTeacherRepository(db)
	studentRepo := postgresql.NewStudentRepository(db)
	groupRepo := postgresql.NewGroupRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	salaryRepo := postgresql.NewSalaryPaymentRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	guard := access.NewGuard()

	authSvc := serviceAuth.NewAuthService(db, userRepo, branchRepo, JWTService, guard)
	branchSvc := serviceBranch.NewBranchService(db, branchRepo, userRepo, teacherRepo, studentRepo, guard)
	teacherSvc := teacherService.NewTeacherService(db, teacherRepo, branchRepo, guard)
	studentSvc := studentService.NewStudentService(db, studentRepo, branchRepo, guard)
	groupSvc := groupService.NewGroupService(db, groupRepo, teacherRepo, studentRepo, guard)
	paymentSvc := paymentService.NewPaymentService(db, paymentRepo, studentRepo, groupRepo, guard)
	salarySvc := salaryService.NewSalaryService(db, salaryRepo, paymentRepo, teacherRepo, groupRepo, branchRepo, guard)
	expenseSvc := expenseService.NewExpenseService(db, expenseRepo, branchRepo, guard)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, groupRepo, studentRepo, guard)
	reportSvc := reportService.NewReportService(db, paymentRepo, expenseRepo, salaryRepo, guard)
	dashboardSvc := dashboardService.NewDashboardService(db, branchRepo, userRepo, studentRepo, teacherRepo, groupRepo, paymentRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	branchHandler := appHTTP.NewBranchHandler(branchSvc)
	teacherHandler := appHTTP.NewTeacherHandler(teacherSvc)
	studentHandler := appHTTP.NewStudentHandler(studentSvc)
	groupHandler := appHTTP.NewGroupHandler(groupSvc)
	paymentHandler := appHTTP.NewPaymentHandler(paymentSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		branchHandler,
		teacherHandler,
		studentHandler,
		groupHandler,
		paymentHandler,
		salaryHandler,
		expenseHandler,
		attendanceHandler,
		reportHandler,
		dashboardHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}

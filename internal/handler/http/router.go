package http

import (
	"log/slog"
	"os"

	"github.com/educenter/educenter-backend-go/internal/handler/http/middleware"
	"github.com/educenter/educenter-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	branchHandler BranchHandler,
	teacherHandler TeacherHandler,
	studentHandler StudentHandler,
	groupHandler GroupHandler,
	paymentHandler PaymentHandler,
	salaryHandler SalaryHandler,
	expenseHandler ExpenseHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	dashboardHandler DashboardHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "educenter-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			// Super admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.SuperAdminOnly)
				r.Post("/", authHandler.CreateUser)
				r.Get("/", authHandler.ListUsers)
				r.Get("/{id}", authHandler.GetUser)
				r.Put("/{id}", authHandler.UpdateUser)
				r.Delete("/{id}", authHandler.DeleteUser)
			})

			r.Route("/branches", func(r chi.Router) {
				r.Get("/", branchHandler.List)
				r.Get("/{id}", branchHandler.GetByID)

				// Super admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.SuperAdminOnly)
					r.Post("/", branchHandler.Create)
					r.Put("/{id}", branchHandler.Update)
					r.Delete("/{id}", branchHandler.Delete)
				})
			})

			r.Route("/teachers", func(r chi.Router) {
				r.Post("/", teacherHandler.Create)
				r.Get("/", teacherHandler.ListByBranch)
				r.Get("/{id}", teacherHandler.GetByID)
				r.Put("/{id}", teacherHandler.Update)
				r.Delete("/{id}", teacherHandler.Delete)
			})

			r.Route("/students", func(r chi.Router) {
				r.Post("/", studentHandler.Create)
				r.Get("/", studentHandler.ListByBranch)
				r.Get("/{id}", studentHandler.GetByID)
				r.Put("/{id}", studentHandler.Update)
				r.Delete("/{id}", studentHandler.Delete)
			})

			r.Route("/groups", func(r chi.Router) {
				r.Post("/", groupHandler.Create)
				r.Get("/", groupHandler.List)
				r.Get("/{id}", groupHandler.GetByID)
				r.Put("/{id}", groupHandler.Update)
				r.Delete("/{id}", groupHandler.Delete)

				r.Get("/{id}/students", groupHandler.ListStudents)
				r.Post("/{id}/students/{studentID}", groupHandler.EnrollStudent)
				r.Delete("/{id}/students/{studentID}", groupHandler.UnenrollStudent)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/", paymentHandler.Record)
				r.Get("/", paymentHandler.List)
				r.Get("/unpaid", paymentHandler.UnpaidStudents)
				r.Get("/student/{studentID}", paymentHandler.ListByStudent)
				r.Get("/student/{studentID}/group/{groupID}/info", paymentHandler.StudentInfo)
				r.Get("/{id}", paymentHandler.GetByID)
				r.Put("/{id}", paymentHandler.AmendAmount)
				r.Delete("/{id}", paymentHandler.Delete)
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Get("/calculate", salaryHandler.CalculateBranch)
				r.Get("/calculate/{teacherID}", salaryHandler.Calculate)
				r.Post("/payments", salaryHandler.Disburse)
				r.Post("/subtract", salaryHandler.Subtract)
				r.Delete("/payments/{id}", salaryHandler.DeletePayment)
				r.Get("/teacher/{teacherID}", salaryHandler.ListByTeacher)
				r.Get("/", salaryHandler.ListByBranch)
				r.Get("/history/{teacherID}", salaryHandler.History)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", expenseHandler.Create)
				r.Get("/", expenseHandler.List)
				r.Get("/{id}", expenseHandler.GetByID)
				r.Delete("/{id}", expenseHandler.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Mark)
				r.Post("/bulk", attendanceHandler.MarkBulk)
				r.Delete("/{id}", attendanceHandler.Delete)
				r.Get("/group/{groupID}", attendanceHandler.ListByGroup)
				r.Get("/student/{studentID}", attendanceHandler.ListByStudent)
				r.Get("/student/{studentID}/group/{groupID}/summary", attendanceHandler.MonthlySummary)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/payments", reportHandler.Payments)
				r.Get("/expenses", reportHandler.Expenses)
				r.Get("/summary", reportHandler.Summary)
			})

			r.Get("/dashboard", dashboardHandler.Stats)
		})
	})
	return r
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/otr-legal/otr-backend/docs"
	adminhandlers "github.com/otr-legal/otr-backend/internal/handlers/admin"
	authhandlers "github.com/otr-legal/otr-backend/internal/handlers/auth"
	businesshandlers "github.com/otr-legal/otr-backend/internal/handlers/business"
	casehandlers "github.com/otr-legal/otr-backend/internal/handlers/cases"
	lawyerhandlers "github.com/otr-legal/otr-backend/internal/handlers/lawyers"
	messagehandlers "github.com/otr-legal/otr-backend/internal/handlers/messages"
	paymenthandlers "github.com/otr-legal/otr-backend/internal/handlers/payments"
	webhookhandlers "github.com/otr-legal/otr-backend/internal/handlers/webhooks"
	"github.com/otr-legal/otr-backend/internal/service"
	"github.com/otr-legal/otr-backend/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type CaseHandler interface {
	CreateCase(w http.ResponseWriter, r *http.Request)
	GetCase(w http.ResponseWriter, r *http.Request)
	GetMyCases(w http.ResponseWriter, r *http.Request)
	ListCases(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ScheduleCourtDate(w http.ResponseWriter, r *http.Request)
	RecordOutcome(w http.ResponseWriter, r *http.Request)
	CloseCase(w http.ResponseWriter, r *http.Request)
	RateLawyer(w http.ResponseWriter, r *http.Request)
	Reassign(w http.ResponseWriter, r *http.Request)
	GetTimeline(w http.ResponseWriter, r *http.Request)
	AddDocument(w http.ResponseWriter, r *http.Request)
	GetDocuments(w http.ResponseWriter, r *http.Request)
}

type LawyerHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	GetLawyer(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	SetAvailability(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateIntent(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	RequestRefund(w http.ResponseWriter, r *http.Request)
	ProcessRefund(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	GetPendingRefunds(w http.ResponseWriter, r *http.Request)
	IssueInvoice(w http.ResponseWriter, r *http.Request)
	GetInvoices(w http.ResponseWriter, r *http.Request)
}

type MessageHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	GetThread(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
}

type BusinessHandler interface {
	GetPlans(w http.ResponseWriter, r *http.Request)
	CreateAccount(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	ListAccounts(w http.ResponseWriter, r *http.Request)
	AddEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	RemoveEmployee(w http.ResponseWriter, r *http.Request)
	SubmitFine(w http.ResponseWriter, r *http.Request)
	GetUsage(w http.ResponseWriter, r *http.Request)
	IssueInvoice(w http.ResponseWriter, r *http.Request)
	GetInvoices(w http.ResponseWriter, r *http.Request)
	StartCheckout(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	SetUserRole(w http.ResponseWriter, r *http.Request)
	SetUserQuota(w http.ResponseWriter, r *http.Request)
	CreateFineType(w http.ResponseWriter, r *http.Request)
	SearchFineTypes(w http.ResponseWriter, r *http.Request)
	UpdateFineType(w http.ResponseWriter, r *http.Request)
	DeactivateFineType(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	HandleStripe(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CaseHandler     CaseHandler
	LawyerHandler   LawyerHandler
	PaymentHandler  PaymentHandler
	MessageHandler  MessageHandler
	BusinessHandler BusinessHandler
	AdminHandler    AdminHandler
	WebhookHandler  WebhookHandler
}

func New(s *service.Services, webhookSecret string) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CaseHandler:     casehandlers.New(s.CaseService),
		LawyerHandler:   lawyerhandlers.New(s.LawyerService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		MessageHandler:  messagehandlers.New(s.MessageService),
		BusinessHandler: businesshandlers.New(s.BusinessService, s.AuthService),
		AdminHandler:    adminhandlers.New(s.AdminService),
		WebhookHandler:  webhookhandlers.New(s.PaymentService, s.BusinessService, webhookSecret),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.With(auth.AuthMiddleware).Get("/me", h.AuthHandler.Me)
		})

		r.Post("/webhooks/stripe", h.WebhookHandler.HandleStripe)

		// Public catalog endpoints.
		r.Get("/lawyers", h.LawyerHandler.Search)
		r.Get("/lawyers/{lawyerID}", h.LawyerHandler.GetLawyer)
		r.Get("/fine-types", h.AdminHandler.SearchFineTypes)
		r.Get("/business/plans", h.BusinessHandler.GetPlans)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/cases", func(r chi.Router) {
				r.Post("/", h.CaseHandler.CreateCase)
				r.Get("/", h.CaseHandler.GetMyCases)
				r.Route("/{caseID}", func(r chi.Router) {
					r.Get("/", h.CaseHandler.GetCase)
					r.Get("/timeline", h.CaseHandler.GetTimeline)
					r.Post("/rating", h.CaseHandler.RateLawyer)
					r.Post("/close", h.CaseHandler.CloseCase)
					r.Route("/documents", func(r chi.Router) {
						r.Post("/", h.CaseHandler.AddDocument)
						r.Get("/", h.CaseHandler.GetDocuments)
					})
					r.Route("/messages", func(r chi.Router) {
						r.Post("/", h.MessageHandler.Send)
						r.Get("/", h.MessageHandler.GetThread)
					})
					r.Group(func(r chi.Router) {
						r.Use(auth.Require(auth.CapUpdateCaseState))
						r.Patch("/status", h.CaseHandler.UpdateStatus)
						r.Post("/court-date", h.CaseHandler.ScheduleCourtDate)
						r.Post("/outcome", h.CaseHandler.RecordOutcome)
					})
				})
			})

			r.Route("/lawyers", func(r chi.Router) {
				r.Post("/register", h.LawyerHandler.Register)
				r.Get("/me", h.LawyerHandler.GetProfile)
				r.Put("/me", h.LawyerHandler.UpdateProfile)
				r.Patch("/me/availability", h.LawyerHandler.SetAvailability)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/intent", h.PaymentHandler.CreateIntent)
				r.Get("/", h.PaymentHandler.GetHistory)
				r.Get("/invoices", h.PaymentHandler.GetInvoices)
				r.Post("/invoices/{caseID}", h.PaymentHandler.IssueInvoice)
				r.Route("/{paymentID}", func(r chi.Router) {
					r.Get("/", h.PaymentHandler.GetPayment)
					r.Post("/confirm", h.PaymentHandler.Confirm)
					r.Post("/refund", h.PaymentHandler.RequestRefund)
				})
			})

			r.Get("/messages/unread", h.MessageHandler.UnreadCount)

			r.Route("/business/accounts", func(r chi.Router) {
				r.Post("/", h.BusinessHandler.CreateAccount)
				r.Route("/{businessID}", func(r chi.Router) {
					r.Get("/", h.BusinessHandler.GetAccount)
					r.Post("/checkout", h.BusinessHandler.StartCheckout)
					r.Post("/fines", h.BusinessHandler.SubmitFine)
					r.Get("/usage", h.BusinessHandler.GetUsage)
					r.Get("/invoices", h.BusinessHandler.GetInvoices)
					r.Route("/employees", func(r chi.Router) {
						r.Post("/", h.BusinessHandler.AddEmployee)
						r.Get("/", h.BusinessHandler.ListEmployees)
						r.Delete("/{userID}", h.BusinessHandler.RemoveEmployee)
					})
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(auth.Require(auth.CapManageUsers))
					r.Get("/users", h.AdminHandler.ListUsers)
					r.Get("/users/{userID}", h.AdminHandler.GetUser)
					r.Patch("/users/{userID}/role", h.AdminHandler.SetUserRole)
					r.Patch("/users/{userID}/quota", h.AdminHandler.SetUserQuota)
					r.Get("/cases", h.CaseHandler.ListCases)
					r.Get("/business", h.BusinessHandler.ListAccounts)
				})
				r.Group(func(r chi.Router) {
					r.Use(auth.Require(auth.CapApproveLawyers))
					r.Get("/lawyers/pending", h.LawyerHandler.GetPending)
					r.Post("/lawyers/{lawyerID}/approve", h.LawyerHandler.Approve)
					r.Post("/lawyers/{lawyerID}/reject", h.LawyerHandler.Reject)
				})
				r.With(auth.Require(auth.CapAssignCases)).
					Post("/cases/{caseID}/reassign", h.CaseHandler.Reassign)
				r.Group(func(r chi.Router) {
					r.Use(auth.Require(auth.CapProcessRefunds))
					r.Get("/refunds", h.PaymentHandler.GetPendingRefunds)
					r.Post("/refunds/{paymentID}", h.PaymentHandler.ProcessRefund)
				})
				r.With(auth.Require(auth.CapViewAllPayments)).
					Get("/payments", h.PaymentHandler.ListPayments)
				r.With(auth.Require(auth.CapIssueInvoices)).
					Post("/business/{businessID}/invoices", h.BusinessHandler.IssueInvoice)
				r.Group(func(r chi.Router) {
					r.Use(auth.Require(auth.CapManageFines))
					r.Post("/fine-types", h.AdminHandler.CreateFineType)
					r.Put("/fine-types/{fineTypeID}", h.AdminHandler.UpdateFineType)
					r.Delete("/fine-types/{fineTypeID}", h.AdminHandler.DeactivateFineType)
				})
			})
		})
	})

	return r
}

package service

import (
	adminhandlers "github.com/otr-legal/otr-backend/internal/handlers/admin"
	authhandlers "github.com/otr-legal/otr-backend/internal/handlers/auth"
	businesshandlers "github.com/otr-legal/otr-backend/internal/handlers/business"
	casehandlers "github.com/otr-legal/otr-backend/internal/handlers/cases"
	lawyerhandlers "github.com/otr-legal/otr-backend/internal/handlers/lawyers"
	messagehandlers "github.com/otr-legal/otr-backend/internal/handlers/messages"
	paymenthandlers "github.com/otr-legal/otr-backend/internal/handlers/payments"

	"github.com/otr-legal/otr-backend/internal/config"
	"github.com/otr-legal/otr-backend/internal/pg"
	"github.com/otr-legal/otr-backend/internal/repo"
	"github.com/otr-legal/otr-backend/internal/service/adminservice"
	"github.com/otr-legal/otr-backend/internal/service/authservice"
	"github.com/otr-legal/otr-backend/internal/service/businessservice"
	"github.com/otr-legal/otr-backend/internal/service/caseservice"
	"github.com/otr-legal/otr-backend/internal/service/lawyerservice"
	"github.com/otr-legal/otr-backend/internal/service/matchservice"
	"github.com/otr-legal/otr-backend/internal/service/messageservice"
	"github.com/otr-legal/otr-backend/internal/service/paymentservice"
	"github.com/otr-legal/otr-backend/internal/stripeclient"
	pkgauth "github.com/otr-legal/otr-backend/pkg/auth"
)

type Services struct {
	AuthService     authhandlers.Service
	CaseService     casehandlers.Service
	LawyerService   lawyerhandlers.Service
	PaymentService  paymenthandlers.Service
	MessageService  messagehandlers.Service
	BusinessService businesshandlers.Service
	AdminService    adminhandlers.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, processor stripeclient.Processor) *Services {
	matchService := matchservice.New(repo.LawyerRepo, repo.CaseRepo, txManager)
	caseService := caseservice.New(repo.CaseRepo, repo.UserRepo, repo.LawyerRepo, matchService, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.PasswordService{}, &pkgauth.JWTService{}, cfg.DefaultCaseQuota)
	lawyerService := lawyerservice.New(repo.LawyerRepo, repo.UserRepo, txManager)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.CaseRepo, repo.LawyerRepo, processor, txManager, cfg.PlatformFeePercent)
	messageService := messageservice.New(repo.MessageRepo, repo.CaseRepo, repo.LawyerRepo)
	businessService := businessservice.New(repo.BusinessRepo, repo.FineRepo, processor, txManager, cfg.B2BVATPercent)
	adminService := adminservice.New(repo.UserRepo, repo.FineRepo)

	return &Services{
		AuthService:     authService,
		CaseService:     caseService,
		LawyerService:   lawyerService,
		PaymentService:  paymentService,
		MessageService:  messageService,
		BusinessService: businessService,
		AdminService:    adminService,
	}
}

package repo

import (
	"github.com/otr-legal/otr-backend/internal/pg"
	businessrepo "github.com/otr-legal/otr-backend/internal/repo/business-repo"
	caserepo "github.com/otr-legal/otr-backend/internal/repo/case-repo"
	finerepo "github.com/otr-legal/otr-backend/internal/repo/fine-repo"
	lawyerrepo "github.com/otr-legal/otr-backend/internal/repo/lawyer-repo"
	messagerepo "github.com/otr-legal/otr-backend/internal/repo/message-repo"
	paymentrepo "github.com/otr-legal/otr-backend/internal/repo/payment-repo"
	userrepo "github.com/otr-legal/otr-backend/internal/repo/user-repo"
)

// Repositories holds the concrete repositories. Services narrow them down to
// their own consumer interfaces.
type Repositories struct {
	UserRepo     *userrepo.Repository
	LawyerRepo   *lawyerrepo.Repository
	CaseRepo     *caserepo.Repository
	PaymentRepo  *paymentrepo.Repository
	MessageRepo  *messagerepo.Repository
	BusinessRepo *businessrepo.Repository
	FineRepo     *finerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn, txManager),
		LawyerRepo:   lawyerrepo.New(conn, txManager),
		CaseRepo:     caserepo.New(conn, txManager),
		PaymentRepo:  paymentrepo.New(conn, txManager),
		MessageRepo:  messagerepo.New(conn),
		BusinessRepo: businessrepo.New(conn, txManager),
		FineRepo:     finerepo.New(conn),
	}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID  `db:"id"`
	Email         string     `db:"email"`
	PasswordHash  string     `db:"password_hash"`
	FirstName     string     `db:"first_name"`
	LastName      string     `db:"last_name"`
	Phone         string     `db:"phone"`
	Role          Role       `db:"role"`
	CasesPerMonth int        `db:"cases_per_month"`
	CasesUsed     int        `db:"cases_used"`
	QuotaResetAt  *time.Time `db:"quota_reset_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

type Jurisdiction struct {
	State    string   `json:"state"`
	Counties []string `json:"counties,omitempty"`
	Courts   []string `json:"courts,omitempty"`
}

type Lawyer struct {
	ID                uuid.UUID      `db:"id"`
	UserID            uuid.UUID      `db:"user_id"`
	LicenseNumber     string         `db:"license_number"`
	BarAssociation    string         `db:"bar_association"`
	YearsOfExperience int            `db:"years_of_experience"`
	Specializations   []string       `db:"specializations"`
	Jurisdictions     []Jurisdiction `db:"jurisdictions"`
	Bio               string         `db:"bio"`
	RatingAverage     float64        `db:"rating_average"`
	RatingCount       int            `db:"rating_count"`
	TotalCases        int            `db:"total_cases"`
	CasesWon          int            `db:"cases_won"`
	CasesDismissed    int            `db:"cases_dismissed"`
	CasesReduced      int            `db:"cases_reduced"`
	SuccessRate       int            `db:"success_rate"`
	IsAvailable       bool           `db:"is_available"`
	MaxCases          int            `db:"max_cases"`
	CurrentCases      int            `db:"current_cases"`
	BankAccountNumber string         `db:"bank_account_number"`
	BankRoutingNumber string         `db:"bank_routing_number"`
	BankAccountHolder string         `db:"bank_account_holder"`
	IsApproved        bool           `db:"is_approved"`
	ApprovedBy        *uuid.UUID     `db:"approved_by"`
	ApprovedAt        *time.Time     `db:"approved_at"`
	RejectionReason   string         `db:"rejection_reason"`
	CreatedAt         time.Time      `db:"created_at"`
}

// HasSpecialization reports whether the lawyer lists the given violation type.
func (l *Lawyer) HasSpecialization(v ViolationType) bool {
	for _, s := range l.Specializations {
		if s == string(v) {
			return true
		}
	}
	return false
}

// CoversState reports whether any of the lawyer's jurisdictions is in the state.
func (l *Lawyer) CoversState(state string) bool {
	for _, j := range l.Jurisdictions {
		if j.State == state {
			return true
		}
	}
	return false
}

// CalculateSuccessRate recomputes SuccessRate in whole percent.
// Won, dismissed and reduced outcomes all count as successful.
func (l *Lawyer) CalculateSuccessRate() int {
	if l.TotalCases == 0 {
		l.SuccessRate = 0
		return 0
	}
	successful := l.CasesWon + l.CasesDismissed + l.CasesReduced
	l.SuccessRate = int(float64(successful)/float64(l.TotalCases)*100 + 0.5)
	return l.SuccessRate
}

type Case struct {
	ID              uuid.UUID         `db:"id"`
	CaseNumber      string            `db:"case_number"`
	UserID          uuid.UUID         `db:"user_id"`
	LawyerID        *uuid.UUID        `db:"lawyer_id"`
	ViolationType   ViolationType     `db:"violation_type"`
	TicketNumber    string            `db:"ticket_number"`
	IssueDate       time.Time         `db:"issue_date"`
	Street          string            `db:"street"`
	City            string            `db:"city"`
	State           string            `db:"state"`
	County          string            `db:"county"`
	CourtName       string            `db:"court_name"`
	CourtAddress    string            `db:"court_address"`
	FineAmount      float64           `db:"fine_amount"`
	Points          int               `db:"points"`
	TicketImage     string            `db:"ticket_image"`
	IsCDLDriver     bool              `db:"is_cdl_driver"`
	LicenseNumber   string            `db:"license_number"`
	LicenseState    string            `db:"license_state"`
	Status          CaseStatus        `db:"status"`
	CourtDate       *time.Time        `db:"court_date"`
	OutcomeType     OutcomeType       `db:"outcome_type"`
	FinalFine       *float64          `db:"final_fine"`
	FinalPoints     *int              `db:"final_points"`
	OutcomeNotes    string            `db:"outcome_notes"`
	QuotedPrice     float64           `db:"quoted_price"`
	ActualPrice     *float64          `db:"actual_price"`
	RefundAmount    *float64          `db:"refund_amount"`
	PaymentStatus   CasePaymentStatus `db:"payment_status"`
	PaymentID       *uuid.UUID        `db:"payment_id"`
	PaidAt          *time.Time        `db:"paid_at"`
	AssignmentScore *float64          `db:"assignment_score"`
	RatingValue     *int              `db:"rating_value"`
	RatingReview    string            `db:"rating_review"`
	RatedAt         *time.Time        `db:"rated_at"`
	CreatedAt       time.Time         `db:"created_at"`
}

type TimelineEntry struct {
	ID        int64      `db:"id"`
	CaseID    uuid.UUID  `db:"case_id"`
	Status    CaseStatus `db:"status"`
	Note      string     `db:"note"`
	ActorID   uuid.UUID  `db:"actor_id"`
	CreatedAt time.Time  `db:"created_at"`
}

type CaseDocument struct {
	ID         int64     `db:"id"`
	CaseID     uuid.UUID `db:"case_id"`
	Name       string    `db:"name"`
	Type       string    `db:"type"`
	URL        string    `db:"url"`
	UploadedBy uuid.UUID `db:"uploaded_by"`
	UploadedAt time.Time `db:"uploaded_at"`
}

type Payment struct {
	ID                 uuid.UUID     `db:"id"`
	CaseID             uuid.UUID     `db:"case_id"`
	UserID             uuid.UUID     `db:"user_id"`
	LawyerID           *uuid.UUID    `db:"lawyer_id"`
	Amount             float64       `db:"amount"`
	Currency           string        `db:"currency"`
	Type               PaymentType   `db:"type"`
	Status             PaymentStatus `db:"status"`
	TransactionID      string        `db:"transaction_id"`
	StripeIntentID     string        `db:"stripe_intent_id"`
	StripeChargeID     string        `db:"stripe_charge_id"`
	StripeRefundID     string        `db:"stripe_refund_id"`
	PlatformFeeAmount  float64       `db:"platform_fee_amount"`
	PlatformFeePercent float64       `db:"platform_fee_percent"`
	PayoutAmount       float64       `db:"payout_amount"`
	PayoutStatus       PayoutStatus  `db:"payout_status"`
	PayoutPaidAt       *time.Time    `db:"payout_paid_at"`
	RefundAmount       *float64      `db:"refund_amount"`
	RefundReason       string        `db:"refund_reason"`
	RefundStatus       RefundStatus  `db:"refund_status"`
	RefundRequestedAt  *time.Time    `db:"refund_requested_at"`
	RefundProcessedAt  *time.Time    `db:"refund_processed_at"`
	CreatedAt          time.Time     `db:"created_at"`
}

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type Invoice struct {
	ID             uuid.UUID  `db:"id"`
	InvoiceNumber  string     `db:"invoice_number"`
	UserID         uuid.UUID  `db:"user_id"`
	LawyerID       *uuid.UUID `db:"lawyer_id"`
	CaseID         *uuid.UUID `db:"case_id"`
	Status         string     `db:"status"`
	LineItems      []LineItem `db:"line_items"`
	Subtotal       float64    `db:"subtotal"`
	TaxAmount      float64    `db:"tax_amount"`
	TaxPercentage  float64    `db:"tax_percentage"`
	DiscountAmount float64    `db:"discount_amount"`
	TotalAmount    float64    `db:"total_amount"`
	PaidAmount     float64    `db:"paid_amount"`
	Notes          string     `db:"notes"`
	DueDate        time.Time  `db:"due_date"`
	CreatedAt      time.Time  `db:"created_at"`
}

type Message struct {
	ID         uuid.UUID  `db:"id"`
	CaseID     uuid.UUID  `db:"case_id"`
	SenderID   uuid.UUID  `db:"sender_id"`
	ReceiverID uuid.UUID  `db:"receiver_id"`
	Content    string     `db:"content"`
	IsRead     bool       `db:"is_read"`
	ReadAt     *time.Time `db:"read_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

type FineType struct {
	ID          uuid.UUID `db:"id"`
	Category    string    `db:"category"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Amount      float64   `db:"amount"`
	Points      int       `db:"points"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

type BusinessPlan struct {
	ID               uuid.UUID `db:"id"`
	Name             string    `db:"name"`
	MonthlyPrice     float64   `db:"monthly_price"`
	SetupFee         float64   `db:"setup_fee"`
	MaxFinesPerMonth *int      `db:"max_fines_per_month"`
	StripePriceID    string    `db:"stripe_price_id"`
	IsActive         bool      `db:"is_active"`
	DisplayOrder     int       `db:"display_order"`
}

type BusinessAccount struct {
	ID                  uuid.UUID `db:"id"`
	CompanyName         string    `db:"company_name"`
	CompanyRegistration string    `db:"company_registration"`
	BusinessType        string    `db:"business_type"`
	ContactEmail        string    `db:"contact_email"`
	ContactPhone        string    `db:"contact_phone"`
	ContactPerson       string    `db:"contact_person"`
	City                string    `db:"city"`
	Region              string    `db:"region"`
	PlanID              uuid.UUID `db:"plan_id"`
	StripeCustomerID    string    `db:"stripe_customer_id"`
	SubscriptionID      string    `db:"subscription_id"`
	SubscriptionStatus  string    `db:"subscription_status"`
	AccountManagerID    uuid.UUID `db:"account_manager_id"`
	CreatedAt           time.Time `db:"created_at"`
}

type BusinessEmployee struct {
	ID         uuid.UUID `db:"id"`
	BusinessID uuid.UUID `db:"business_id"`
	UserID     uuid.UUID `db:"user_id"`
	FullName   string    `db:"full_name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	IDNumber   string    `db:"id_number"`
	Role       string    `db:"role"`
	AddedBy    uuid.UUID `db:"added_by"`
	AddedAt    time.Time `db:"added_at"`
}

type BusinessUsage struct {
	BusinessID     uuid.UUID `db:"business_id"`
	Year           int       `db:"year"`
	Month          int       `db:"month"`
	FinesSubmitted int       `db:"fines_submitted"`
	FinesExtra     int       `db:"fines_extra"`
	ExtraFineCost  float64   `db:"extra_fine_cost"`
}

type BusinessInvoice struct {
	ID              uuid.UUID `db:"id"`
	BusinessID      uuid.UUID `db:"business_id"`
	InvoiceNumber   string    `db:"invoice_number"`
	PeriodStart     time.Time `db:"period_start"`
	PeriodEnd       time.Time `db:"period_end"`
	PlanFee         float64   `db:"plan_fee"`
	SetupFee        float64   `db:"setup_fee"`
	ExtraFinesCount int       `db:"extra_fines_count"`
	ExtraFinesCost  float64   `db:"extra_fines_cost"`
	Subtotal        float64   `db:"subtotal"`
	Tax             float64   `db:"tax"`
	Total           float64   `db:"total"`
	CreatedAt       time.Time `db:"created_at"`
}

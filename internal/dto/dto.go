package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/otr-legal/otr-backend/internal/domain"
)

type RegisterRequestDTO struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	ID            uuid.UUID   `json:"id"`
	Email         string      `json:"email"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Phone         string      `json:"phone,omitempty"`
	Role          domain.Role `json:"role"`
	CasesPerMonth int         `json:"casesPerMonth"`
	CasesUsed     int         `json:"casesUsed"`
}

func NewUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		Role:          u.Role,
		CasesPerMonth: u.CasesPerMonth,
		CasesUsed:     u.CasesUsed,
	}
}

type CreateCaseRequestDTO struct {
	ViolationType string    `json:"violationType"`
	TicketNumber  string    `json:"ticketNumber"`
	IssueDate     time.Time `json:"issueDate"`
	Street        string    `json:"street"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	County        string    `json:"county"`
	CourtName     string    `json:"courtName"`
	CourtAddress  string    `json:"courtAddress"`
	FineAmount    float64   `json:"fineAmount"`
	Points        int       `json:"points"`
	TicketImage   string    `json:"ticketImage"`
	IsCDLDriver   bool      `json:"isCdlDriver"`
	LicenseNumber string    `json:"licenseNumber"`
	LicenseState  string    `json:"licenseState"`
}

type UpdateCaseStatusRequestDTO struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type ScheduleCourtDateRequestDTO struct {
	CourtDate time.Time `json:"courtDate"`
}

type RecordOutcomeRequestDTO struct {
	Outcome     string   `json:"outcome"`
	FinalFine   *float64 `json:"finalFine"`
	FinalPoints *int     `json:"finalPoints"`
	Notes       string   `json:"notes"`
}

type RateLawyerRequestDTO struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

type ReassignCaseRequestDTO struct {
	LawyerID uuid.UUID `json:"lawyerId"`
}

type AddDocumentRequestDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type RegisterLawyerRequestDTO struct {
	LicenseNumber     string                `json:"licenseNumber"`
	BarAssociation    string                `json:"barAssociation"`
	YearsOfExperience int                   `json:"yearsOfExperience"`
	Specializations   []string              `json:"specializations"`
	Jurisdictions     []domain.Jurisdiction `json:"jurisdictions"`
	Bio               string                `json:"bio"`
	MaxCases          int                   `json:"maxCases"`
}

type UpdateLawyerRequestDTO struct {
	BarAssociation    string                `json:"barAssociation"`
	YearsOfExperience int                   `json:"yearsOfExperience"`
	Specializations   []string              `json:"specializations"`
	Jurisdictions     []domain.Jurisdiction `json:"jurisdictions"`
	Bio               string                `json:"bio"`
	MaxCases          int                   `json:"maxCases"`
	BankAccountNumber string                `json:"bankAccountNumber"`
	BankRoutingNumber string                `json:"bankRoutingNumber"`
	BankAccountHolder string                `json:"bankAccountHolder"`
}

type SetAvailabilityRequestDTO struct {
	IsAvailable bool `json:"isAvailable"`
}

type RejectLawyerRequestDTO struct {
	Reason string `json:"reason"`
}

type CreateIntentRequestDTO struct {
	CaseID uuid.UUID `json:"caseId"`
}

type CreateIntentResponseDTO struct {
	PaymentID    uuid.UUID `json:"paymentId"`
	ClientSecret string    `json:"clientSecret"`
	Amount       float64   `json:"amount"`
}

type RefundRequestDTO struct {
	Reason string `json:"reason"`
}

type ProcessRefundRequestDTO struct {
	Approve bool `json:"approve"`
}

type SendMessageRequestDTO struct {
	Content string `json:"content"`
}

type CreateBusinessAccountRequestDTO struct {
	CompanyName         string    `json:"companyName"`
	CompanyRegistration string    `json:"companyRegistration"`
	BusinessType        string    `json:"businessType"`
	ContactEmail        string    `json:"contactEmail"`
	ContactPhone        string    `json:"contactPhone"`
	ContactPerson       string    `json:"contactPerson"`
	City                string    `json:"city"`
	Region              string    `json:"region"`
	PlanID              uuid.UUID `json:"planId"`
}

type AddEmployeeRequestDTO struct {
	UserID   uuid.UUID `json:"userId"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	IDNumber string    `json:"idNumber"`
	Role     string    `json:"role"`
}

type SubmitFineRequestDTO struct {
	FineTypeID uuid.UUID `json:"fineTypeId"`
}

type SubmitFineResponseDTO struct {
	FinesSubmitted int     `json:"finesSubmitted"`
	ExtraCost      float64 `json:"extraCost"`
	Warning        string  `json:"warning,omitempty"`
}

type CheckoutRequestDTO struct {
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

type CheckoutResponseDTO struct {
	URL string `json:"url"`
}

type IssueInvoiceRequestDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type CaseInvoiceRequestDTO struct {
	LineItems      []domain.LineItem `json:"lineItems"`
	TaxPercentage  float64           `json:"taxPercentage"`
	DiscountAmount float64           `json:"discountAmount"`
}

type SetRoleRequestDTO struct {
	Role string `json:"role"`
}

type SetQuotaRequestDTO struct {
	CasesPerMonth int `json:"casesPerMonth"`
}

type FineTypeRequestDTO struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Points      int     `json:"points"`
	IsActive    *bool   `json:"isActive"`
}

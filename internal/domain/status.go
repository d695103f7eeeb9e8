package domain

type Role string

const (
	RoleUser            Role = "user"
	RoleLawyer          Role = "lawyer"
	RoleAdmin           Role = "admin"
	RoleBusinessSupport Role = "business_support"
)

type ViolationType string

const (
	ViolationSpeeding         ViolationType = "speeding"
	ViolationRedLight         ViolationType = "red_light"
	ViolationStopSign         ViolationType = "stop_sign"
	ViolationCellPhone        ViolationType = "cell_phone"
	ViolationHOV              ViolationType = "hov"
	ViolationReckless         ViolationType = "reckless_driving"
	ViolationSuspendedLicense ViolationType = "suspended_license"
	ViolationDUI              ViolationType = "dui"
	ViolationLaneChange       ViolationType = "lane_change"
	ViolationNoInsurance      ViolationType = "no_insurance"
	ViolationRacing           ViolationType = "racing"
	ViolationConstructionZone ViolationType = "construction_zone"
	ViolationCDL              ViolationType = "cdl_violations"
	ViolationOther            ViolationType = "other"
)

var violationTypes = map[ViolationType]struct{}{
	ViolationSpeeding: {}, ViolationRedLight: {}, ViolationStopSign: {},
	ViolationCellPhone: {}, ViolationHOV: {}, ViolationReckless: {},
	ViolationSuspendedLicense: {}, ViolationDUI: {}, ViolationLaneChange: {},
	ViolationNoInsurance: {}, ViolationRacing: {}, ViolationConstructionZone: {},
	ViolationCDL: {}, ViolationOther: {},
}

func (v ViolationType) Valid() bool {
	_, ok := violationTypes[v]
	return ok
}

type CaseStatus string

const (
	CasePending        CaseStatus = "pending"
	CaseAssigned       CaseStatus = "assigned"
	CaseInProgress     CaseStatus = "in_progress"
	CaseCourtScheduled CaseStatus = "court_scheduled"
	CaseDismissed      CaseStatus = "dismissed"
	CaseReduced        CaseStatus = "reduced"
	CaseLost           CaseStatus = "lost"
	CaseClosed         CaseStatus = "closed"
)

// caseTransitions is the closed transition table for case statuses.
// Reassignment keeps a case inside "assigned" and is handled separately.
// A refund closes an in_progress case directly, skipping the outcome states.
var caseTransitions = map[CaseStatus][]CaseStatus{
	CasePending:        {CaseAssigned},
	CaseAssigned:       {CaseAssigned, CaseInProgress},
	CaseInProgress:     {CaseCourtScheduled, CaseDismissed, CaseReduced, CaseLost, CaseClosed},
	CaseCourtScheduled: {CaseDismissed, CaseReduced, CaseLost},
	CaseDismissed:      {CaseClosed},
	CaseReduced:        {CaseClosed},
	CaseLost:           {CaseClosed},
	CaseClosed:         {},
}

// CanTransition reports whether moving from one case status to another is allowed.
func CanTransition(from, to CaseStatus) bool {
	for _, next := range caseTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether the status ends the case lifecycle.
func (s CaseStatus) Terminal() bool {
	switch s {
	case CaseDismissed, CaseReduced, CaseLost, CaseClosed:
		return true
	}
	return false
}

type OutcomeType string

const (
	OutcomeNone      OutcomeType = ""
	OutcomeDismissed OutcomeType = "dismissed"
	OutcomeReduced   OutcomeType = "reduced"
	OutcomeGuilty    OutcomeType = "guilty"
	OutcomePending   OutcomeType = "pending"
)

type CasePaymentStatus string

const (
	CasePaymentPending  CasePaymentStatus = "pending"
	CasePaymentPaid     CasePaymentStatus = "paid"
	CasePaymentRefunded CasePaymentStatus = "refunded"
	CasePaymentFailed   CasePaymentStatus = "failed"
)

type PaymentType string

const (
	PaymentTypeCase         PaymentType = "case_payment"
	PaymentTypeSubscription PaymentType = "subscription"
	PaymentTypeRefund       PaymentType = "refund"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
	PaymentCancelled  PaymentStatus = "cancelled"
)

type PayoutStatus string

const (
	PayoutNone       PayoutStatus = ""
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutCompleted  PayoutStatus = "completed"
	PayoutFailed     PayoutStatus = "failed"
)

type RefundStatus string

const (
	RefundNone      RefundStatus = ""
	RefundPending   RefundStatus = "pending"
	RefundApproved  RefundStatus = "approved"
	RefundRejected  RefundStatus = "rejected"
	RefundCompleted RefundStatus = "completed"
)

package auth

import "github.com/otr-legal/otr-backend/internal/domain"

// Capability is a named action a role may perform. Handlers check
// capabilities instead of comparing role strings inline.
type Capability string

const (
	CapManageUsers     Capability = "manage_users"
	CapApproveLawyers  Capability = "approve_lawyers"
	CapAssignCases     Capability = "assign_cases"
	CapUpdateCaseState Capability = "update_case_state"
	CapProcessRefunds  Capability = "process_refunds"
	CapProcessPayouts  Capability = "process_payouts"
	CapManageFines     Capability = "manage_fines"
	CapViewAllPayments Capability = "view_all_payments"
	CapIssueInvoices   Capability = "issue_invoices"
)

var roleCapabilities = map[domain.Role]map[Capability]struct{}{
	domain.RoleAdmin: {
		CapManageUsers: {}, CapApproveLawyers: {}, CapAssignCases: {},
		CapUpdateCaseState: {}, CapProcessRefunds: {}, CapProcessPayouts: {},
		CapManageFines: {}, CapViewAllPayments: {}, CapIssueInvoices: {},
	},
	domain.RoleLawyer: {
		CapUpdateCaseState: {},
	},
	domain.RoleBusinessSupport: {
		CapViewAllPayments: {}, CapIssueInvoices: {},
	},
}

// Can reports whether the role holds the capability.
func Can(role domain.Role, cap Capability) bool {
	caps, ok := roleCapabilities[role]
	if !ok {
		return false
	}
	_, ok = caps[cap]
	return ok
}

package model

// PrincipalKind distinguishes company staff (administrators) from freelancers.
type PrincipalKind string

const (
	// PrincipalKindUser is an administrator/staff account with full rights.
	PrincipalKindUser PrincipalKind = "USER"
	// PrincipalKindFreelancer is a freelancer bound to exactly one pipeline role.
	PrincipalKindFreelancer PrincipalKind = "FREELANCER"
)

// IsValid checks if the principal kind is a known value.
func (k PrincipalKind) IsValid() bool {
	return k == PrincipalKindUser || k == PrincipalKindFreelancer
}

// Scope is the acting principal, resolved once per request from verified
// token claims and passed explicitly into every usecase call.
type Scope struct {
	UserID    string        `json:"user_id"`
	CompanyID string        `json:"company_id"`
	Kind      PrincipalKind `json:"kind"`
	Role      Role          `json:"role"` // meaningful for freelancers only
}

// IsAdmin checks if the scope belongs to an administrator/staff account.
func (s Scope) IsAdmin() bool {
	return s.Kind == PrincipalKindUser
}

// IsFreelancer checks if the scope belongs to a freelancer account.
func (s Scope) IsFreelancer() bool {
	return s.Kind == PrincipalKindFreelancer
}

// HasRole reports whether the scope carries a recognized pipeline role.
// A freelancer whose role label could not be resolved has no capabilities.
func (s Scope) HasRole() bool {
	return s.Role.IsValid()
}

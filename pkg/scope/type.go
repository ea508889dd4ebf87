package scope

import "github.com/golang-jwt/jwt/v5"

// Payload represents the JWT token claims.
type Payload struct {
	jwt.RegisteredClaims
	UserID       string `json:"sub,omitempty"`
	CompanyID    string `json:"company_id"`
	IsFreelancer bool   `json:"is_freelancer"`
	Role         string `json:"role,omitempty"`
	Refresh      bool   `json:"refresh"`
}

// implManager implements Manager.
type implManager struct {
	secretKey string
}

// Context key types for payload and scope.
type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)

package model

import (
	"time"

	"gorm.io/gorm"
)

// User is an account within a company: an administrator/staff member or a
// freelancer bound to one pipeline role. Password hashes are stored for the
// external auth service; this service never issues tokens.
type User struct {
	ID        string        `json:"id" gorm:"primaryKey;type:uuid"`
	CompanyID string        `json:"company_id" gorm:"type:uuid;index"`
	Kind      PrincipalKind `json:"kind"`
	Role      Role          `json:"role,omitempty"` // set for freelancers only
	Name      string        `json:"name"`
	Email     string        `json:"email" gorm:"uniqueIndex"`

	// PhoneEncrypted is the AES-GCM encrypted WhatsApp number used for
	// hand-off notifications. Never exposed in API responses.
	PhoneEncrypted *string `json:"-"`
	PasswordHash   *string `json:"-"`
	IsActive       bool    `json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the users table name for GORM.
func (User) TableName() string {
	return "users"
}

package model

import "time"

// SubscriptionStatus represents the status of a company subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusTrialing  SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue   SubscriptionStatus = "past_due"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// IsValid checks if the subscription status is valid.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive,
		SubscriptionStatusTrialing,
		SubscriptionStatusPastDue,
		SubscriptionStatusCancelled,
		SubscriptionStatusExpired:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// Subscription is a company's billing subscription. Mutating workflow
// operations are gated on the company holding a usable subscription.
type Subscription struct {
	ID          string             `json:"id" gorm:"primaryKey;type:uuid"`
	CompanyID   string             `json:"company_id" gorm:"type:uuid;index"`
	PlanID      string             `json:"plan_id" gorm:"type:uuid"`
	Status      SubscriptionStatus `json:"status"`
	TrialEndsAt *time.Time         `json:"trial_ends_at,omitempty"`
	StartsAt    time.Time          `json:"starts_at"`
	EndsAt      *time.Time         `json:"ends_at,omitempty"`
	CancelledAt *time.Time         `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TableName sets the subscriptions table name for GORM.
func (Subscription) TableName() string {
	return "subscriptions"
}

// UsableAt reports whether the subscription grants access at the given time:
// active within its period, or trialing before the trial end.
func (s Subscription) UsableAt(now time.Time) bool {
	switch s.Status {
	case SubscriptionStatusActive:
		return s.EndsAt == nil || now.Before(*s.EndsAt)
	case SubscriptionStatusTrialing:
		return s.TrialEndsAt != nil && now.Before(*s.TrialEndsAt)
	default:
		return false
	}
}

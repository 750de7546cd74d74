package model

import "time"

// Subscription plans and statuses
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"

	SubscriptionActive   = "active"
	SubscriptionCanceled = "canceled"
)

// ValidPlan reports whether p is a known plan.
func ValidPlan(p string) bool {
	return p == PlanMonthly || p == PlanYearly
}

// Subscription represents a premium tier membership. A user has at most one
// active subscription; subscribing sets the premium flag on the user record
// and canceling clears it.
type Subscription struct {
	ID         string     `gorm:"column:id;primaryKey"`
	UserID     string     `gorm:"column:user_id;index;not null"`
	Plan       string     `gorm:"column:plan;not null"`
	Status     string     `gorm:"column:status;not null;default:active"`
	StartedAt  time.Time  `gorm:"column:started_at;autoCreateTime"`
	CanceledAt *time.Time `gorm:"column:canceled_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

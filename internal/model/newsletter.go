package model

import "time"

// NewsletterSubscription is the single row kept per email address. The
// active flag toggles; the row is never recreated.
type NewsletterSubscription struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
	IsActive     bool      `json:"is_active"`
}

// SubscribeInput is the payload accepted by the newsletter endpoint.
type SubscribeInput struct {
	Email string `json:"email"`
}

// Validate checks the email field.
func (in SubscribeInput) Validate() error {
	var v ValidationError
	validateEmail(&v, in.Email)
	return v.OrNil()
}

// SubscribeOutcome tells which transition a subscribe call took.
type SubscribeOutcome string

const (
	SubscribeCreated       SubscribeOutcome = "created"
	SubscribeReactivated   SubscribeOutcome = "reactivated"
	SubscribeAlreadyActive SubscribeOutcome = "already_active"
)

// SubscribeResult pairs the stored subscription with the transition taken.
type SubscribeResult struct {
	Subscription *NewsletterSubscription
	Outcome      SubscribeOutcome
}

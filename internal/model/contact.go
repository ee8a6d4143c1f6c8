package model

import "time"

// ContactSubmission represents a message submitted via the contact form.
// Rows are never updated or deleted once written.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactInput is the payload accepted by the contact form endpoint.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

const (
	contactNameMax    = 100
	contactMessageMin = 10
	contactMessageMax = 1000
)

// Validate checks the field limits of the contact form.
func (in ContactInput) Validate() error {
	var v ValidationError
	switch n := runeLen(in.Name); {
	case n < 1:
		v.Add("name", "Name is required")
	case n > contactNameMax:
		v.Add("name", "Name must be less than 100 characters")
	}
	validateEmail(&v, in.Email)
	switch n := runeLen(in.Message); {
	case n < contactMessageMin:
		v.Add("message", "Message must be at least 10 characters")
	case n > contactMessageMax:
		v.Add("message", "Message must be less than 1000 characters")
	}
	return v.OrNil()
}

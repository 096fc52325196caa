package models

// ContactMessage is the contact-us form input. Every field is optional.
type ContactMessage struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
}

// Validate checks the fields that are present
func (c ContactMessage) Validate() error {
	return check(c)
}

package pages

import (
	"fmt"

	"github.com/automationexercise/storefront-e2e/internal/models"
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
)

// SignupPage is the "New User Signup!" half of /login
type SignupPage struct{ page }

// FillSignupName types the signup name
func (s *SignupPage) FillSignupName(name string) error {
	return s.driver.Fill(sel.SignupName, name)
}

// FillSignupEmail types the signup email
func (s *SignupPage) FillSignupEmail(email string) error {
	return s.driver.Fill(sel.SignupEmail, email)
}

// ClickSignupButton submits the signup form
func (s *SignupPage) ClickSignupButton() error {
	return s.driver.Click(sel.SignupButton)
}

// CompleteSignupForm enters name and email and submits. Both are required.
func (s *SignupPage) CompleteSignupForm(name, email string) error {
	if name == "" {
		return fmt.Errorf("%w: signup name", models.ErrMissingField)
	}
	if err := models.ValidateEmail(email); err != nil {
		return err
	}

	return each(
		func() error { return s.FillSignupName(name) },
		func() error { return s.FillSignupEmail(email) },
		s.ClickSignupButton,
	)
}

// VerifyFormTitle waits for the signup heading, e.g. "New User Signup!"
func (s *SignupPage) VerifyFormTitle(expected string) error {
	return s.expectText(sel.SignupFormTitle, expected)
}

package pages

import (
	"fmt"

	"github.com/automationexercise/storefront-e2e/internal/models"
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
)

// LoginPage is the "Login to your account" half of /login
type LoginPage struct{ page }

// FillLoginEmail types the login email
func (l *LoginPage) FillLoginEmail(email string) error {
	return l.driver.Fill(sel.LoginEmail, email)
}

// FillLoginPassword types the login password
func (l *LoginPage) FillLoginPassword(password string) error {
	return l.driver.Fill(sel.LoginPassword, password)
}

// ClickLoginButton submits the login form
func (l *LoginPage) ClickLoginButton() error {
	return l.driver.Click(sel.LoginButton)
}

// CompleteLoginForm enters credentials and submits
func (l *LoginPage) CompleteLoginForm(email, password string) error {
	if err := models.ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("%w: password", models.ErrMissingField)
	}

	return each(
		func() error { return l.FillLoginEmail(email) },
		func() error { return l.FillLoginPassword(password) },
		l.ClickLoginButton,
	)
}

// VerifyFormTitle waits for "Login to your account"
func (l *LoginPage) VerifyFormTitle(expected string) error {
	return l.expectText(sel.LoginFormTitle, expected)
}

// VerifyErrorMessage waits for the credential error under the login form
func (l *LoginPage) VerifyErrorMessage(expected string) error {
	return l.expectText(sel.LoginErrorMessage, expected)
}

// ErrorText reads the login form's message line without waiting
func (l *LoginPage) ErrorText() (string, error) {
	n, err := l.driver.Count(sel.LoginErrorMessage)
	if err != nil || n == 0 {
		return "", err
	}
	text, err := l.driver.Text(sel.LoginErrorMessage)
	if err != nil {
		return "", err
	}
	return normalize(text), nil
}

package pages

import (
	"context"
	"fmt"

	"github.com/automationexercise/storefront-e2e/internal/browser"
	"github.com/automationexercise/storefront-e2e/internal/models"
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
)

// Contact page defaults, used when the caller passes no expected text
const (
	ContactTitle   = "Get In Touch"
	ContactSuccess = "Success! Your details have been submitted successfully."
)

// ContactPage is /contact_us
type ContactPage struct{ page }

// VerifyTitleVisible waits for the form heading
func (c *ContactPage) VerifyTitleVisible(expected string) error {
	if expected == "" {
		expected = ContactTitle
	}
	return c.expectText(sel.ContactTitle, expected)
}

// FillContactForm types the set fields of msg and skips the empty ones
func (c *ContactPage) FillContactForm(msg models.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	fields := []struct {
		selector string
		value    string
	}{
		{sel.ContactName, msg.Name},
		{sel.ContactEmail, msg.Email},
		{sel.ContactSubject, msg.Subject},
		{sel.ContactMessage, msg.Message},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := c.driver.Fill(f.selector, f.value); err != nil {
			return err
		}
	}
	return nil
}

// UploadFile attaches file to the form
func (c *ContactPage) UploadFile(file browser.File) error {
	if file.Name == "" {
		return fmt.Errorf("%w: upload file name", models.ErrMissingField)
	}
	return c.driver.Upload(sel.ContactFileInput, file)
}

// ClickSubmit submits the form. The site asks for confirmation through a
// native dialog, which is accepted.
func (c *ContactPage) ClickSubmit() error {
	c.driver.AcceptDialogs()
	return c.driver.Click(sel.ContactSubmitButton)
}

// VerifyDialogShown waits until an accepted dialog carried expected
func (c *ContactPage) VerifyDialogShown(expected string) error {
	var got []string
	err := c.poller.UntilDone(func(context.Context) (bool, error) {
		got = c.driver.Dialogs()
		for _, msg := range got {
			if containsAny(msg, expected) {
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return &AssertionError{Selector: "dialog", Want: describeText([]string{expected}), Got: fmt.Sprint(got), Err: err}
	}
	return nil
}

// VerifySuccessMessage waits for the green banner
func (c *ContactPage) VerifySuccessMessage(expected string) error {
	if expected == "" {
		expected = ContactSuccess
	}
	return c.expectText(sel.ContactSuccessMessage, expected)
}

// ClickHomeButton returns to the home page
func (c *ContactPage) ClickHomeButton() error {
	return c.driver.Click(sel.ContactHomeButton)
}

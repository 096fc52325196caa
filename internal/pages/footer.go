package pages

import (
	"github.com/automationexercise/storefront-e2e/internal/models"
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
)

// Footer subscription texts
const (
	SubscriptionTitle   = "Subscription"
	SubscriptionSuccess = "You have been successfully subscribed!"
)

// FooterPage is the subscription widget in the footer of every page
type FooterPage struct{ page }

// ScrollToFooter brings the footer into view
func (f *FooterPage) ScrollToFooter() error {
	return f.driver.ScrollIntoView(sel.Footer, 0)
}

// VerifySubscriptionTitle waits for the subscription heading
func (f *FooterPage) VerifySubscriptionTitle() error {
	return f.expectText(sel.FooterSubscriptionTitle, SubscriptionTitle)
}

// EnterSubscriptionEmail types email into the subscription input
func (f *FooterPage) EnterSubscriptionEmail(email string) error {
	return f.driver.Fill(sel.FooterSubscriptionEmail, email)
}

// ClickSubscriptionButton presses the arrow button
func (f *FooterPage) ClickSubscriptionButton() error {
	return f.driver.Click(sel.FooterSubscriptionButton)
}

// SubscribeWithEmail enters email and presses the arrow button
func (f *FooterPage) SubscribeWithEmail(email string) error {
	if err := models.ValidateEmail(email); err != nil {
		return err
	}
	return each(
		func() error { return f.EnterSubscriptionEmail(email) },
		f.ClickSubscriptionButton,
	)
}

// VerifySubscriptionSuccess waits for the subscribed banner
func (f *FooterPage) VerifySubscriptionSuccess() error {
	return f.expectText(sel.FooterSubscriptionSuccess, SubscriptionSuccess)
}

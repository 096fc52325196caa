package pages

import (
	"github.com/automationexercise/storefront-e2e/internal/models"
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
)

// Accepted forms of the order confirmation. The site has changed this
// wording before; any of these counts as success.
var orderConfirmedForms = []string{
	"Congratulations",
	"order has been confirmed",
}

// PaymentPage is /payment and the /payment_done confirmation
type PaymentPage struct{ page }

// VerifyPaymentPageLoaded waits for the card form and all of its inputs
func (p *PaymentPage) VerifyPaymentPageLoaded() error {
	steps := []func() error{
		func() error { return p.expectURL("/payment") },
		func() error { return p.driver.WaitAttached(sel.PaymentForm) },
	}
	for _, s := range []string{
		sel.PaymentNameOnCard,
		sel.PaymentCardNumber,
		sel.PaymentCVC,
		sel.PaymentExpiryMonth,
		sel.PaymentExpiryYear,
		sel.PaymentPayButton,
	} {
		steps = append(steps, func() error { return p.expectVisible(s) })
	}
	return each(steps...)
}

// FillNameOnCard types the card holder
func (p *PaymentPage) FillNameOnCard(v string) error {
	return p.driver.Fill(sel.PaymentNameOnCard, v)
}

// FillCardNumber types the card number
func (p *PaymentPage) FillCardNumber(v string) error {
	return p.driver.Fill(sel.PaymentCardNumber, v)
}

// FillCVC types the card security code
func (p *PaymentPage) FillCVC(v string) error {
	return p.driver.Fill(sel.PaymentCVC, v)
}

// FillExpiryMonth types the expiry month
func (p *PaymentPage) FillExpiryMonth(v string) error {
	return p.driver.Fill(sel.PaymentExpiryMonth, v)
}

// FillExpiryYear types the expiry year
func (p *PaymentPage) FillExpiryYear(v string) error {
	return p.driver.Fill(sel.PaymentExpiryYear, v)
}

// ClickPayButton submits the payment
func (p *PaymentPage) ClickPayButton() error {
	return p.driver.Click(sel.PaymentPayButton)
}

// CompletePaymentForm validates the card data, fills every field and pays
func (p *PaymentPage) CompletePaymentForm(d models.PaymentDetails) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return each(
		func() error { return p.FillNameOnCard(d.NameOnCard) },
		func() error { return p.FillCardNumber(d.CardNumber) },
		func() error { return p.FillCVC(d.CVC) },
		func() error { return p.FillExpiryMonth(d.ExpiryMonth) },
		func() error { return p.FillExpiryYear(d.ExpiryYear) },
		p.ClickPayButton,
	)
}

// VerifyOrderPlacedSuccessfully waits for /payment_done with its heading
// and confirmation line.
func (p *PaymentPage) VerifyOrderPlacedSuccessfully() error {
	return each(
		func() error { return p.expectURL("/payment_done") },
		func() error { return p.expectVisible(sel.PaymentOrderPlacedTitle) },
		func() error { return p.expectVisible(sel.PaymentSuccessMessage) },
	)
}

// VerifySuccessMessage accepts expected or any known confirmation wording
func (p *PaymentPage) VerifySuccessMessage(expected string) error {
	accepted := append([]string{expected}, orderConfirmedForms...)
	return p.expectText(sel.PaymentSuccessMessage, accepted...)
}

// ClickContinue leaves the order confirmation
func (p *PaymentPage) ClickContinue() error {
	return p.driver.Click(sel.ContinueButton)
}

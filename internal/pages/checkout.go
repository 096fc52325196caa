package pages

import (
	"github.com/automationexercise/storefront-e2e/internal/models"
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
)

// Checkout step headings
const (
	AddressDetailsHeading = "Address Details"
	ReviewOrderHeading    = "Review Your Order"
)

// AddressLines is an address block as checkout renders it. Empty fields are
// not checked.
type AddressLines struct {
	Name     string
	Address1 string
	City     string
	Country  string
}

// AddressLinesFor renders u the way the checkout address blocks show it
func AddressLinesFor(u models.UserProfile) AddressLines {
	return AddressLines{
		Name:     u.AddressName(),
		Address1: u.Address1,
		City:     u.CityLine(),
		Country:  u.Country,
	}
}

// CheckoutPage is /checkout
type CheckoutPage struct{ page }

// VerifyCheckoutPageLoaded waits for /checkout and its delivery address block
func (c *CheckoutPage) VerifyCheckoutPageLoaded() error {
	return each(
		func() error { return c.expectURL("/checkout") },
		func() error { return c.driver.WaitAttached(sel.CheckoutAddressDelivery) },
	)
}

// VerifyAddressDetailsVisible waits for the delivery and invoice blocks
func (c *CheckoutPage) VerifyAddressDetailsVisible() error {
	return each(
		func() error { return c.expectVisible(sel.CheckoutAddressDelivery) },
		func() error { return c.expectVisible(sel.CheckoutAddressInvoice) },
	)
}

// VerifyReviewOrderVisible waits for the review heading and the order table
func (c *CheckoutPage) VerifyReviewOrderVisible() error {
	return each(
		c.VerifyReviewOrderHeader,
		func() error { return c.expectVisible(sel.CheckoutOrderTable) },
	)
}

// VerifyDeliveryAddress compares each set line exactly, after collapsing
// whitespace.
func (c *CheckoutPage) VerifyDeliveryAddress(want AddressLines) error {
	return c.verifyAddress(want, c.expectTextEquals, [4]string{
		sel.CheckoutDeliveryName,
		sel.CheckoutDeliveryAddress1,
		sel.CheckoutDeliveryCity,
		sel.CheckoutDeliveryCountry,
	})
}

// VerifyInvoiceAddress checks that each set line contains the expected text
func (c *CheckoutPage) VerifyInvoiceAddress(want AddressLines) error {
	contains := func(selector, text string) error { return c.expectText(selector, text) }
	return c.verifyAddress(want, contains, [4]string{
		sel.CheckoutInvoiceName,
		sel.CheckoutInvoiceAddress1,
		sel.CheckoutInvoiceCity,
		sel.CheckoutInvoiceCountry,
	})
}

func (c *CheckoutPage) verifyAddress(want AddressLines, match func(selector, text string) error, selectors [4]string) error {
	values := [4]string{want.Name, want.Address1, want.City, want.Country}
	for i, v := range values {
		if v == "" {
			continue
		}
		if err := match(selectors[i], v); err != nil {
			return err
		}
	}
	return nil
}

// OrderItemCount returns how many products are under review
func (c *CheckoutPage) OrderItemCount() (int, error) {
	return c.driver.Count(sel.CheckoutOrderItems)
}

// VerifyOrderItemsVisible waits for at least one product in the review table
func (c *CheckoutPage) VerifyOrderItemsVisible() error {
	return c.expectCount(sel.CheckoutOrderItems, 1)
}

// ProductNameAt returns the name of the index-th reviewed product
func (c *CheckoutPage) ProductNameAt(index int) (string, error) {
	text, err := c.driver.TextAt(sel.CheckoutProductName, index)
	if err != nil {
		return "", err
	}
	return normalize(text), nil
}

// FillComment types the order comment
func (c *CheckoutPage) FillComment(comment string) error {
	return c.driver.Fill(sel.CheckoutComment, comment)
}

// ClickPlaceOrder moves on to payment
func (c *CheckoutPage) ClickPlaceOrder() error {
	return c.driver.Click(sel.CheckoutPlaceOrder)
}

// CompleteCheckout enters comment, when given, and places the order
func (c *CheckoutPage) CompleteCheckout(comment string) error {
	if comment != "" {
		if err := c.FillComment(comment); err != nil {
			return err
		}
	}
	return c.ClickPlaceOrder()
}

// VerifyAddressDetailsHeader waits for the "Address Details" heading
func (c *CheckoutPage) VerifyAddressDetailsHeader() error {
	return c.expectText(sel.CheckoutAddressHeader, AddressDetailsHeading)
}

// VerifyReviewOrderHeader waits for the "Review Your Order" heading
func (c *CheckoutPage) VerifyReviewOrderHeader() error {
	return c.expectText(sel.CheckoutReviewHeader, ReviewOrderHeading)
}

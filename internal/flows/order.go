package flows

import (
	"github.com/automationexercise/storefront-e2e/internal/pages"
	"github.com/automationexercise/storefront-e2e/internal/testdata"
)

// PlaceOrderRegisterBeforeCheckout is TC15: register, buy one product and
// delete the account.
func PlaceOrderRegisterBeforeCheckout(j *Journey) error {
	site := j.Site
	tc := j.Fixtures.Cart.TestCase15
	u := tc.UserData
	u.Email = testdata.UniqueEmail("johntest", "test.com")
	address := pages.AddressLinesFor(u)

	if err := verifyHome(j); err != nil {
		return err
	}
	acct, err := signUp(j, u)
	if err != nil {
		return err
	}

	err = j.sequence(
		step("Add products to cart and click 'View Cart'", func() error {
			return site.Cart.AddProductAndGoToCart(tc.ProductIndex)
		}),
		step("Verify that cart page is displayed", all(
			site.Cart.VerifyCartPageLoaded,
			site.Cart.VerifyCartHasItems,
		)),
		step("Click Proceed To Checkout", site.Cart.ClickProceedToCheckout),
		step("Verify Address Details and Review Your Order", all(
			site.Checkout.VerifyCheckoutPageLoaded,
			site.Checkout.VerifyAddressDetailsHeader,
			site.Checkout.VerifyReviewOrderHeader,
			site.Checkout.VerifyAddressDetailsVisible,
			site.Checkout.VerifyReviewOrderVisible,
			site.Checkout.VerifyOrderItemsVisible,
			func() error { return site.Checkout.VerifyDeliveryAddress(address) },
			func() error { return site.Checkout.VerifyInvoiceAddress(address) },
		)),
		step("Enter description in comment text area and click 'Place Order'", func() error {
			return site.Checkout.CompleteCheckout(tc.CheckoutComment)
		}),
		step("Verify payment page is displayed", site.Payment.VerifyPaymentPageLoaded),
		step("Enter payment details and click 'Pay and Confirm Order'", func() error {
			return site.Payment.CompletePaymentForm(tc.PaymentData)
		}),
		step("Verify success message 'Your order has been placed successfully!'", all(
			site.Payment.VerifyOrderPlacedSuccessfully,
			func() error { return site.Payment.VerifySuccessMessage(tc.ExpectedMessages.OrderSuccess) },
		)),
		step("Click 'Continue' button", site.Payment.ClickContinue),
	)
	if err != nil {
		return err
	}
	return deleteAccountSteps(j, acct, tc.ExpectedMessages.AccountDeleted)
}

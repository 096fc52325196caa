package selectors

// Payment page (/payment) and order confirmation (/payment_done)
const (
	PaymentForm        = "#payment-form"
	PaymentNameOnCard  = `[data-qa="name-on-card"]`
	PaymentCardNumber  = `[data-qa="card-number"]`
	PaymentCVC         = `[data-qa="cvc"]`
	PaymentExpiryMonth = `[data-qa="expiry-month"]`
	PaymentExpiryYear  = `[data-qa="expiry-year"]`
	PaymentPayButton   = `[data-qa="pay-button"]`

	PaymentOrderPlacedTitle = `[data-qa="order-placed"]`
	PaymentSuccessMessage   = ".col-sm-9.col-sm-offset-1 p"
)

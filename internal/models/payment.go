package models

// PaymentDetails is the card data typed into the payment form
type PaymentDetails struct {
	NameOnCard  string `json:"nameOnCard" validate:"required"`
	CardNumber  string `json:"cardNumber" validate:"required,numeric"`
	CVC         string `json:"cvc" validate:"required,numeric,min=3,max=4"`
	ExpiryMonth string `json:"expiryMonth" validate:"required,numeric,len=2"`
	ExpiryYear  string `json:"expiryYear" validate:"required,numeric,len=4"`
}

// Validate checks that every payment field is present and well formed
func (p PaymentDetails) Validate() error {
	return check(p)
}

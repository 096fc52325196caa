package selectors

// Footer subscription widget, present on every page
const (
	Footer                    = "footer"
	FooterSubscriptionTitle   = ".single-widget h2"
	FooterSubscriptionEmail   = "#susbscribe_email"
	FooterSubscriptionButton  = "#subscribe"
	FooterSubscriptionSuccess = "#success-subscribe .alert-success"
)

package flows

import "strings"

// Case is one runnable test case
type Case struct {
	ID    string
	Title string
	Run   Flow
}

// Suite returns every case in execution order
func Suite() []Case {
	return []Case{
		{ID: "TC1", Title: "Register User", Run: RegisterUser},
		{ID: "TC1-no-options", Title: "Register User without optional checkboxes", Run: RegisterUserWithoutOptions},
		{ID: "TC1-mrs", Title: "Register User with Mrs title", Run: RegisterUserMrs},
		{ID: "TC2", Title: "Login User with correct email and password", Run: LoginValidUser},
		{ID: "TC3", Title: "Login User with incorrect email and password", Run: LoginInvalidUser},
		{ID: "TC4", Title: "Logout User", Run: LogoutUser},
		{ID: "TC6", Title: "Contact Us Form", Run: ContactUs},
		{ID: "TC8", Title: "Verify All Products and product detail page", Run: AllProductsAndDetail},
		{ID: "TC9", Title: "Search Product", Run: SearchProduct},
		{ID: "TC10", Title: "Verify Subscription in home page", Run: SubscriptionHome},
		{ID: "TC15", Title: "Place Order: Register before Checkout", Run: PlaceOrderRegisterBeforeCheckout},
		{ID: "ROUNDTRIP", Title: "Register, log out, log in and delete", Run: RegisterLoginRoundTrip},
	}
}

// Select returns the cases whose IDs are listed, in suite order. No IDs
// selects the whole suite.
func Select(ids ...string) []Case {
	cases := Suite()
	if len(ids) == 0 {
		return cases
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[strings.ToUpper(strings.TrimSpace(id))] = true
	}

	var out []Case
	for _, c := range cases {
		if wanted[strings.ToUpper(c.ID)] {
			out = append(out, c)
		}
	}
	return out
}

// RunCase opens the home page, runs c and its cleanup, and returns the
// journey with its recorded steps.
func RunCase(c Case, env Env) (*Journey, error) {
	j := NewJourney(c.ID, env)
	err := j.Run(func(j *Journey) error {
		if err := j.Step("Navigate to home page", j.Site.Header.NavigateToHome); err != nil {
			return err
		}
		return c.Run(j)
	})
	return j, err
}

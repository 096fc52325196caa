package selectors

// Header navigation
const (
	HeaderSignupLoginLink   = "#header li:nth-of-type(4) > a"
	HeaderDeleteAccountLink = `a[href="/delete_account"]`
	HeaderLogoutLink        = `a[href="/logout"]`
	HeaderLoggedInUser      = `#header li:has-text("Logged in as") > a`
	HeaderHomeLink          = `a[href="/"]`
	HeaderProductsLink      = `a[href="/products"]`
	HeaderCartLink          = `a[href="/view_cart"]`
	HeaderContactUsLink     = `a[href="/contact_us"]`
)

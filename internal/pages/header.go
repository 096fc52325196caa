package pages

import (
	"fmt"

	"github.com/automationexercise/storefront-e2e/internal/models"
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
)

// HeaderPage is the navigation bar shown on every page
type HeaderPage struct{ page }

// NavigateToHome loads the site root
func (h *HeaderPage) NavigateToHome() error {
	return h.driver.Navigate("/")
}

// ClickSignupLogin opens /login
func (h *HeaderPage) ClickSignupLogin() error {
	return h.driver.Click(sel.HeaderSignupLoginLink)
}

// ClickDeleteAccount deletes the logged-in account
func (h *HeaderPage) ClickDeleteAccount() error {
	return h.driver.Click(sel.HeaderDeleteAccountLink)
}

// ClickProducts opens /products
func (h *HeaderPage) ClickProducts() error {
	return h.driver.Click(sel.HeaderProductsLink)
}

// ClickCart opens /view_cart
func (h *HeaderPage) ClickCart() error {
	return h.driver.Click(sel.HeaderCartLink)
}

// ClickLogout ends the session
func (h *HeaderPage) ClickLogout() error {
	return h.driver.Click(sel.HeaderLogoutLink)
}

// ClickContactUs opens /contact_us
func (h *HeaderPage) ClickContactUs() error {
	return h.driver.Click(sel.HeaderContactUsLink)
}

// VerifyLoggedInUser waits for "Logged in as <name>"
func (h *HeaderPage) VerifyLoggedInUser(name string) error {
	if name == "" {
		return fmt.Errorf("%w: logged in user name", models.ErrMissingField)
	}
	return h.expectText(sel.HeaderLoggedInUser, name)
}

// LoggedInUserText returns the text of the "Logged in as" entry
func (h *HeaderPage) LoggedInUserText() (string, error) {
	text, err := h.driver.Text(sel.HeaderLoggedInUser)
	if err != nil {
		return "", err
	}
	return normalize(text), nil
}

// IsLoggedIn reports whether the logout link is currently shown
func (h *HeaderPage) IsLoggedIn() (bool, error) {
	n, err := h.driver.Count(sel.HeaderLogoutLink)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	return h.driver.IsVisible(sel.HeaderLogoutLink)
}

package pages

import sel "github.com/automationexercise/storefront-e2e/internal/selectors"

// HomePage is the landing page
type HomePage struct{ page }

// VerifyHomePageLoaded waits for the slider and the featured items. It only
// reads the page, so repeating it on an unchanged page gives the same result.
func (h *HomePage) VerifyHomePageLoaded() error {
	if err := h.expectVisible(sel.HomeSlider); err != nil {
		return err
	}
	return h.expectVisible(sel.HomeFeaturesItems)
}

// URL returns the current page URL
func (h *HomePage) URL() string {
	return h.driver.URL()
}

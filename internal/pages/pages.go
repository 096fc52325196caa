// Package pages holds one page object per area of the shop. Page objects
// keep no state beyond the driver and poller; every call re-reads the DOM.
package pages

import (
	"context"
	"fmt"
	"net/url"

	"github.com/automationexercise/storefront-e2e/internal/browser"
	"github.com/automationexercise/storefront-e2e/internal/wait"
)

// Site bundles every page object over one driver
type Site struct {
	page

	Header         *HeaderPage
	Home           *HomePage
	Signup         *SignupPage
	AccountInfo    *AccountInfoPage
	AccountCreated *AccountCreatedPage
	AccountDeleted *AccountDeletedPage
	Login          *LoginPage
	Products       *ProductsPage
	Cart           *CartPage
	Checkout       *CheckoutPage
	Payment        *PaymentPage
	Contact        *ContactPage
	Footer         *FooterPage
}

// New builds the page objects for driver. Verifications poll with poller.
func New(driver browser.Driver, poller wait.Poller) *Site {
	p := page{driver: driver, poller: poller}
	return &Site{
		page:           p,
		Header:         &HeaderPage{p},
		Home:           &HomePage{p},
		Signup:         &SignupPage{p},
		AccountInfo:    &AccountInfoPage{p},
		AccountCreated: &AccountCreatedPage{p},
		AccountDeleted: &AccountDeletedPage{p},
		Login:          &LoginPage{p},
		Products:       &ProductsPage{p},
		Cart:           &CartPage{p},
		Checkout:       &CheckoutPage{p},
		Payment:        &PaymentPage{p},
		Contact:        &ContactPage{p},
		Footer:         &FooterPage{p},
	}
}

// Driver returns the driver the pages act on
func (s *Site) Driver() browser.Driver {
	return s.driver
}

// ExpectURL waits until the current URL contains fragment
func (s *Site) ExpectURL(fragment string) error {
	return s.expectURL(fragment)
}

// ExpectHome waits until the current URL is the site root
func (s *Site) ExpectHome() error {
	var got string
	err := s.poller.UntilDone(func(context.Context) (bool, error) {
		got = s.driver.URL()
		u, err := url.Parse(got)
		if err != nil {
			return false, err
		}
		return u.Host != "" && (u.Path == "" || u.Path == "/"), nil
	})
	if err != nil {
		return &AssertionError{Selector: "url", Want: "site root", Got: got, Err: err}
	}
	return nil
}

// page is the shared core of every page object
type page struct {
	driver browser.Driver
	poller wait.Poller
}

// expectVisible polls until selector is visible
func (p page) expectVisible(selector string) error {
	err := p.poller.UntilDone(func(context.Context) (bool, error) {
		return p.driver.IsVisible(selector)
	})
	if err != nil {
		return &AssertionError{Selector: selector, Want: "visible", Got: "hidden", Err: err}
	}
	return nil
}

// expectText polls until selector is visible and its text contains one of
// the accepted forms, ignoring case.
func (p page) expectText(selector string, accepted ...string) error {
	var got string
	err := p.poller.UntilDone(func(context.Context) (bool, error) {
		visible, err := p.driver.IsVisible(selector)
		if err != nil || !visible {
			got = ""
			return false, err
		}
		got, err = p.driver.Text(selector)
		if err != nil {
			return false, err
		}
		return containsAny(got, accepted...), nil
	})
	if err != nil {
		return &AssertionError{Selector: selector, Want: describeText(accepted), Got: got, Err: err}
	}
	return nil
}

// expectTextEquals polls until selector's whitespace-normalized text equals want
func (p page) expectTextEquals(selector, want string) error {
	var got string
	err := p.poller.UntilDone(func(context.Context) (bool, error) {
		text, err := p.driver.Text(selector)
		if err != nil {
			return false, err
		}
		got = normalize(text)
		return got == normalize(want), nil
	})
	if err != nil {
		return &AssertionError{Selector: selector, Want: fmt.Sprintf("text %q", want), Got: got, Err: err}
	}
	return nil
}

// expectCount polls until selector matches at least min elements
func (p page) expectCount(selector string, min int) error {
	var got int
	err := p.poller.UntilDone(func(context.Context) (bool, error) {
		n, err := p.driver.Count(selector)
		if err != nil {
			return false, err
		}
		got = n
		return n >= min, nil
	})
	if err != nil {
		return &AssertionError{Selector: selector, Want: fmt.Sprintf("at least %d matches", min), Got: fmt.Sprint(got), Err: err}
	}
	return nil
}

// expectURL polls until the current URL contains fragment
func (p page) expectURL(fragment string) error {
	var got string
	err := p.poller.UntilDone(func(context.Context) (bool, error) {
		got = p.driver.URL()
		return containsAny(got, fragment), nil
	})
	if err != nil {
		return &AssertionError{Selector: "url", Want: fmt.Sprintf("url containing %q", fragment), Got: got, Err: err}
	}
	return nil
}

// each runs steps in order and stops at the first error
func each(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

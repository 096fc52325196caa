package pages

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationexercise/storefront-e2e/internal/browser/browsertest"
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
	"github.com/automationexercise/storefront-e2e/internal/wait"
)

const testBaseURL = "https://shop.test"

func newSite(t *testing.T) (*Site, *browsertest.Driver) {
	t.Helper()
	driver := browsertest.New(testBaseURL)
	return New(driver, wait.New(30*time.Millisecond, 2*time.Millisecond)), driver
}

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		candidates []string
		want       bool
	}{
		{"exact", "Account Created!", []string{"Account Created!"}, true},
		{"case-insensitive", "ACCOUNT CREATED!", []string{"account created"}, true},
		{"collapses whitespace", "Logged in as\n   John   Doe", []string{"Logged in as John Doe"}, true},
		{"any candidate", "Thank you, order has been confirmed", []string{"Congratulations", "order has been confirmed"}, true},
		{"no match", "Order failed", []string{"Congratulations"}, false},
		{"empty candidates ignored", "anything", []string{""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsAny(tt.text, tt.candidates...))
		})
	}
}

func TestAssertionErrorUnwrap(t *testing.T) {
	site, driver := newSite(t)
	driver.Texts[sel.SignupFormTitle] = "Something else"

	err := site.Signup.VerifyFormTitle("New User Signup!")
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrAssertion))
	assert.True(t, errors.Is(err, wait.ErrTimeout))

	var aerr *AssertionError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, sel.SignupFormTitle, aerr.Selector)
	assert.Equal(t, "Something else", aerr.Got)
	assert.Contains(t, err.Error(), `"New User Signup!"`)
}

func TestExpectHome(t *testing.T) {
	site, driver := newSite(t)

	require.NoError(t, site.Header.NavigateToHome())
	assert.NoError(t, site.ExpectHome())

	driver.Current = testBaseURL + "/login"
	err := site.ExpectHome()
	assert.True(t, errors.Is(err, ErrAssertion))
	assert.NoError(t, site.ExpectURL("/login"))
}

func TestVerifyHomePageLoadedIsIdempotent(t *testing.T) {
	site, driver := newSite(t)

	for i := 0; i < 3; i++ {
		assert.NoError(t, site.Home.VerifyHomePageLoaded(), "attempt %d", i)
	}
	assert.Empty(t, driver.Actions(), "verification must not act on the page")

	driver.Hidden[sel.HomeSlider] = true
	for i := 0; i < 3; i++ {
		err := site.Home.VerifyHomePageLoaded()
		assert.True(t, errors.Is(err, ErrAssertion), "attempt %d", i)
	}
}

func TestHeaderLoggedInUser(t *testing.T) {
	site, driver := newSite(t)
	driver.Texts[sel.HeaderLoggedInUser] = "  Logged in as  Jane Roe "

	assert.NoError(t, site.Header.VerifyLoggedInUser("Jane Roe"))
	assert.Error(t, site.Header.VerifyLoggedInUser("John Doe"))

	text, err := site.Header.LoggedInUserText()
	require.NoError(t, err)
	assert.Equal(t, "Logged in as Jane Roe", text)

	loggedIn, err := site.Header.IsLoggedIn()
	require.NoError(t, err)
	assert.True(t, loggedIn)

	driver.Counts[sel.HeaderLogoutLink] = 0
	loggedIn, err = site.Header.IsLoggedIn()
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

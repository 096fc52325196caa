package pages

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationexercise/storefront-e2e/internal/browser/browsertest"
	"github.com/automationexercise/storefront-e2e/internal/models"
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
)

func fullProfile() models.UserProfile {
	return models.UserProfile{
		Title:         models.TitleMr,
		Name:          "John Doe",
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "john_1@test.com",
		Password:      "Secret123",
		DateOfBirth:   models.DateOfBirth{Day: "15", Month: "6", Year: "1990"},
		Newsletter:    true,
		SpecialOffers: true,
		Address: models.Address{
			Company:  "Acme",
			Address1: "1 Main St",
			Address2: "Suite 2",
			Country:  "United States",
			State:    "Ohio",
			City:     "Columbus",
			Zipcode:  "43004",
		},
		MobileNumber: "5551234567",
	}
}

func TestCompleteAccountInfoFormFull(t *testing.T) {
	site, driver := newSite(t)

	require.NoError(t, site.AccountInfo.CompleteAccountInfoForm(fullProfile()))

	want := []browsertest.Call{
		{Op: "check", Selector: sel.AccountTitleMr},
		{Op: "fill", Selector: sel.AccountPassword, Value: "Secret123"},
		{Op: "select", Selector: sel.AccountDays, Value: "15"},
		{Op: "select", Selector: sel.AccountMonths, Value: "6"},
		{Op: "select", Selector: sel.AccountYears, Value: "1990"},
		{Op: "check", Selector: sel.AccountNewsletter},
		{Op: "check", Selector: sel.AccountSpecialOffers},
		{Op: "fill", Selector: sel.AccountFirstName, Value: "John"},
		{Op: "fill", Selector: sel.AccountLastName, Value: "Doe"},
		{Op: "fill", Selector: sel.AccountCompany, Value: "Acme"},
		{Op: "fill", Selector: sel.AccountAddress1, Value: "1 Main St"},
		{Op: "fill", Selector: sel.AccountAddress2, Value: "Suite 2"},
		{Op: "select", Selector: sel.AccountCountry, Value: "United States"},
		{Op: "fill", Selector: sel.AccountState, Value: "Ohio"},
		{Op: "fill", Selector: sel.AccountCity, Value: "Columbus"},
		{Op: "fill", Selector: sel.AccountZipcode, Value: "43004"},
		{Op: "fill", Selector: sel.AccountMobileNumber, Value: "5551234567"},
		{Op: "click", Selector: sel.AccountCreateButton},
	}
	if diff := cmp.Diff(want, driver.Actions()); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteAccountInfoFormSkipsOmittedOptionalFields(t *testing.T) {
	site, driver := newSite(t)

	u := fullProfile()
	u.Title = ""
	u.DateOfBirth = models.DateOfBirth{}
	u.Newsletter = false
	u.SpecialOffers = false
	u.Company = ""
	u.Address2 = ""

	require.NoError(t, site.AccountInfo.CompleteAccountInfoForm(u))

	for _, untouched := range []string{
		sel.AccountTitleMr,
		sel.AccountTitleMrs,
		sel.AccountDays,
		sel.AccountMonths,
		sel.AccountYears,
		sel.AccountNewsletter,
		sel.AccountSpecialOffers,
		sel.AccountCompany,
		sel.AccountAddress2,
	} {
		assert.False(t, driver.Touched(untouched), "%s should not be touched", untouched)
	}

	actions := driver.Actions()
	require.NotEmpty(t, actions)
	assert.Equal(t, browsertest.Call{Op: "click", Selector: sel.AccountCreateButton}, actions[len(actions)-1])
}

func TestCompleteAccountInfoFormMrs(t *testing.T) {
	site, driver := newSite(t)

	u := fullProfile()
	u.Title = models.TitleMrs
	require.NoError(t, site.AccountInfo.CompleteAccountInfoForm(u))

	assert.True(t, driver.Touched(sel.AccountTitleMrs))
	assert.False(t, driver.Touched(sel.AccountTitleMr))
}

func TestCompleteAccountInfoFormRequiresFieldsBeforeTouchingThePage(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UserProfile)
		want   error
	}{
		{"password", func(u *models.UserProfile) { u.Password = "" }, models.ErrMissingField},
		{"first name", func(u *models.UserProfile) { u.FirstName = "" }, models.ErrMissingField},
		{"country", func(u *models.UserProfile) { u.Country = "" }, models.ErrMissingField},
		{"zipcode", func(u *models.UserProfile) { u.Zipcode = "" }, models.ErrMissingField},
		{"mobile", func(u *models.UserProfile) { u.MobileNumber = "" }, models.ErrMissingField},
		{"partial birth date", func(u *models.UserProfile) { u.DateOfBirth.Month = "" }, models.ErrMissingField},
		{"unknown title", func(u *models.UserProfile) { u.Title = "Dr" }, models.ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, driver := newSite(t)
			u := fullProfile()
			tt.mutate(&u)

			err := site.AccountInfo.CompleteAccountInfoForm(u)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Empty(t, driver.Calls)
		})
	}
}

func TestSelectTitleIgnoresCase(t *testing.T) {
	site, driver := newSite(t)

	require.NoError(t, site.AccountInfo.SelectTitle("mrs"))
	assert.True(t, driver.Touched(sel.AccountTitleMrs))

	err := site.AccountInfo.SelectTitle("Ms")
	assert.True(t, errors.Is(err, models.ErrInvalidField))
}

func TestAccountConfirmationTitles(t *testing.T) {
	site, driver := newSite(t)
	driver.Texts[sel.AccountCreatedTitle] = "ACCOUNT CREATED!"
	driver.Texts[sel.AccountDeletedTitle] = "ACCOUNT DELETED!"

	assert.NoError(t, site.AccountCreated.VerifyTitle("Account Created!"))
	assert.NoError(t, site.AccountDeleted.VerifyTitle("Account Deleted!"))
	assert.Error(t, site.AccountCreated.VerifyTitle("Account Deleted!"))
}

func TestCompleteSignupForm(t *testing.T) {
	site, driver := newSite(t)

	require.NoError(t, site.Signup.CompleteSignupForm("John Doe", "john_1@test.com"))
	want := []browsertest.Call{
		{Op: "fill", Selector: sel.SignupName, Value: "John Doe"},
		{Op: "fill", Selector: sel.SignupEmail, Value: "john_1@test.com"},
		{Op: "click", Selector: sel.SignupButton},
	}
	if diff := cmp.Diff(want, driver.Actions()); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}

	site, driver = newSite(t)
	assert.ErrorIs(t, site.Signup.CompleteSignupForm("", "john_1@test.com"), models.ErrMissingField)
	assert.ErrorIs(t, site.Signup.CompleteSignupForm("John", "not-an-email"), models.ErrInvalidField)
	assert.Empty(t, driver.Calls)
}

package pages

import (
	"fmt"
	"strings"

	"github.com/automationexercise/storefront-e2e/internal/models"
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
)

// AccountInfoPage is the "Enter Account Information" form at /signup
type AccountInfoPage struct{ page }

// SelectTitle checks the Mr or Mrs radio
func (a *AccountInfoPage) SelectTitle(title models.Title) error {
	switch {
	case strings.EqualFold(string(title), string(models.TitleMr)):
		return a.driver.Check(sel.AccountTitleMr)
	case strings.EqualFold(string(title), string(models.TitleMrs)):
		return a.driver.Check(sel.AccountTitleMrs)
	default:
		return fmt.Errorf("%w: title %q", models.ErrInvalidField, title)
	}
}

// FillPassword types the account password
func (a *AccountInfoPage) FillPassword(password string) error {
	return a.driver.Fill(sel.AccountPassword, password)
}

// SelectDateOfBirth picks day, month and year by option value
func (a *AccountInfoPage) SelectDateOfBirth(dob models.DateOfBirth) error {
	return each(
		func() error { return a.driver.Select(sel.AccountDays, dob.Day) },
		func() error { return a.driver.Select(sel.AccountMonths, dob.Month) },
		func() error { return a.driver.Select(sel.AccountYears, dob.Year) },
	)
}

// CheckNewsletter ticks the newsletter opt-in
func (a *AccountInfoPage) CheckNewsletter() error {
	return a.driver.Check(sel.AccountNewsletter)
}

// CheckSpecialOffers ticks the partner offers opt-in
func (a *AccountInfoPage) CheckSpecialOffers() error {
	return a.driver.Check(sel.AccountSpecialOffers)
}

// FillFirstName types the address first name
func (a *AccountInfoPage) FillFirstName(v string) error {
	return a.driver.Fill(sel.AccountFirstName, v)
}

// FillLastName types the address last name
func (a *AccountInfoPage) FillLastName(v string) error {
	return a.driver.Fill(sel.AccountLastName, v)
}

// FillCompany types the company line
func (a *AccountInfoPage) FillCompany(v string) error {
	return a.driver.Fill(sel.AccountCompany, v)
}

// FillAddress1 types the first street line
func (a *AccountInfoPage) FillAddress1(v string) error {
	return a.driver.Fill(sel.AccountAddress1, v)
}

// FillAddress2 types the second street line
func (a *AccountInfoPage) FillAddress2(v string) error {
	return a.driver.Fill(sel.AccountAddress2, v)
}

// SelectCountry picks the country by option value
func (a *AccountInfoPage) SelectCountry(v string) error {
	return a.driver.Select(sel.AccountCountry, v)
}

// FillState types the state
func (a *AccountInfoPage) FillState(v string) error {
	return a.driver.Fill(sel.AccountState, v)
}

// FillCity types the city
func (a *AccountInfoPage) FillCity(v string) error {
	return a.driver.Fill(sel.AccountCity, v)
}

// FillZipcode types the zip code
func (a *AccountInfoPage) FillZipcode(v string) error {
	return a.driver.Fill(sel.AccountZipcode, v)
}

// FillMobileNumber types the mobile number
func (a *AccountInfoPage) FillMobileNumber(v string) error {
	return a.driver.Fill(sel.AccountMobileNumber, v)
}

// ClickCreateAccount submits the account form
func (a *AccountInfoPage) ClickCreateAccount() error {
	return a.driver.Click(sel.AccountCreateButton)
}

// VerifyFormTitle waits for the form heading, e.g. "Enter Account Information"
func (a *AccountInfoPage) VerifyFormTitle(expected string) error {
	return a.expectText(sel.AccountFormTitle, expected)
}

// CompleteAccountInfoForm fills the form in page order and creates the
// account. Empty optional fields (title, date of birth, company, address2)
// and false flags are left untouched. The profile is validated before the
// first interaction so the form is never submitted with a required field
// unset.
func (a *AccountInfoPage) CompleteAccountInfoForm(u models.UserProfile) error {
	if err := u.Validate(); err != nil {
		return err
	}

	var steps []func() error
	optional := func(set bool, step func() error) {
		if set {
			steps = append(steps, step)
		}
	}

	optional(u.Title != "", func() error { return a.SelectTitle(u.Title) })
	steps = append(steps, func() error { return a.FillPassword(u.Password) })
	optional(!u.DateOfBirth.IsZero(), func() error { return a.SelectDateOfBirth(u.DateOfBirth) })
	optional(u.Newsletter, a.CheckNewsletter)
	optional(u.SpecialOffers, a.CheckSpecialOffers)
	steps = append(steps,
		func() error { return a.FillFirstName(u.FirstName) },
		func() error { return a.FillLastName(u.LastName) },
	)
	optional(u.Company != "", func() error { return a.FillCompany(u.Company) })
	steps = append(steps, func() error { return a.FillAddress1(u.Address1) })
	optional(u.Address2 != "", func() error { return a.FillAddress2(u.Address2) })
	steps = append(steps,
		func() error { return a.SelectCountry(u.Country) },
		func() error { return a.FillState(u.State) },
		func() error { return a.FillCity(u.City) },
		func() error { return a.FillZipcode(u.Zipcode) },
		func() error { return a.FillMobileNumber(u.MobileNumber) },
		a.ClickCreateAccount,
	)

	return each(steps...)
}

// AccountCreatedPage is /account_created
type AccountCreatedPage struct{ page }

// VerifyTitle waits for the "Account Created!" heading, ignoring case
func (a *AccountCreatedPage) VerifyTitle(expected string) error {
	return a.expectText(sel.AccountCreatedTitle, expected)
}

// ClickContinue leaves the confirmation for the home page
func (a *AccountCreatedPage) ClickContinue() error {
	return a.driver.Click(sel.ContinueButton)
}

// AccountDeletedPage is /delete_account
type AccountDeletedPage struct{ page }

// VerifyTitle waits for the "Account Deleted!" heading, ignoring case
func (a *AccountDeletedPage) VerifyTitle(expected string) error {
	return a.expectText(sel.AccountDeletedTitle, expected)
}

// ClickContinue leaves the confirmation for the home page
func (a *AccountDeletedPage) ClickContinue() error {
	return a.driver.Click(sel.ContinueButton)
}

package flows

import (
	"github.com/automationexercise/storefront-e2e/internal/models"
	"github.com/automationexercise/storefront-e2e/internal/testdata"
)

// registrant generates a fresh user with the fixture password, birth date
// and country.
func registrant(j *Journey, title models.Title, optIn bool) models.UserProfile {
	td := j.Fixtures.Register.TestData
	return j.Data.NewUserProfile(testdata.Options{
		Title:         title,
		Newsletter:    optIn,
		SpecialOffers: optIn,
		Password:      td.Password,
		DateOfBirth:   td.DateOfBirth,
		Country:       td.Address.Country,
	})
}

// RegisterUser is TC1: register with every field set, then delete the account.
func RegisterUser(j *Journey) error {
	return registerAndDelete(j, registrant(j, models.TitleMr, true))
}

// RegisterUserWithoutOptions registers with both opt-in checkboxes unset.
func RegisterUserWithoutOptions(j *Journey) error {
	return registerAndDelete(j, registrant(j, models.TitleMr, false))
}

// RegisterUserMrs registers with the Mrs title.
func RegisterUserMrs(j *Journey) error {
	return registerAndDelete(j, registrant(j, models.TitleMrs, true))
}

func registerAndDelete(j *Journey, u models.UserProfile) error {
	if err := verifyHome(j); err != nil {
		return err
	}
	acct, err := signUp(j, u)
	if err != nil {
		return err
	}
	return deleteAccountSteps(j, acct, j.Fixtures.Register.ExpectedMessages.AccountDeleted)
}

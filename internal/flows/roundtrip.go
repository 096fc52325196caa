package flows

import "github.com/automationexercise/storefront-e2e/internal/models"

// RegisterLoginRoundTrip registers a fully populated user, logs out, logs
// back in with the same credentials and checks the header shows the same
// name before deleting the account.
func RegisterLoginRoundTrip(j *Journey) error {
	site := j.Site
	u := registrant(j, models.TitleMr, true)

	if err := verifyHome(j); err != nil {
		return err
	}
	acct, err := signUp(j, u)
	if err != nil {
		return err
	}

	err = j.sequence(
		step("Click 'Logout' button", site.Header.ClickLogout),
		step("Verify 'Login to your account' is visible", verifyLoginPage(j)),
		step("Log in with the registered email and password", func() error {
			return site.Login.CompleteLoginForm(u.Email, u.Password)
		}),
		step("Verify the header shows the registered full name", all(
			site.ExpectHome,
			func() error { return site.Header.VerifyLoggedInUser(u.FullName()) },
		)),
	)
	if err != nil {
		return err
	}
	return deleteAccountSteps(j, acct, j.Fixtures.Register.ExpectedMessages.AccountDeleted)
}

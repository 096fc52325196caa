package flows

import (
	"strings"

	"github.com/automationexercise/storefront-e2e/internal/models"
	"github.com/automationexercise/storefront-e2e/internal/testdata"
)

// loginUser builds the minimal account the login cases register, named
// after the fixture's valid user.
func loginUser(j *Journey, emailBase string) models.UserProfile {
	users := j.Fixtures.Users
	u := users.MinimalAccount

	u.Name = users.ValidUser.Name
	u.FirstName, u.LastName = splitName(users.ValidUser.Name)
	u.Password = users.ValidUser.Password
	u.Email = testdata.UniqueEmail(emailBase, "test.com")
	return u
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "Test", "Test"
	case 1:
		return parts[0], "Test"
	default:
		return parts[0], parts[1]
	}
}

// verifyLoginPage checks the browser is on /login with the login form shown
func verifyLoginPage(j *Journey) func() error {
	site := j.Site
	return all(
		func() error { return site.ExpectURL("/login") },
		func() error { return site.Login.VerifyFormTitle(j.Fixtures.Users.ExpectedMessages.LoginTitle) },
	)
}

// LoginValidUser is TC2: log in with correct credentials and delete the account.
func LoginValidUser(j *Journey) error {
	site := j.Site
	u := loginUser(j, "login.test")

	if err := verifyHome(j); err != nil {
		return err
	}
	acct, err := signUp(j, u)
	if err != nil {
		return err
	}

	err = j.sequence(
		step("Click 'Logout' to start from a signed-out session", site.Header.ClickLogout),
		step("Verify 'Login to your account' is visible", verifyLoginPage(j)),
		step("Enter correct email address and password, click 'Login'", func() error {
			return site.Login.CompleteLoginForm(u.Email, u.Password)
		}),
		step("Verify that 'Logged in as username' is visible", all(
			site.ExpectHome,
			func() error { return site.Header.VerifyLoggedInUser(u.DisplayName()) },
		)),
	)
	if err != nil {
		return err
	}
	return deleteAccountSteps(j, acct, j.Fixtures.Users.ExpectedMessages.AccountDeleted)
}

// LoginInvalidUser is TC3: a never-registered email and password are
// rejected and the browser stays on /login.
func LoginInvalidUser(j *Journey) error {
	site := j.Site
	email := j.Data.FakeEmail()
	password := j.Data.Password()

	if err := verifyHome(j); err != nil {
		return err
	}
	return j.sequence(
		step("Click 'Signup / Login' button", site.Header.ClickSignupLogin),
		step("Verify 'Login to your account' is visible", verifyLoginPage(j)),
		step("Enter incorrect email address and password, click 'Login'", func() error {
			return site.Login.CompleteLoginForm(email, password)
		}),
		step("Verify error 'Your email or password is incorrect!' is visible", func() error {
			return site.Login.VerifyErrorMessage(j.Fixtures.Users.ExpectedMessages.LoginError)
		}),
		step("Verify the browser is still on the login page", func() error {
			return site.ExpectURL("/login")
		}),
	)
}

// LogoutUser is TC4: logging out returns to the login page.
func LogoutUser(j *Journey) error {
	site := j.Site
	u := loginUser(j, "logout.test")

	if err := verifyHome(j); err != nil {
		return err
	}
	acct, err := signUp(j, u)
	if err != nil {
		return err
	}

	return j.sequence(
		step("Click 'Logout' button", site.Header.ClickLogout),
		step("Verify that user is navigated to login page", verifyLoginPage(j)),
		step("Log back in and delete the account", func() error {
			return DeleteAccount(j, acct)
		}),
	)
}

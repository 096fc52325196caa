package flows

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/automationexercise/storefront-e2e/internal/models"
)

// Account is a shop account created by a flow
type Account struct {
	Profile models.UserProfile
	deleted bool
}

// Deleted reports whether the account is known to be gone
func (a *Account) Deleted() bool {
	return a.deleted
}

// verifyHome is the "home page is visible" step every case opens with
func verifyHome(j *Journey) error {
	site := j.Site
	return j.Step("Verify that home page is visible successfully", all(
		site.ExpectHome,
		site.Home.VerifyHomePageLoaded,
	))
}

// signUp registers u from the home page up to "Logged in as". Deleting the
// account is registered as cleanup once the signup form is accepted.
func signUp(j *Journey, u models.UserProfile) (*Account, error) {
	site := j.Site
	msgs := j.Fixtures.Register.ExpectedMessages
	acct := &Account{Profile: u}

	err := j.sequence(
		step("Click 'Signup / Login' button", site.Header.ClickSignupLogin),
		step("Verify 'New User Signup!' is visible", all(
			func() error { return site.ExpectURL("/login") },
			func() error { return site.Signup.VerifyFormTitle(msgs.NewUserSignup) },
		)),
		step("Enter name and email address, click 'Signup'", func() error {
			return site.Signup.CompleteSignupForm(u.DisplayName(), u.Email)
		}),
		step("Verify 'Enter Account Information' is visible", all(
			func() error { return site.ExpectURL("/signup") },
			func() error { return site.AccountInfo.VerifyFormTitle(msgs.EnterAccountInfo) },
		)),
	)
	if err != nil {
		return acct, err
	}

	j.Defer("delete account "+u.Email, func() error { return DeleteAccount(j, acct) })

	err = j.sequence(
		step("Fill account details and click 'Create Account'", func() error {
			return site.AccountInfo.CompleteAccountInfoForm(u)
		}),
		step("Verify 'Account Created!' is visible", all(
			func() error { return site.ExpectURL("/account_created") },
			func() error { return site.AccountCreated.VerifyTitle(msgs.AccountCreated) },
		)),
		step("Click 'Continue' button", site.AccountCreated.ClickContinue),
		step("Verify 'Logged in as "+u.DisplayName()+"' is visible", all(
			site.ExpectHome,
			func() error { return site.Header.VerifyLoggedInUser(u.DisplayName()) },
		)),
	)
	return acct, err
}

// deleteAccountSteps deletes the logged-in account as part of the case
func deleteAccountSteps(j *Journey, acct *Account, expected string) error {
	site := j.Site
	return j.sequence(
		step("Click 'Delete Account' button", site.Header.ClickDeleteAccount),
		step("Verify 'Account Deleted!' is visible", all(
			func() error { return site.ExpectURL("/delete_account") },
			func() error { return site.AccountDeleted.VerifyTitle(expected) },
			func() error {
				acct.deleted = true
				return nil
			},
		)),
		step("Click 'Continue' button", site.AccountDeleted.ClickContinue),
	)
}

// DeleteAccount makes sure acct no longer exists on the shop. It logs back
// in when the session was lost. A login rejected with the credential error
// means the account is already gone.
func DeleteAccount(j *Journey, acct *Account) error {
	if acct == nil || acct.deleted {
		return nil
	}
	site := j.Site

	if err := site.Header.NavigateToHome(); err != nil {
		return err
	}
	loggedIn, err := site.Header.IsLoggedIn()
	if err != nil {
		return err
	}
	if !loggedIn {
		gone, err := logBackIn(j, acct)
		if err != nil {
			return err
		}
		if gone {
			acct.deleted = true
			j.logger.Info("account already deleted", zap.String("email", acct.Profile.Email))
			return nil
		}
	}

	if err := site.Header.ClickDeleteAccount(); err != nil {
		return err
	}
	if err := site.AccountDeleted.VerifyTitle(j.Fixtures.Register.ExpectedMessages.AccountDeleted); err != nil {
		return err
	}
	acct.deleted = true
	j.logger.Info("account deleted", zap.String("email", acct.Profile.Email))
	return nil
}

// logBackIn submits acct's credentials and waits for either the header to
// show a session or the login form to reject them.
func logBackIn(j *Journey, acct *Account) (alreadyDeleted bool, err error) {
	site := j.Site
	if err := site.Driver().Navigate("/login"); err != nil {
		return false, err
	}
	if err := site.Login.CompleteLoginForm(acct.Profile.Email, acct.Profile.Password); err != nil {
		return false, err
	}

	rejected := strings.ToLower(j.Fixtures.Users.ExpectedMessages.LoginError)
	err = j.Poller.UntilDone(func(context.Context) (bool, error) {
		in, err := site.Header.IsLoggedIn()
		if err != nil || in {
			return in, err
		}
		text, err := site.Login.ErrorText()
		if err != nil {
			return false, err
		}
		if text != "" && strings.Contains(strings.ToLower(text), rejected) {
			alreadyDeleted = true
			return true, nil
		}
		return false, nil
	})
	return alreadyDeleted, err
}

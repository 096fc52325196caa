//go:build e2e

package e2e

import "testing"

// TestRegisterUser tests account registration
// Feature: Registration
//
//	As a visitor
//	I want to create an account
//	So that I can place orders
func TestRegisterUser(t *testing.T) {
	// Scenario: Register with every optional field
	//   Given I am on the home page
	//   When I sign up with a fresh email and complete the account form
	//   Then I should see "ACCOUNT CREATED!"
	//   And I should be logged in under my name
	//   When I delete my account
	//   Then I should see "ACCOUNT DELETED!"
	j := runCase(t, "TC1")

	steps := j.Steps()
	if last := steps[len(steps)-1].Label; last != "Click 'Continue' button" {
		t.Errorf("expected the script to end after account deletion, last step was %q", last)
	}
}

func TestRegisterUserWithoutOptions(t *testing.T) {
	// Scenario: Register leaving newsletter and offers unchecked
	//   Given I am on the home page
	//   When I sign up without ticking the optional checkboxes
	//   Then the account is still created and deleted
	runCase(t, "TC1-no-options")
}

func TestRegisterUserMrs(t *testing.T) {
	// Scenario: Register with the Mrs title
	runCase(t, "TC1-mrs")
}

// TestLoginValidUser tests signing in
// Feature: Login
//
//	As a registered customer
//	I want to sign in and out
//	So that my session is private
func TestLoginValidUser(t *testing.T) {
	// Scenario: Login with correct email and password
	//   Given a registered account
	//   When I log in with its credentials
	//   Then I should see "Logged in as <name>"
	runCase(t, "TC2")
}

func TestLoginInvalidUser(t *testing.T) {
	// Scenario: Login with an unknown email
	//   Given I am on the login page
	//   When I log in with an email that was never registered
	//   Then I should see "Your email or password is incorrect!"
	runCase(t, "TC3")
}

func TestLogoutUser(t *testing.T) {
	// Scenario: Logout
	//   Given I am logged in
	//   When I click "Logout"
	//   Then I should be back on the login page
	runCase(t, "TC4")
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	// Scenario: Register, log out, log back in, delete
	runCase(t, "ROUNDTRIP")
}

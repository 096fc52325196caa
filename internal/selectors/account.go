package selectors

// Signup form (first registration step on /login)
const (
	SignupName      = `[data-qa="signup-name"]`
	SignupEmail     = `[data-qa="signup-email"]`
	SignupButton    = `[data-qa="signup-button"]`
	SignupFormTitle = ".signup-form h2"
)

// Account information form (/signup)
const (
	AccountTitleMr       = "#id_gender1"
	AccountTitleMrs      = "#id_gender2"
	AccountPassword      = `[data-qa="password"]`
	AccountDays          = `[data-qa="days"]`
	AccountMonths        = `[data-qa="months"]`
	AccountYears         = `[data-qa="years"]`
	AccountNewsletter    = "#newsletter"
	AccountSpecialOffers = "#optin"
	AccountFirstName     = `[data-qa="first_name"]`
	AccountLastName      = `[data-qa="last_name"]`
	AccountCompany       = `[data-qa="company"]`
	AccountAddress1      = `[data-qa="address"]`
	AccountAddress2      = `[data-qa="address2"]`
	AccountCountry       = `[data-qa="country"]`
	AccountState         = `[data-qa="state"]`
	AccountCity          = `[data-qa="city"]`
	AccountZipcode       = `[data-qa="zipcode"]`
	AccountMobileNumber  = `[data-qa="mobile_number"]`
	AccountCreateButton  = `[data-qa="create-account"]`
	AccountFormTitle     = ".login-form h2 b"
)

// Account created / deleted confirmations
const (
	AccountCreatedTitle = `[data-qa="account-created"]`
	AccountDeletedTitle = `[data-qa="account-deleted"]`
	ContinueButton      = `[data-qa="continue-button"]`
)

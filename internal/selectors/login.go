package selectors

// Login form (/login)
const (
	LoginEmail        = `[data-qa="login-email"]`
	LoginPassword     = `[data-qa="login-password"]`
	LoginButton       = `[data-qa="login-button"]`
	LoginFormTitle    = ".login-form h2"
	LoginErrorMessage = ".login-form p"
)

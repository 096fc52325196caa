package selectors

// Contact us page (/contact_us)
const (
	ContactTitle          = ".contact-form h2.title"
	ContactName           = `[data-qa="name"]`
	ContactEmail          = `[data-qa="email"]`
	ContactSubject        = `[data-qa="subject"]`
	ContactMessage        = `[data-qa="message"]`
	ContactFileInput      = `#contact-us-form input[name="upload_file"]`
	ContactSubmitButton   = `[data-qa="submit-button"]`
	ContactSuccessMessage = ".status.alert.alert-success"
	ContactHomeButton     = ".contact-form .btn-success"
)

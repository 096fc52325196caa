package flows

import "github.com/automationexercise/storefront-e2e/internal/fixtures"

// ContactUs is TC6: submit the contact form with an attachment.
func ContactUs(j *Journey) error {
	site := j.Site
	tc := j.Fixtures.Contact.TestCase6

	if err := verifyHome(j); err != nil {
		return err
	}
	return j.sequence(
		step("Click on 'Contact Us' button", site.Header.ClickContactUs),
		step("Verify 'GET IN TOUCH' is visible", func() error {
			return site.Contact.VerifyTitleVisible(tc.ExpectedMessages.Title)
		}),
		step("Enter name, email, subject and message", func() error {
			return site.Contact.FillContactForm(tc.FormData)
		}),
		step("Upload file", func() error {
			file, err := fixtures.File(tc.Attachment)
			if err != nil {
				return err
			}
			return site.Contact.UploadFile(file)
		}),
		step("Click 'Submit' button", site.Contact.ClickSubmit),
		step("Click OK button", func() error {
			return site.Contact.VerifyDialogShown(tc.ExpectedMessages.Alert)
		}),
		step("Verify success message is visible", func() error {
			return site.Contact.VerifySuccessMessage(tc.ExpectedMessages.Success)
		}),
		step("Click 'Home' button and verify that landed to home page", all(
			site.Contact.ClickHomeButton,
			site.ExpectHome,
			site.Home.VerifyHomePageLoaded,
		)),
	)
}

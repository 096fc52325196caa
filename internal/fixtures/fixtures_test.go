package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "New User Signup!", set.Register.ExpectedMessages.NewUserSignup)
	assert.Equal(t, "United States", set.Register.TestData.Address.Country)
	assert.Equal(t, "1990", set.Register.TestData.DateOfBirth.Year)

	assert.Equal(t, "Your email or password is incorrect!", set.Users.ExpectedMessages.LoginError)
	assert.Equal(t, "Test Address", set.Users.MinimalAccount.Address1)

	order := set.Cart.TestCase15
	assert.Equal(t, "John", order.UserData.FirstName)
	assert.Equal(t, "123 Test Street", order.UserData.Address1)
	assert.NoError(t, order.PaymentData.Validate())
	assert.Equal(t, 5, order.ProductIndex)

	assert.Equal(t, "Success! Your details have been submitted successfully.", set.Contact.TestCase6.ExpectedMessages.Success)
	assert.NoError(t, set.Contact.TestCase6.FormData.Validate())

	assert.Equal(t, "Top", set.Products.SearchTerms[0])
}

func TestCartUserDataIsRegistrable(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	user := set.Cart.TestCase15.UserData
	user.Email = "johntest_1@test.com"
	assert.NoError(t, user.Validate())
	assert.Empty(t, user.Company, "TC15 leaves company unset")
	assert.Empty(t, user.Address2, "TC15 leaves address2 unset")
}

func TestFile(t *testing.T) {
	f, err := File("files/test_contact_us.txt")
	require.NoError(t, err)
	assert.Equal(t, "test_contact_us.txt", f.Name)
	assert.Equal(t, "text/plain", f.MimeType)
	assert.NotEmpty(t, f.Content)

	_, err = File("files/missing.txt")
	assert.Error(t, err)
}

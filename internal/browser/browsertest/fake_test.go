package browsertest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigateResolvesAgainstBaseURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{name: "root", base: "https://shop.test", path: "/", want: "https://shop.test/"},
		{name: "relative", base: "https://shop.test", path: "login", want: "https://shop.test/login"},
		{name: "trailing slash base", base: "https://shop.test/", path: "/products", want: "https://shop.test/products"},
		{name: "absolute", base: "https://shop.test", path: "http://other.test/x", want: "http://other.test/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.base)
			require.NoError(t, d.Navigate(tt.path))
			assert.Equal(t, tt.want, d.URL())
		})
	}
}

func TestNavigationsFollowClicks(t *testing.T) {
	d := New("https://shop.test")
	d.Navigations["click #login"] = []string{"/login", "/account"}

	require.NoError(t, d.Click("#login"))
	assert.Equal(t, "https://shop.test/login", d.URL())
	require.NoError(t, d.Click("#login"))
	assert.Equal(t, "https://shop.test/account", d.URL())
	require.NoError(t, d.Click("#login"))
	assert.Equal(t, "https://shop.test/account", d.URL())
}

func TestErrorsFailMatchingCall(t *testing.T) {
	d := New("https://shop.test")
	boom := errors.New("detached")
	d.Errors["click #pay"] = boom

	assert.ErrorIs(t, d.Click("#pay"), boom)
	assert.NoError(t, d.Click("#other"))
	assert.True(t, d.Touched("#pay"))
}

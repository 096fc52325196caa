// Package fixtures exposes the static expected strings and seed data the
// flows assert against.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"github.com/automationexercise/storefront-e2e/internal/browser"
	"github.com/automationexercise/storefront-e2e/internal/models"
)

//go:embed data
var dataFS embed.FS

// RegisterMessages are the headings seen along the registration flow
type RegisterMessages struct {
	NewUserSignup    string `json:"newUserSignup"`
	EnterAccountInfo string `json:"enterAccountInfo"`
	AccountCreated   string `json:"accountCreated"`
	AccountDeleted   string `json:"accountDeleted"`
}

// Register is register.json
type Register struct {
	TestData struct {
		Password    string             `json:"password"`
		DateOfBirth models.DateOfBirth `json:"dateOfBirth"`
		Address     struct {
			Country string `json:"country"`
		} `json:"address"`
	} `json:"testData"`
	ExpectedMessages RegisterMessages `json:"expectedMessages"`
}

// Credentials is a name/password pair used for login cases
type Credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Users is users.json
type Users struct {
	ValidUser Credentials `json:"validUser"`
	// MinimalAccount supplies the account form for login cases; names,
	// email and password come from ValidUser and a fresh unique email.
	MinimalAccount   models.UserProfile `json:"minimalAccount"`
	ExpectedMessages struct {
		LoginTitle     string `json:"loginTitle"`
		LoginError     string `json:"loginError"`
		AccountDeleted string `json:"accountDeleted"`
	} `json:"expectedMessages"`
}

// PlaceOrder is the TC15 block of cart.json
type PlaceOrder struct {
	UserData         models.UserProfile    `json:"userData"`
	ProductIndex     int                   `json:"productIndex"`
	CheckoutComment  string                `json:"checkoutComment"`
	PaymentData      models.PaymentDetails `json:"paymentData"`
	ExpectedMessages struct {
		AccountCreated string `json:"accountCreated"`
		OrderPlaced    string `json:"orderPlaced"`
		OrderSuccess   string `json:"orderSuccess"`
		AccountDeleted string `json:"accountDeleted"`
	} `json:"expectedMessages"`
}

// Cart is cart.json
type Cart struct {
	TestCase15 PlaceOrder `json:"testCase15"`
}

// ContactCase is the TC6 block of contact.json
type ContactCase struct {
	FormData         models.ContactMessage `json:"formData"`
	Attachment       string                `json:"attachment"`
	ExpectedMessages struct {
		Title   string `json:"title"`
		Alert   string `json:"alert"`
		Success string `json:"success"`
	} `json:"expectedMessages"`
}

// Contact is contact.json
type Contact struct {
	TestCase6 ContactCase `json:"testCase6"`
}

// Products is products.json
type Products struct {
	SearchTerms        []string `json:"searchTerms"`
	DetailProductIndex int      `json:"detailProductIndex"`
}

// Set is every fixture file, loaded once per suite
type Set struct {
	Register Register
	Users    Users
	Cart     Cart
	Contact  Contact
	Products Products
}

// Load parses all embedded fixture files
func Load() (*Set, error) {
	var set Set
	files := []struct {
		name string
		dst  any
	}{
		{"register.json", &set.Register},
		{"users.json", &set.Users},
		{"cart.json", &set.Cart},
		{"contact.json", &set.Contact},
		{"products.json", &set.Products},
	}

	for _, f := range files {
		if err := decode(f.name, f.dst); err != nil {
			return nil, err
		}
	}

	if len(set.Products.SearchTerms) == 0 {
		return nil, fmt.Errorf("products.json: searchTerms is empty")
	}
	return &set, nil
}

func decode(name string, dst any) error {
	data, err := dataFS.ReadFile(path.Join("data", name))
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}

// File returns an embedded file fixture as an upload, e.g. "files/test_contact_us.txt"
func File(name string) (browser.File, error) {
	data, err := dataFS.ReadFile(path.Join("data", name))
	if err != nil {
		return browser.File{}, fmt.Errorf("read file fixture %s: %w", name, err)
	}
	return browser.File{
		Name:     path.Base(name),
		MimeType: "text/plain",
		Content:  data,
	}, nil
}

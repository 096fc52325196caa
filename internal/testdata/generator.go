// Package testdata generates randomized input for the shop's forms.
package testdata

import (
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/automationexercise/storefront-e2e/internal/models"
	"github.com/brianvoe/gofakeit/v7"
)

// DefaultCountry is the country every generated address uses. The shop's
// country select only offers a handful of values.
const DefaultCountry = "United States"

var emailSeq atomic.Uint64

var nonLocal = regexp.MustCompile(`[^a-z0-9._-]+`)

// UniqueEmail mints "<base>_<millis>_<seq>@<domain>". The sequence number is
// process wide, so two calls never collide even within one millisecond.
func UniqueEmail(base, domain string) string {
	base = strings.Trim(nonLocal.ReplaceAllString(strings.ToLower(base), ""), "._-")
	if base == "" {
		base = "user"
	}
	if domain == "" {
		domain = "test.com"
	}
	return fmt.Sprintf("%s_%d_%d@%s", base, time.Now().UnixMilli(), emailSeq.Add(1), domain)
}

// Generator produces fake data from one gofakeit source
type Generator struct {
	faker *gofakeit.Faker
}

// New returns a generator. A zero seed draws a random one.
func New(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Options tunes NewUserProfile
type Options struct {
	Title         models.Title
	Newsletter    bool
	SpecialOffers bool
	Password      string
	DateOfBirth   models.DateOfBirth
	Country       string
}

// NewUserProfile builds a complete profile with a unique email
func (g *Generator) NewUserProfile(opts Options) models.UserProfile {
	first := g.faker.FirstName()
	last := g.faker.LastName()

	password := opts.Password
	if password == "" {
		password = g.Password()
	}
	dob := opts.DateOfBirth
	if dob.IsZero() {
		dob = g.NewDateOfBirth(18, 80)
	}
	title := opts.Title
	if title == "" {
		title = models.TitleMr
	}

	address := g.NewAddress()
	if opts.Country != "" {
		address.Country = opts.Country
	}
	address.Company = g.CompanyName()

	profile := models.UserProfile{
		Title:         title,
		FirstName:     first,
		LastName:      last,
		Password:      password,
		DateOfBirth:   dob,
		Newsletter:    opts.Newsletter,
		SpecialOffers: opts.SpecialOffers,
		Address:       address,
		MobileNumber:  g.faker.Numerify("## ########"),
	}
	profile.Name = profile.FullName()
	profile.Email = UniqueEmail(strings.ToLower(first+"."+last), "test.com")
	return profile
}

// NewAddress builds a US address without a company
func (g *Generator) NewAddress() models.Address {
	return models.Address{
		Address1: g.faker.Street(),
		Address2: g.faker.Numerify("Apt. ###"),
		City:     g.faker.City(),
		State:    g.faker.State(),
		Zipcode:  g.faker.Numerify("#####"),
		Country:  DefaultCountry,
	}
}

// NewDateOfBirth returns a birth date for someone between minAge and maxAge
func (g *Generator) NewDateOfBirth(minAge, maxAge int) models.DateOfBirth {
	now := time.Now()
	earliest := now.AddDate(-maxAge, 0, 0)
	latest := now.AddDate(-minAge, 0, 0)
	d := g.faker.DateRange(earliest, latest)

	return models.DateOfBirth{
		Day:   fmt.Sprint(d.Day()),
		Month: fmt.Sprint(int(d.Month())),
		Year:  fmt.Sprint(d.Year()),
	}
}

// NewPaymentDetails returns a Visa-shaped card expiring in the future
func (g *Generator) NewPaymentDetails() models.PaymentDetails {
	year := time.Now().Year() + g.faker.Number(1, 5)
	return models.PaymentDetails{
		NameOnCard:  g.faker.FirstName() + " " + g.faker.LastName(),
		CardNumber:  g.faker.CreditCardNumber(&gofakeit.CreditCardOptions{Types: []string{"visa"}}),
		CVC:         g.faker.Numerify("###"),
		ExpiryMonth: fmt.Sprintf("%02d", g.faker.Number(1, 12)),
		ExpiryYear:  fmt.Sprint(year),
	}
}

// NewContactMessage fills every contact form field
func (g *Generator) NewContactMessage() models.ContactMessage {
	return models.ContactMessage{
		Name:    g.faker.FirstName() + " " + g.faker.LastName(),
		Email:   g.FakeEmail(),
		Subject: g.faker.LoremIpsumSentence(4),
		Message: g.RandomText(3),
	}
}

// FakeEmail returns a plausible address that was never registered
func (g *Generator) FakeEmail() string {
	return UniqueEmail(g.faker.Username(), "example.com")
}

// Password returns a 10 character alphanumeric password
func (g *Generator) Password() string {
	return g.faker.Password(true, true, true, false, false, 10)
}

// CompanyName returns a company name
func (g *Generator) CompanyName() string {
	return g.faker.Company()
}

// RandomText returns the given number of lorem sentences
func (g *Generator) RandomText(sentences int) string {
	parts := make([]string, 0, sentences)
	for i := 0; i < sentences; i++ {
		parts = append(parts, g.faker.LoremIpsumSentence(8))
	}
	return strings.Join(parts, " ")
}

// RandomNumber returns an int in [min, max]
func (g *Generator) RandomNumber(min, max int) int {
	return g.faker.Number(min, max)
}

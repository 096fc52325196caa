package models

import "strings"

// Title is the salutation radio on the account form
type Title string

// Titles offered by the account form
const (
	TitleMr  Title = "Mr"
	TitleMrs Title = "Mrs"
)

// DateOfBirth holds the three select values of the birth date. Either all
// three are set or none.
type DateOfBirth struct {
	Day   string `json:"day" validate:"required_with=Month Year,omitempty,numeric"`
	Month string `json:"month" validate:"required_with=Day Year,omitempty,numeric"`
	Year  string `json:"year" validate:"required_with=Day Month,omitempty,numeric,len=4"`
}

// IsZero reports whether no part of the date is set
func (d DateOfBirth) IsZero() bool {
	return d.Day == "" && d.Month == "" && d.Year == ""
}

// Address is the postal part of a profile
type Address struct {
	Company  string `json:"company,omitempty"`
	Address1 string `json:"address1" validate:"required"`
	Address2 string `json:"address2,omitempty"`
	Country  string `json:"country" validate:"required"`
	State    string `json:"state" validate:"required"`
	City     string `json:"city" validate:"required"`
	Zipcode  string `json:"zipcode" validate:"required"`
}

// UserProfile is a throwaway shop account. Empty optional fields are left
// untouched on the form rather than defaulted.
type UserProfile struct {
	Title         Title       `json:"title,omitempty" validate:"omitempty,oneof=Mr Mrs"`
	Name          string      `json:"name,omitempty"`
	FirstName     string      `json:"firstName" validate:"required"`
	LastName      string      `json:"lastName" validate:"required"`
	Email         string      `json:"email,omitempty" validate:"omitempty,email"`
	Password      string      `json:"password" validate:"required"`
	DateOfBirth   DateOfBirth `json:"dateOfBirth"`
	Newsletter    bool        `json:"newsletter,omitempty"`
	SpecialOffers bool        `json:"specialOffers,omitempty"`
	Address
	MobileNumber string `json:"mobileNumber" validate:"required"`
}

// FullName returns "First Last"
func (u UserProfile) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// DisplayName is the name the header shows once logged in, which is the
// name typed into the signup form.
func (u UserProfile) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.FullName()
}

// AddressName is how checkout renders the addressee, e.g. "Mr. John Doe"
func (u UserProfile) AddressName() string {
	if u.Title == "" {
		return u.FullName()
	}
	return string(u.Title) + ". " + u.FullName()
}

// CityLine is how checkout renders city, state and zipcode on one line
func (u UserProfile) CityLine() string {
	return strings.Join(strings.Fields(u.City+" "+u.State+" "+u.Zipcode), " ")
}

// Validate checks that every field the account form requires is present
func (u UserProfile) Validate() error {
	return check(u)
}

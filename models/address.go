package models

import (
	"regexp"
	"strings"
	"time"
)

type Address struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2"`
	ZipCode      string    `json:"zip_code"`
	District     string    `json:"district"`
	PhoneNumber  string    `json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
}

type AddressRequest struct {
	FirstName    string `json:"first_name" form:"first_name"`
	LastName     string `json:"last_name" form:"last_name"`
	Email        string `json:"email" form:"email"`
	AddressLine1 string `json:"address_line1" form:"address_line1"`
	AddressLine2 string `json:"address_line2" form:"address_line2"`
	ZipCode      string `json:"zip_code" form:"zip_code"`
	District     string `json:"district" form:"district"`
	PhoneNumber  string `json:"phone_number" form:"phone_number"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate returns per-field error messages. An empty map means the
// request is acceptable. address_line2 is optional.
func (r *AddressRequest) Validate() map[string]string {
	errs := map[string]string{}

	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.AddressLine1 = strings.TrimSpace(r.AddressLine1)
	r.AddressLine2 = strings.TrimSpace(r.AddressLine2)
	r.ZipCode = strings.TrimSpace(r.ZipCode)
	r.District = strings.TrimSpace(r.District)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)

	if r.FirstName == "" {
		errs["first_name"] = "First name is required"
	}
	if r.LastName == "" {
		errs["last_name"] = "Last name is required"
	}
	if r.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(r.Email) {
		errs["email"] = "Invalid email address"
	}
	if r.AddressLine1 == "" {
		errs["address_line1"] = "Address line 1 is required"
	}
	if r.ZipCode == "" {
		errs["zip_code"] = "Zip code is required"
	}
	if r.District == "" {
		errs["district"] = "District is required"
	}
	if r.PhoneNumber == "" {
		errs["phone_number"] = "Phone number is required"
	}

	return errs
}

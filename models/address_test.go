package models

import "testing"

func validAddressRequest() AddressRequest {
	return AddressRequest{
		FirstName:    "Ana",
		LastName:     "Lima",
		Email:        "ana@example.com",
		AddressLine1: "12 Harbour Street",
		ZipCode:      "20100",
		District:     "Centro",
		PhoneNumber:  "+55 21 99999 0000",
	}
}

func TestAddressRequestValidateAccepts(t *testing.T) {
	req := validAddressRequest()
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestAddressRequestValidateLine2Optional(t *testing.T) {
	req := validAddressRequest()
	req.AddressLine2 = ""
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("address_line2 should be optional, got %v", errs)
	}
}

func TestAddressRequestValidateRequiredFields(t *testing.T) {
	req := AddressRequest{}
	errs := req.Validate()

	for _, field := range []string{
		"first_name", "last_name", "email",
		"address_line1", "zip_code", "district", "phone_number",
	} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for missing %s", field)
		}
	}
	if _, ok := errs["address_line2"]; ok {
		t.Error("address_line2 must not be required")
	}
}

func TestAddressRequestValidateBadEmail(t *testing.T) {
	for _, email := range []string{"plainaddress", "no@tld", "two words@example.com"} {
		req := validAddressRequest()
		req.Email = email
		errs := req.Validate()
		if _, ok := errs["email"]; !ok {
			t.Errorf("expected email error for %q", email)
		}
	}
}

func TestAddressRequestValidateTrimsWhitespace(t *testing.T) {
	req := validAddressRequest()
	req.FirstName = "  Ana  "
	req.Email = " ana@example.com "
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors after trimming, got %v", errs)
	}
	if req.FirstName != "Ana" {
		t.Errorf("expected trimmed first name, got %q", req.FirstName)
	}
	if req.Email != "ana@example.com" {
		t.Errorf("expected trimmed email, got %q", req.Email)
	}
}

func TestAddressRequestValidateWhitespaceOnlyIsEmpty(t *testing.T) {
	req := validAddressRequest()
	req.District = "   "
	errs := req.Validate()
	if _, ok := errs["district"]; !ok {
		t.Error("whitespace-only district should count as missing")
	}
}

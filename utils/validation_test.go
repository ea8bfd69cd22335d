package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"budi@example.com",
		"front.desk@barbershop.co.id",
		"a@b.cd",
	}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{
		"",
		"no-at-sign",
		"two@@example.com",
		"spaces in@example.com",
		"missing-tld@example",
		"@example.com",
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"081234567890",
		"+6281234567890",
		"0812-3456-7890",
		"(0812) 3456 7890",
	}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = false, want true", phone)
		}
	}

	invalid := []string{
		"",
		"12345",
		"abc123456789",
		"++6281234567890",
	}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = true, want false", phone)
		}
	}
}

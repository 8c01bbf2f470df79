package models

import (
	"fmt"
	"strings"
	"unicode"

	"pcos/config"
)

// ValidateStudentEmail checks the campus email rules: an "@" is required and
// the domain must be the configured campus domain.
func ValidateStudentEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email %q", email)
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	campus := config.AppConfig.CampusEmailDomain
	if campus == "" {
		campus = "picos.edu"
	}
	if !strings.EqualFold(domain, campus) {
		return fmt.Errorf("invalid email domain %q, expected %s", domain, campus)
	}
	return nil
}

// ValidateStudentID checks the campus ID format: exactly 15 characters,
// "PCOS" prefix, four dash-separated parts, a fixed "01" code part and a
// four-digit serial, e.g. "PCOS-01-01-0001".
func ValidateStudentID(id string) error {
	if id == "" || len(id) != 15 || !strings.HasPrefix(id, "PCOS") {
		return fmt.Errorf("invalid student ID %q", id)
	}
	parts := strings.Split(id, "-")
	if len(parts) != 4 {
		return fmt.Errorf("invalid student ID format %q", id)
	}
	codePart, numberPart := parts[2], parts[3]
	if codePart != "01" {
		return fmt.Errorf("invalid code part %q in student ID", codePart)
	}
	if len(numberPart) != 4 || !isDigits(numberPart) {
		return fmt.Errorf("invalid number part %q in student ID", numberPart)
	}
	return nil
}

// ValidateCourseCode checks the catalog code format: six characters, three
// uppercase letters followed by three digits, e.g. "CSE101".
func ValidateCourseCode(code string) error {
	if len(code) != 6 {
		return fmt.Errorf("invalid course code length for %q", code)
	}
	prefix, number := code[:3], code[3:]
	for _, r := range prefix {
		if !unicode.IsUpper(r) || !unicode.IsLetter(r) {
			return fmt.Errorf("invalid course code prefix %q", prefix)
		}
	}
	if !isDigits(number) {
		return fmt.Errorf("invalid course code number %q", number)
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

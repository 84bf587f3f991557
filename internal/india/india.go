// Package india holds India-specific validation and formatting helpers used
// by registration and blood-card forms.
package india

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PhonePrefix is the country calling code prepended to formatted numbers.
const PhonePrefix = "+91"

var (
	mobileRe  = regexp.MustCompile(`^[6-9]\d{9}$`)
	aadhaarRe = regexp.MustCompile(`^\d{12}$`)
	pincodeRe = regexp.MustCompile(`^[1-9]\d{5}$`)
	digitsRe  = regexp.MustCompile(`\D`)
)

// stripNonDigits removes everything except 0-9.
func stripNonDigits(s string) string {
	return digitsRe.ReplaceAllString(s, "")
}

// ValidPhone reports whether phone contains a valid 10-digit Indian mobile
// number (starting 6-9). Separators and a +91 prefix are ignored.
func ValidPhone(phone string) bool {
	cleaned := stripNonDigits(phone)
	cleaned = strings.TrimPrefix(cleaned, "91")
	return mobileRe.MatchString(cleaned)
}

// FormatPhone renders a 10-digit number as "+91-XXXXXXXXXX". Input that is
// not a plain 10-digit number is returned unchanged.
func FormatPhone(phone string) string {
	cleaned := stripNonDigits(phone)
	if len(cleaned) == 10 {
		return PhonePrefix + "-" + cleaned
	}
	return phone
}

// ValidAadhaar reports whether aadhaar contains exactly 12 digits
// (separators ignored).
func ValidAadhaar(aadhaar string) bool {
	return aadhaarRe.MatchString(stripNonDigits(aadhaar))
}

// MaskAadhaar hides all but the last four digits: "XXXX-XXXX-1234".
// Invalid input is returned unchanged.
func MaskAadhaar(aadhaar string) string {
	cleaned := stripNonDigits(aadhaar)
	if len(cleaned) == 12 {
		return "XXXX-XXXX-" + cleaned[8:]
	}
	return aadhaar
}

// ValidPincode reports whether s is a six-digit Indian postal code.
func ValidPincode(s string) bool {
	return pincodeRe.MatchString(strings.TrimSpace(s))
}

// FormatDate renders t in the dd/mm/yyyy convention used across the UI.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

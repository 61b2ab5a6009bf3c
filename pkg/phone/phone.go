// Package phone formats Nigerian mobile numbers for the contact channels a
// provider profile exposes: WhatsApp deep links, dialer links and validation.
package phone

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	countryCode     = "234"
	whatsAppBaseURL = "https://wa.me/"
)

// Pattern is the accepted shape of a phone or WhatsApp field: one of the
// +234, 234 or 0 prefixes, a 7/8/9 network digit, a 0/1 digit, then 8 digits.
var Pattern = regexp.MustCompile(`^(\+234|234|0)[789][01]\d{8}$`)

var nonDigits = regexp.MustCompile(`\D`)

// IsValid reports whether raw matches Pattern exactly.
func IsValid(raw string) bool {
	return Pattern.MatchString(raw)
}

// Normalize converts any accepted representation into the international
// digit string (234XXXXXXXXXX). Unrecognised input is returned as its
// digits only. It never fails; an empty input yields "".
func Normalize(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")

	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, countryCode):
		return digits
	case strings.HasPrefix(digits, "0"):
		return countryCode + digits[1:]
	case len(digits) == 10:
		return countryCode + digits
	default:
		return digits
	}
}

// WhatsAppURL builds a wa.me deep link, optionally with a pre-filled message.
func WhatsAppURL(raw, message string) string {
	link := whatsAppBaseURL + Normalize(raw)
	if message == "" {
		return link
	}
	return link + "?text=" + encodeComponent(message)
}

// TelURL builds a dialer link using the same normalization as WhatsAppURL.
func TelURL(raw string) string {
	normalized := Normalize(raw)
	if normalized == "" {
		return ""
	}
	return "tel:+" + normalized
}

// MailtoURL builds an email client link, or "" when no email is set.
func MailtoURL(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return (&url.URL{Scheme: "mailto", Opaque: email}).String()
}

// encodeComponent percent-encodes like a browser's encodeURIComponent:
// spaces become %20 rather than the form-encoding "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

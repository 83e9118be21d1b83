package answer

import "regexp"

// Redaction markers substituted for PII-shaped substrings.
const (
	RedactedEmail = "[redacted email]"
	RedactedPhone = "[redacted phone]"
)

var (
	emailRE    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRE    = regexp.MustCompile(`(?:\+?\d{1,3}[\s-]?)?(?:\(?\d{2,4}\)?[\s-]?)?\d{3,4}[\s-]?\d{3,4}`)
	nonDigitRE = regexp.MustCompile(`\D`)
)

// SanitizeText masks email-shaped substrings and phone-shaped substrings in
// free text. A phone match is only redacted when it carries at least 7
// digits; shorter digit runs (ticket numbers, short codes) pass through.
func SanitizeText(text string) string {
	if text == "" {
		return text
	}
	masked := emailRE.ReplaceAllString(text, RedactedEmail)
	masked = phoneRE.ReplaceAllStringFunc(masked, func(m string) string {
		if len(nonDigitRE.ReplaceAllString(m, "")) >= 7 {
			return RedactedPhone
		}
		return m
	})
	return masked
}

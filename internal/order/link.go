package order

import (
	"net/url"
	"strings"
)

const whatsAppBaseURL = "https://wa.me/"

// CleanPhone keeps the ASCII digits of phone in their original order.
func CleanPhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// DeepLink builds https://wa.me/<digits>?text=<message>. The phone number
// is not checked for plausibility, an empty one yields https://wa.me/?text=...
func DeepLink(phone, message string) string {
	return whatsAppBaseURL + CleanPhone(phone) + "?text=" + encodeQueryValue(message)
}

// QueryEscape output is rewritten to encodeURIComponent's: spaces as %20 and
// !'()* left as they are.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeQueryValue(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

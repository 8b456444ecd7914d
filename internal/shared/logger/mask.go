package logger

import "strings"

// MaskEmail keeps the first character of the local part and the domain
// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "***@***"
	}

	local, domain := email[:at], email[at+1:]
	if local == "" {
		return "***@" + domain
	}

	return local[:1] + "***@" + domain
}

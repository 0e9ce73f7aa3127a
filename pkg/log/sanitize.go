package log

import (
	"strings"
)

var sensitiveKeywords = []string{
	"password", "passwd", "pwd",
	"token", "access_token", "refresh_token",
	"secret", "authorization", "credential",
	"api_key", "apikey",
}

// SanitizeField masks the value when the key names credential material.
// Emails keep enough shape to be recognizable; secrets keep only their
// first and last characters.
func SanitizeField(key, value string) string {
	if value == "" {
		return value
	}

	lowerKey := strings.ToLower(key)

	if strings.Contains(lowerKey, "email") || strings.Contains(lowerKey, "mail") {
		return sanitizeEmail(value)
	}

	for _, keyword := range sensitiveKeywords {
		if strings.Contains(lowerKey, keyword) {
			return sanitizeSecret(value)
		}
	}

	return value
}

// sanitizeSecret keeps the first 4 and last 4 characters of long values;
// short values keep only their first and last character.
func sanitizeSecret(value string) string {
	if len(value) <= 8 {
		if len(value) <= 2 {
			return strings.Repeat("*", len(value))
		}
		return string(value[0]) + strings.Repeat("*", len(value)-2) + string(value[len(value)-1])
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}

// sanitizeEmail keeps up to 3 leading characters of the local part plus
// the full domain.
func sanitizeEmail(value string) string {
	parts := strings.Split(value, "@")
	if len(parts) != 2 {
		return strings.Repeat("*", len(value))
	}

	local, domain := parts[0], parts[1]
	if len(local) <= 3 {
		if len(local) == 0 {
			return "@" + domain
		}
		return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + domain
	}
	return local[:3] + "***@" + domain
}

package validation

import "strings"

// Storage enum values for a user's access level.
const (
	AccessLevelUser        = "user"
	AccessLevelManager     = "manager"
	AccessLevelClientAdmin = "client_admin"
)

// accessLevelAliases maps the human labels operators type into the CSV
// to storage enum values. Keys are lower-case trimmed.
var accessLevelAliases = map[string]string{
	"user":          AccessLevelUser,
	"standard user": AccessLevelUser,
	"member":        AccessLevelUser,
	"manager":       AccessLevelManager,
	"admin":         AccessLevelClientAdmin,
	"administrator": AccessLevelClientAdmin,
	"client admin":  AccessLevelClientAdmin,
	"client_admin":  AccessLevelClientAdmin,
}

// AccessLevel normalizes a raw access-level value. Empty input silently
// takes the fallback; an unmapped value takes the fallback too but
// reports warned=true so the row collects a warning.
func AccessLevel(raw, fallback string) (level string, warned bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return fallback, false
	}
	if mapped, ok := accessLevelAliases[value]; ok {
		return mapped, false
	}
	return fallback, true
}

package services

import "strings"

// maxRawMessageLen caps how much of an unrecognized backend error is
// surfaced to the operator.
const maxRawMessageLen = 100

type translationRule struct {
	patterns []string
	message  string
}

// translationRules is an ordered, prioritized list: the first rule with
// a matching pattern wins. Keep it a table so it stays auditable.
var translationRules = []translationRule{
	{
		patterns: []string{"duplicate key", "already exists", "already registered"},
		message:  "A user with this email address already exists",
	},
	{
		patterns: []string{"invalid email", "email format"},
		message:  "The email address is not valid",
	},
	{
		patterns: []string{"password"},
		message:  "The password does not meet the security requirements",
	},
	{
		patterns: []string{"profile"},
		message:  "The account was created but the profile could not be saved",
	},
	{
		patterns: []string{"database", "sqlstate"},
		message:  "A database error occurred while saving the record",
	},
	{
		patterns: []string{"email is required", "missing email"},
		message:  "An email address is required",
	},
	{
		patterns: []string{"network", "connection refused", "no such host", "fetch failed"},
		message:  "A network error occurred while contacting the data service",
	},
	{
		patterns: []string{"timeout", "deadline exceeded", "timed out"},
		message:  "The request timed out, please try again",
	},
	{
		patterns: []string{"edge function"},
		message:  "The data service reported an internal error",
	},
}

// Translate maps a raw backend error to an operator-facing message. It
// is deterministic and total: unknown errors fall back to a truncated
// copy of the raw text, never the full internals, and nil yields "".
func Translate(err error) string {
	if err == nil {
		return ""
	}
	raw := err.Error()
	lowered := strings.ToLower(raw)

	for _, rule := range translationRules {
		for _, pattern := range rule.patterns {
			if strings.Contains(lowered, pattern) {
				return rule.message
			}
		}
	}

	if len(raw) > maxRawMessageLen {
		return raw[:maxRawMessageLen] + "..."
	}
	return raw
}

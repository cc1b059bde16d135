package logging

import (
	"regexp"
	"strings"
)

var (
	sensitiveFlagPattern = regexp.MustCompile(`(?i)(--(?:token|access-token|api-key|apikey|secret|password|passwd|authorization|auth|cookie|session|client-secret|bearer))(=|\s+)(\S+)`)
	sensitiveEnvPattern  = regexp.MustCompile(`(?i)\b([A-Z0-9_]*?(?:TOKEN|SECRET|PASSWORD|PASS|API_KEY|APIKEY|AUTH|AUTHORIZATION|BEARER|COOKIE|SESSION|CLIENT_SECRET)[A-Z0-9_]*)=([^\s]+)`)
	authBearerPattern    = regexp.MustCompile(`(?i)\bAuthorization:\s*Bearer\s+[^\s"'` + "`" + `]+`)
	authHeaderPattern    = regexp.MustCompile(`(?i)\bAuthorization[:=]\s*[^\s"'` + "`" + `]+`)
	bearerPattern        = regexp.MustCompile(`(?i)\bBearer\s+[^\s]+`)
	tokenQueryPattern    = regexp.MustCompile(`(?i)([?&](?:token|api_key|apikey|access_token)=)[^&\s]+`)
)

// SanitizeCommand redacts common sensitive tokens in command strings
// before they are logged, e.g. the editor launch for config edit.
func SanitizeCommand(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return redactSecrets(value)
}

// SanitizeError redacts credentials that may leak through wrapped HTTP
// errors, request dumps, and URLs.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return redactSecrets(err.Error())
}

func redactSecrets(value string) string {
	out := value
	out = sensitiveFlagPattern.ReplaceAllString(out, "$1$2<redacted>")
	out = sensitiveEnvPattern.ReplaceAllString(out, "$1=<redacted>")
	out = authBearerPattern.ReplaceAllString(out, "Authorization: Bearer <redacted>")
	out = authHeaderPattern.ReplaceAllString(out, "Authorization:<redacted>")
	out = bearerPattern.ReplaceAllString(out, "Bearer <redacted>")
	out = tokenQueryPattern.ReplaceAllString(out, "$1<redacted>")
	return out
}

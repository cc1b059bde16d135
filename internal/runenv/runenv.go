package runenv

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ConfigDirEnv      = "SCOUR_CONFIG_DIR"
	DataDirEnv        = "SCOUR_DATA_DIR"
	FreshConfigEnv    = "SCOUR_FRESH_CONFIG"
	APIURLEnv         = "SCOUR_API_URL"
	APITokenEnv       = "SCOUR_API_TOKEN"
	RequestTimeoutEnv = "SCOUR_REQUEST_TIMEOUT"
)

func enabledEnv(name string) bool {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return false
	}
	switch strings.ToLower(value) {
	case "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

// FreshConfigEnabled reports whether on-disk state (config, prefs,
// layout snapshots) should be ignored for this run.
func FreshConfigEnabled() bool {
	return enabledEnv(FreshConfigEnv)
}

func ConfigDir() string {
	return strings.TrimSpace(os.Getenv(ConfigDirEnv))
}

func DataDir() string {
	return strings.TrimSpace(os.Getenv(DataDirEnv))
}

func APIURL() string {
	return strings.TrimSpace(os.Getenv(APIURLEnv))
}

func APIToken() string {
	return strings.TrimSpace(os.Getenv(APITokenEnv))
}

// RequestTimeout resolves the cleaning-service request timeout.
// Accepts a duration string ("10s") or a bare second count.
func RequestTimeout() time.Duration {
	const fallback = 10 * time.Second
	raw := strings.TrimSpace(os.Getenv(RequestTimeoutEnv))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		if d <= 0 {
			return fallback
		}
		return d
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

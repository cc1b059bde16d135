package root

import (
	"net/http"
	"strings"

	"github.com/scourlabs/scour/internal/api"
	"github.com/scourlabs/scour/internal/config"
	"github.com/scourlabs/scour/internal/runenv"
)

// ResolveAPI merges the cleaning-service settings from the config file,
// the SCOUR_API_* environment, and an explicit --api-url flag. The flag
// wins over the environment, the environment over the file.
func ResolveAPI(cfg config.APIConfig, flagURL string) config.APIConfig {
	out := cfg
	if url := runenv.APIURL(); url != "" {
		out.BaseURL = url
	}
	if token := runenv.APIToken(); token != "" {
		out.Token = token
	}
	if timeout := runenv.RequestTimeout(); timeout > 0 {
		out.TimeoutSeconds = int(timeout.Seconds())
	}
	if url := strings.TrimSpace(flagURL); url != "" {
		out.BaseURL = url
	}
	return out
}

// NewAPIClient builds the HTTP client for the resolved settings.
func NewAPIClient(cfg config.APIConfig, version string) api.HTTPClient {
	return api.HTTPClient{
		BaseURL:    cfg.BaseURL,
		Token:      cfg.Token,
		HTTPClient: &http.Client{Timeout: cfg.Timeout()},
		UserAgent:  "scour/" + version,
	}
}

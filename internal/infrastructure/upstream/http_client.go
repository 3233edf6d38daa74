package upstream

import (
	"net/http"
	"time"

	"doctor-directory/config"

	"github.com/sirupsen/logrus"
)

const defaultFetchTimeout = 20 * time.Second

// NewHTTPClient builds the client used for the one-shot directory ingestion.
func NewHTTPClient(cfg config.DirectoryConfig) *http.Client {
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = 2
	transport.IdleConnTimeout = 30 * time.Second

	logrus.Infof("Upstream client configured for %s (timeout %v)", cfg.SourceURL, timeout)

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

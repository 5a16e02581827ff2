package untappdweb

import "go.uber.org/zap"

const (
	IntegrationName = "untappd_web"
	baseURL         = "https://untappd.com/"
	userAgent       = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"

	// pages scraped at the same time for one search.
	parallelPages = 4
)

type UntappedWebIntegration struct {
	logger *zap.Logger
}

func NewUntappedWebIntegration(logger *zap.Logger) *UntappedWebIntegration {
	return &UntappedWebIntegration{logger: logger}
}

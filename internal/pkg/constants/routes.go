package constants

// Static route constants
const (
	HomeRoute    = "/"
	StaticRoute  = "/static"
	APIRoute     = "/api"
	MetricsRoute = "/metrics"
	DocsRoute    = "/docs/api/"
)

// HomeCacheControl lets browsers keep the start page for an hour and shared caches slightly longer
const HomeCacheControl = "public, max-age=3600, s-maxage=4000"

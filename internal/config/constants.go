package config

import "time"

// Environment variable names
const (
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvEnvironment   = "ENVIRONMENT"
	EnvServiceName   = "SERVICE_NAME"
	EnvVersion       = "VERSION"
	EnvRenderMarkers = "RENDER_MARKERS"
	EnvHeadCacheSize = "HEAD_CACHE_SIZE"
	EnvHeadCacheTTL  = "HEAD_CACHE_TTL"
	EnvTemplatePath  = "TEMPLATE_PATH"
)

// Default values
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultEnvironment   = "dev"
	DefaultServiceName   = "panelkit"
	DefaultVersion       = "dev"
	DefaultRenderMarkers = true
	DefaultHeadCacheSize = 256
	DefaultHeadCacheTTL  = 30 * time.Minute
	DefaultTemplatePath  = "configs/panels/items.json"
)

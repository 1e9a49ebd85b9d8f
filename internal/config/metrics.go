package config

import "github.com/preston-bernstein/nba-draft-service/internal/metrics"

// MetricsConfig controls where draft telemetry is exported. The Prometheus
// scrape endpoint listens on its own port; OTLP push is optional.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Telemetry converts the env-level settings into the exporter configuration.
func (m MetricsConfig) Telemetry() metrics.TelemetryConfig {
	return metrics.TelemetryConfig{
		Enabled:      m.Enabled,
		Port:         m.Port,
		ServiceName:  m.ServiceName,
		OtlpEndpoint: m.OtlpEndpoint,
		OtlpInsecure: m.OtlpInsecure,
	}
}

func loadMetrics(httpPort string) (MetricsConfig, error) {
	m := MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
	if m.Enabled && m.Port == httpPort {
		return MetricsConfig{}, ValidationError{Field: envMetricsPort, Message: "must differ from " + envPort}
	}
	return m, nil
}

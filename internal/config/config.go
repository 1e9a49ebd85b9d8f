package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	LogLevel     string
	LogFormat    string
	SettingsFile string
	AdminToken   string
	Draft        DraftConfig
	Pools        PoolConfig
	Snapshots    SnapshotConfig
	Sweep        SweepConfig
	MCP          MCPConfig
	Metrics      MetricsConfig
}

// PoolConfig points at the raw player datasets. Empty paths use the built-in
// fixture collections.
type PoolConfig struct {
	CurrentFile string
	AllTimeFile string
}

// MCPConfig controls the MCP assistant endpoint.
type MCPConfig struct {
	Enabled bool
	Path    string
}

// Load reads configuration from environment variables with sensible defaults.
// Draft defaults are layered: built-in values, then the settings file named by
// SETTINGS_FILE, then individual env vars.
func Load() (Config, error) {
	settingsFile := envOrDefault(envSettingsFile, "")
	draftCfg, err := loadDraft(settingsFile)
	if err != nil {
		return Config{}, err
	}

	port := envOrDefault(envPort, defaultPort)
	metricsCfg, err := loadMetrics(port)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:         port,
		LogLevel:     envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:    envOrDefault(envLogFormat, defaultLogFormat),
		SettingsFile: settingsFile,
		AdminToken:   envOrDefault(envAdminToken, ""),
		Draft:        draftCfg,
		Pools: PoolConfig{
			CurrentFile: envOrDefault(envCurrentPool, ""),
			AllTimeFile: envOrDefault(envAllTimePool, ""),
		},
		Snapshots: loadSnapshots(),
		Sweep:     loadSweep(),
		MCP: MCPConfig{
			Enabled: boolEnvOrDefault(envMCPEnabled, true),
			Path:    envOrDefault(envMCPPath, defaultMCPPath),
		},
		Metrics: metricsCfg,
	}
	return cfg, nil
}

package config

import "time"

const (
	envPort          = "PORT"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envPlayerPool    = "PLAYER_POOL"
	envDraftRounds   = "DRAFT_ROUNDS"
	envAITeamCount   = "AI_TEAM_COUNT"
	envUserTeamName  = "USER_TEAM_NAME"
	envDraftOrder    = "DRAFT_ORDER"
	envCurrentPool   = "CURRENT_POOL_FILE"
	envAllTimePool   = "ALL_TIME_POOL_FILE"
	envSnapshotDir   = "SNAPSHOT_DIR"
	envSnapshotDays  = "SNAPSHOT_RETENTION_DAYS"
	envSettingsFile  = "SETTINGS_FILE"
	envMCPEnabled    = "MCP_ENABLED"
	envMCPPath       = "MCP_PATH"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envSessionTTL    = "SESSION_TTL"
	envAbandonedTTL  = "ABANDONED_TTL"
	envSweepInterval = "SWEEP_INTERVAL"
	envAdminToken    = "ADMIN_TOKEN"

	defaultPort        = "4000"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-draft-service"
	defaultSnapshotDir = "data/snapshots"
	defaultMCPPath     = "/mcp"

	defaultSnapshotRetentionDays = 30
	// Completed drafts stay in memory long enough to fetch results, then live on disk.
	defaultSessionTTL    = 1 * Duration(time.Hour)
	defaultAbandonedTTL  = 24 * Duration(time.Hour)
	defaultSweepInterval = 5 * Duration(time.Minute)
)

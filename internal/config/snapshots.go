package config

import "time"

// SnapshotConfig controls where completed drafts are persisted and how long
// they are kept.
type SnapshotConfig struct {
	Dir           string
	RetentionDays int
}

// SweepConfig controls eviction of in-memory sessions.
type SweepConfig struct {
	Interval     time.Duration
	CompletedTTL time.Duration // completed drafts, measured from completion
	AbandonedTTL time.Duration // unfinished drafts, measured from creation
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotDays, defaultSnapshotRetentionDays),
	}
}

func loadSweep() SweepConfig {
	return SweepConfig{
		Interval:     durationEnvOrDefault(envSweepInterval, defaultSweepInterval),
		CompletedTTL: durationEnvOrDefault(envSessionTTL, defaultSessionTTL),
		AbandonedTTL: durationEnvOrDefault(envAbandonedTTL, defaultAbandonedTTL),
	}
}

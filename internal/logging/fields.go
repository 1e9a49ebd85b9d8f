package logging

import "log/slog"

// Structured log keys shared across packages.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldCount      = "count"

	FieldDraftID = "draft_id"
	FieldPool    = "pool"
	FieldRound   = "round"
	FieldTeam    = "team"
	FieldPlayer  = "player"
	FieldScore   = "score"
	FieldDropped = "dropped"
)

// DraftAttrs returns the attributes that identify a draft pick in logs.
func DraftAttrs(draftID string, round int, team string) []any {
	return []any{FieldDraftID, draftID, FieldRound, round, FieldTeam, team}
}

// processAttrs identifies the running binary. Empty values are skipped.
func processAttrs(service, version string) []slog.Attr {
	var attrs []slog.Attr
	for _, kv := range [][2]string{{FieldService, service}, {FieldVersion, version}} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}

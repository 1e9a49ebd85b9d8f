package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod = "method"
	AttrPath   = "path"
	AttrStatus = "status"
	AttrPool   = "pool"
	AttrKind   = "kind"
)

// Pick kinds.
const (
	PickUser = "user"
	PickAuto = "auto"
)

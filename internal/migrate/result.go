package migrate

type Status int

const (
	StatusMigrated     Status = iota // renamed
	StatusPlanned                    // would be renamed (dry run)
	StatusMissing                    // no legacy path
	StatusWrongKind                  // legacy path is not the expected kind
	StatusTargetExists               // target already present
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusMigrated:
		return "migrated"
	case StatusPlanned:
		return "planned"
	case StatusMissing:
		return "missing"
	case StatusWrongKind:
		return "wrong-kind"
	case StatusTargetExists:
		return "target-exists"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Skipped reports whether the artifact was left alone without error
func (s Status) Skipped() bool {
	switch s {
	case StatusMissing, StatusWrongKind, StatusTargetExists:
		return true
	}
	return false
}

type Result struct {
	Artifact Artifact
	Status   Status
	Err      error
}

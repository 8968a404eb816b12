package core

import "context"

type (
	// MirrorStatus reports remote-store reachability for diagnostics.
	// JSON keys match what the site's admin dashboard already consumes.
	MirrorStatus struct {
		Initialized        bool     `json:"initialized"`
		CredentialsPresent bool     `json:"serviceAccountPresent"`
		ProjectID          string   `json:"projectId,omitempty"`
		Reachable          bool     `json:"firestoreReachable"`
		Collections        []string `json:"collections"`
	}

	// Mirror is any best-effort remote copy of locally persisted records.
	// MirrorRecord runs out-of-band: implementations log success/failure and
	// never report back to the caller. The local store stays authoritative.
	Mirror interface {
		MirrorRecord(collection, id string, record interface{})
		Status(ctx context.Context) MirrorStatus
	}
)

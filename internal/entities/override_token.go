package entities

import "time"

// OverrideToken is a single-use numeric authorization letting a blocked unit
// run one more trip without a service event. Rows are never deleted; used and
// expired tokens stay behind as the audit trail.
type OverrideToken struct {
	ID        int64
	UnitID    int64
	Code      string
	IssuedBy  string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

const DefaultTokenIssuer = "supervisor"

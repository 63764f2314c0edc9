package registry

import "time"

// StatusPending is the lifecycle label assigned at creation unless the caller
// supplies one. The service never interprets or validates status values.
const StatusPending = "pending"

// Document is the persisted registry record for one submitted artifact. Only
// metadata is stored here; the artifact body never reaches this service, the
// hash is what later verification checks against.
type Document struct {
	ID        string `json:"id" bson:"_id"`
	Name      string `json:"name" bson:"name"`
	Hash      string `json:"hash" bson:"hash"`
	Owner     string `json:"owner" bson:"owner"`
	Status    string `json:"status" bson:"status"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
	UpdatedAt *int64 `json:"updatedAt" bson:"updatedAt"`
}

// Clock yields the current time as a millisecond epoch value. Injected into
// the service so tests can pin timestamps.
type Clock interface {
	NowMillis() int64
}

type systemClock struct{}

// NowMillis derives milliseconds from the nanosecond host clock. Stored
// timestamps depend on this exact scale; do not switch to UnixMilli rounding.
func (systemClock) NowMillis() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// SystemClock returns the host-clock implementation used in production.
func SystemClock() Clock { return systemClock{} }

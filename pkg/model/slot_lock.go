package model

import "time"

// SlotLock is an advisory lock document keyed by equipment, date and start
// slot. The unique _id insert is what serializes two create requests racing
// for the same slot; ExpiresAt lets a TTL index reap locks leaked by a crash.
type SlotLock struct {
	ID        string    `bson:"_id"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

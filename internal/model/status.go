package model

import "time"

// StatusCheck is a client liveness ping stored in MongoDB.
// The bson tags keep the stored field names identical to the JSON ones,
// so documents round-trip without a mapping layer.
type StatusCheck struct {
	ID         string    `json:"id"          bson:"id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp"   bson:"timestamp"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Complaint statuses. Only Submitted is set by this service; the others are
// reserved for the administrative path.
const (
	ComplaintSubmitted = "Submitted"
	ComplaintInReview  = "In Review"
	ComplaintResolved  = "Resolved"
)

// Complaint is a free-text report filed against a named map zone.
// zoneName is not validated against the map document's zone list.
type Complaint struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ZoneName  string             `bson:"zoneName" json:"zoneName"`
	Details   string             `bson:"details" json:"details"`
	FiledBy   string             `bson:"filedBy" json:"filedBy"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

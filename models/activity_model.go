package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is one entry in the admin audit log.
type Activity struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	ActorID   primitive.ObjectID `json:"actorId" bson:"actorId"`
	Action    string             `json:"action" bson:"action"`
	Target    string             `json:"target" bson:"target"`
	TargetID  string             `json:"targetId,omitempty" bson:"targetId,omitempty"`
	Detail    string             `json:"detail,omitempty" bson:"detail,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

package models

import "time"

// StatusCheck records a client pinging the service
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}

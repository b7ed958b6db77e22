package model

import "time"

// Message is a single message in a conversation between two users.
// The backend is inconsistent about field names (message vs content,
// sender vs sender_id); the client normalizes into this one shape
// before anything else sees it.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sent_at"`
}

// DisputeStatus is the state of a dispute raised against an order.
type DisputeStatus string

const (
	DisputeOpen     DisputeStatus = "open"
	DisputeReview   DisputeStatus = "under_review"
	DisputeResolved DisputeStatus = "resolved"
	DisputeRejected DisputeStatus = "rejected"
)

// Dispute represents a buyer/seller dispute. The client only views
// disputes; resolution happens server-side.
type Dispute struct {
	ID       int64         `json:"id"`
	OrderID  int64         `json:"order_id"`
	RaisedBy int64         `json:"raised_by"`
	Status   DisputeStatus `json:"status"`
	Reason   string        `json:"reason"`
	OpenedAt time.Time     `json:"created_at"`
}

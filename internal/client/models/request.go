package models

import (
	"fmt"
	"time"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) Valid() bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAccepted  RequestStatus = "accepted"
	StatusFulfilled RequestStatus = "fulfilled"
)

func (s RequestStatus) Valid() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusFulfilled
}

// ParseStatusFilter maps "all" (or "") to the empty status, meaning no filter.
func ParseStatusFilter(s string) (RequestStatus, error) {
	if s == "" || s == "all" {
		return "", nil
	}
	st := RequestStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// Request is a student's plea for help. Amount is meaningful for money
// requests, Items for food and essentials.
type Request struct {
	ID          string
	StudentID   string
	StudentName string
	Type        Category
	Title       string
	Description string
	Urgency     Urgency
	Status      RequestStatus
	Amount      int
	Items       []string
	CreatedAt   time.Time
}

// Open reports whether donors can still act on the request.
func (r Request) Open() bool {
	return r.Status == StatusPending || r.Status == StatusAccepted
}

type Donation struct {
	ID        string
	DonorID   string
	RequestID string
	Amount    int
	Message   string
	CreatedAt time.Time
}

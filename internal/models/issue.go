package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type IssueStatus string

const (
	IssueStatusOpen   IssueStatus = "open"
	IssueStatusClosed IssueStatus = "closed"
)

func ParseIssueStatus(s string) (IssueStatus, error) {
	switch IssueStatus(s) {
	case IssueStatusOpen:
		return IssueStatusOpen, nil
	case IssueStatusClosed:
		return IssueStatusClosed, nil
	default:
		return "", fmt.Errorf("invalid issue status: %q", s)
	}
}

// Issue is a maintenance/problem report tied to an apartment in a building.
type Issue struct {
	ID          uuid.UUID   `json:"id"`
	BuildingID  uuid.UUID   `json:"building_id"`
	ApartmentID uuid.UUID   `json:"apartment_id"`
	Title       string      `json:"title"`
	Body        string      `json:"body"`
	CreatedBy   string      `json:"created_by"`
	Status      IssueStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	ClosedAt    *time.Time  `json:"closed_at,omitempty"`
}

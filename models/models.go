// path: models/models.go
package models

import "time"

// Role values a user can hold.
const (
	RoleCitizen    = "citizen"
	RoleTechnician = "technician"
	RoleAdmin      = "admin"
)

// Report categories.
const (
	CategoryWater       = "water"
	CategoryRoad        = "road"
	CategoryElectricity = "electricity"
	CategoryGarbage     = "garbage"
	CategoryStreetlight = "streetlight"
	CategoryOther       = "other"
)

// Report priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Report statuses. Status is stored as a free string: any value can follow
// any other, there is no transition graph.
const (
	StatusRegistered = "registered"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// AnonymousName is recorded for reports submitted without a token.
const AnonymousName = "Anonymous"

// User is an account. The password hash lives only in the store layer and is
// never serialized.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Location is embedded in a report; it has no lifecycle of its own.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// TimelineEntry records one status change or milestone on a report.
// Entries are append-only and immutable once written.
type TimelineEntry struct {
	Status     string    `json:"status"`
	ByUserID   *string   `json:"by_user_id"`
	ByUserName *string   `json:"by_user_name"`
	Comment    string    `json:"comment,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Report is a citizen-submitted civic issue.
type Report struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category"`
	Priority       string          `json:"priority"`
	Status         string          `json:"status"`
	Location       Location        `json:"location"`
	Images         []string        `json:"images"`
	CreatedByID    *string         `json:"created_by_id"`
	CreatedByName  *string         `json:"created_by_name"`
	AssignedToID   *string         `json:"assigned_to_id"`
	AssignedToName *string         `json:"assigned_to_name"`
	Timeline       []TimelineEntry `json:"timeline"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Comment references a report but does not own it.
type Comment struct {
	ID        string    `json:"id"`
	ReportID  string    `json:"report_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalyticsSummary holds call-time aggregate counts over all reports.
type AnalyticsSummary struct {
	TotalReports    int64            `json:"total_reports"`
	OpenReports     int64            `json:"open_reports"`
	ResolvedReports int64            `json:"resolved_reports"`
	StatusCounts    map[string]int64 `json:"status_counts"`
	CategoryCounts  map[string]int64 `json:"category_counts"`
}

// path: controllers/interfaces.go
package controllers

import (
	"context"
	"mime/multipart"

	"civicfix/models"
	"civicfix/store"
)

// UserStore is the slice of the persistence gateway the controllers need for
// accounts. *store.Store satisfies it.
type UserStore interface {
	CreateUser(ctx context.Context, u models.User, passwordHash string) error
	UserByEmail(ctx context.Context, email string) (models.User, string, error)
	UserByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context, role string, limit int64) ([]models.User, error)
}

// ReportStore covers report persistence and aggregation.
type ReportStore interface {
	CreateReport(ctx context.Context, r models.Report) error
	ListReports(ctx context.Context, f store.ReportFilter) ([]models.Report, error)
	ReportByID(ctx context.Context, id string) (models.Report, error)
	SetStatus(ctx context.Context, id, status string, entry models.TimelineEntry) error
	AssignReport(ctx context.Context, id, assigneeID, assigneeName string, entry models.TimelineEntry) error
	Summary(ctx context.Context) (models.AnalyticsSummary, error)
}

// CommentStore covers the comment sub-resource.
type CommentStore interface {
	CreateComment(ctx context.Context, c models.Comment) error
	CommentsByReport(ctx context.Context, reportID string, limit int64) ([]models.Comment, error)
}

// Uploader stores an uploaded file and returns its public path.
type Uploader interface {
	Save(fh *multipart.FileHeader) (string, error)
}

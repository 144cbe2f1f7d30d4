// path: controllers/mocks_test.go
package controllers

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"civicfix/models"
	"civicfix/store"
)

// MockUserStore is a mock implementation of UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(ctx context.Context, u models.User, passwordHash string) error {
	args := m.Called(ctx, u, passwordHash)
	return args.Error(0)
}

func (m *MockUserStore) UserByEmail(ctx context.Context, email string) (models.User, string, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.String(1), args.Error(2)
}

func (m *MockUserStore) UserByID(ctx context.Context, id string) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserStore) ListUsers(ctx context.Context, role string, limit int64) ([]models.User, error) {
	args := m.Called(ctx, role, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockReportStore is a mock implementation of ReportStore.
type MockReportStore struct {
	mock.Mock
}

func (m *MockReportStore) CreateReport(ctx context.Context, r models.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportStore) ListReports(ctx context.Context, f store.ReportFilter) ([]models.Report, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportStore) ReportByID(ctx context.Context, id string) (models.Report, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Report), args.Error(1)
}

func (m *MockReportStore) SetStatus(ctx context.Context, id, status string, entry models.TimelineEntry) error {
	args := m.Called(ctx, id, status, entry)
	return args.Error(0)
}

func (m *MockReportStore) AssignReport(ctx context.Context, id, assigneeID, assigneeName string, entry models.TimelineEntry) error {
	args := m.Called(ctx, id, assigneeID, assigneeName, entry)
	return args.Error(0)
}

func (m *MockReportStore) Summary(ctx context.Context) (models.AnalyticsSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.AnalyticsSummary), args.Error(1)
}

// MockCommentStore is a mock implementation of CommentStore.
type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) CreateComment(ctx context.Context, c models.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommentStore) CommentsByReport(ctx context.Context, reportID string, limit int64) ([]models.Comment, error) {
	args := m.Called(ctx, reportID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

// MockUploader is a mock implementation of Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Save(fh *multipart.FileHeader) (string, error) {
	args := m.Called(fh)
	return args.String(0), args.Error(1)
}

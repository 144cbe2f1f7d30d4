// path: store/reports_test.go
package store

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"civicfix/models"
)

func TestReportFilterQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter ReportFilter
		want   bson.M
	}{
		{"no constraints", ReportFilter{Limit: 100}, bson.M{}},
		{"status only", ReportFilter{Status: "registered"}, bson.M{"status": "registered"}},
		{
			"all filters",
			ReportFilter{Status: "registered", Category: "water", Priority: "high"},
			bson.M{"status": "registered", "category": "water", "priority": "high"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.query())
		})
	}
}

func TestReportDocRoundTrip(t *testing.T) {
	uid := "u1"
	uname := "Jane"
	created := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)

	r := models.Report{
		ID:            "r1",
		Title:         "Burst pipe",
		Description:   "corner of Main and 4th",
		Category:      models.CategoryWater,
		Priority:      models.PriorityHigh,
		Status:        models.StatusRegistered,
		Location:      models.Location{Lat: 12.97, Lng: 77.59, Address: "Main St"},
		Images:        []string{"/uploads/a.png"},
		CreatedByID:   &uid,
		CreatedByName: &uname,
		Timeline: []models.TimelineEntry{{
			Status:     models.StatusRegistered,
			ByUserID:   &uid,
			ByUserName: &uname,
			Comment:    "Report created",
			Timestamp:  created,
		}},
		CreatedAt: created,
		UpdatedAt: created,
	}

	got := reportToDoc(r).model()
	assert.Equal(t, r, got)
}

func TestReportDocAnonymousRoundTrip(t *testing.T) {
	anon := models.AnonymousName
	now := time.Now().UTC().Truncate(time.Microsecond)

	r := models.Report{
		ID:            "r2",
		Title:         "Dark street",
		Category:      models.CategoryStreetlight,
		Priority:      models.PriorityMedium,
		Status:        models.StatusRegistered,
		Images:        []string{},
		CreatedByName: &anon,
		Timeline: []models.TimelineEntry{{
			Status:     models.StatusRegistered,
			ByUserName: &anon,
			Comment:    "Report created",
			Timestamp:  now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	got := reportToDoc(r).model()
	assert.Nil(t, got.CreatedByID)
	assert.Nil(t, got.AssignedToID)
	assert.Equal(t, r, got)
}

// The layout is fixed-width so sorting the stored strings matches sorting the
// instants; the newest-first listing depends on this.
func TestTimeLayoutSortsChronologically(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	instants := []time.Time{
		base.Add(500 * time.Millisecond),
		base,
		base.Add(-time.Hour),
		base.Add(250 * time.Microsecond),
		base.Add(time.Second),
	}

	formatted := make([]string, len(instants))
	for i, ts := range instants {
		formatted[i] = fmtTime(ts)
	}
	sort.Strings(formatted)

	for i := 1; i < len(formatted); i++ {
		prev, cur := parseTime(formatted[i-1]), parseTime(formatted[i])
		assert.False(t, cur.Before(prev), "lexicographic order must be chronological")
	}
}

func TestParseTimeRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	require.Equal(t, now, parseTime(fmtTime(now)))

	assert.True(t, parseTime("garbage").IsZero())
}

func TestCommentDocRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	d := commentDoc{
		ID:        "c1",
		ReportID:  "r1",
		UserID:    "u1",
		UserName:  "Jane",
		Text:      "any progress?",
		CreatedAt: fmtTime(now),
	}
	got := d.model()
	assert.Equal(t, models.Comment{
		ID: "c1", ReportID: "r1", UserID: "u1", UserName: "Jane",
		Text: "any progress?", CreatedAt: now,
	}, got)
}

func TestUserDocRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	d := userDoc{
		ID:           "u1",
		Name:         "Jane",
		Email:        "jane@example.com",
		PasswordHash: "bcrypt-material",
		Role:         models.RoleCitizen,
		CreatedAt:    fmtTime(now),
	}
	got := d.model()
	assert.Equal(t, models.User{
		ID: "u1", Name: "Jane", Email: "jane@example.com",
		Role: models.RoleCitizen, CreatedAt: now,
	}, got)
}

// path: store/reports.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civicfix/models"
)

type locationDoc struct {
	Lat     float64 `bson:"lat"`
	Lng     float64 `bson:"lng"`
	Address string  `bson:"address"`
}

type timelineDoc struct {
	Status     string  `bson:"status"`
	ByUserID   *string `bson:"by_user_id"`
	ByUserName *string `bson:"by_user_name"`
	Comment    string  `bson:"comment,omitempty"`
	Timestamp  string  `bson:"timestamp"`
}

type reportDoc struct {
	ID             string        `bson:"id"`
	Title          string        `bson:"title"`
	Description    string        `bson:"description,omitempty"`
	Category       string        `bson:"category"`
	Priority       string        `bson:"priority"`
	Status         string        `bson:"status"`
	Location       locationDoc   `bson:"location"`
	Images         []string      `bson:"images"`
	CreatedByID    *string       `bson:"created_by_id"`
	CreatedByName  *string       `bson:"created_by_name"`
	AssignedToID   *string       `bson:"assigned_to_id"`
	AssignedToName *string       `bson:"assigned_to_name"`
	Timeline       []timelineDoc `bson:"timeline"`
	CreatedAt      string        `bson:"created_at"`
	UpdatedAt      string        `bson:"updated_at"`
}

func timelineToDoc(e models.TimelineEntry) timelineDoc {
	return timelineDoc{
		Status:     e.Status,
		ByUserID:   e.ByUserID,
		ByUserName: e.ByUserName,
		Comment:    e.Comment,
		Timestamp:  fmtTime(e.Timestamp),
	}
}

func (d timelineDoc) model() models.TimelineEntry {
	return models.TimelineEntry{
		Status:     d.Status,
		ByUserID:   d.ByUserID,
		ByUserName: d.ByUserName,
		Comment:    d.Comment,
		Timestamp:  parseTime(d.Timestamp),
	}
}

func reportToDoc(r models.Report) reportDoc {
	timeline := make([]timelineDoc, 0, len(r.Timeline))
	for _, e := range r.Timeline {
		timeline = append(timeline, timelineToDoc(e))
	}
	return reportDoc{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Category:       r.Category,
		Priority:       r.Priority,
		Status:         r.Status,
		Location:       locationDoc(r.Location),
		Images:         r.Images,
		CreatedByID:    r.CreatedByID,
		CreatedByName:  r.CreatedByName,
		AssignedToID:   r.AssignedToID,
		AssignedToName: r.AssignedToName,
		Timeline:       timeline,
		CreatedAt:      fmtTime(r.CreatedAt),
		UpdatedAt:      fmtTime(r.UpdatedAt),
	}
}

func (d reportDoc) model() models.Report {
	timeline := make([]models.TimelineEntry, 0, len(d.Timeline))
	for _, e := range d.Timeline {
		timeline = append(timeline, e.model())
	}
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return models.Report{
		ID:             d.ID,
		Title:          d.Title,
		Description:    d.Description,
		Category:       d.Category,
		Priority:       d.Priority,
		Status:         d.Status,
		Location:       models.Location(d.Location),
		Images:         images,
		CreatedByID:    d.CreatedByID,
		CreatedByName:  d.CreatedByName,
		AssignedToID:   d.AssignedToID,
		AssignedToName: d.AssignedToName,
		Timeline:       timeline,
		CreatedAt:      parseTime(d.CreatedAt),
		UpdatedAt:      parseTime(d.UpdatedAt),
	}
}

// ReportFilter narrows a listing; zero values mean no constraint.
type ReportFilter struct {
	Status   string
	Category string
	Priority string
	Limit    int64
	Skip     int64
}

func (f ReportFilter) query() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Priority != "" {
		q["priority"] = f.Priority
	}
	return q
}

// CreateReport persists a freshly built report document.
func (s *Store) CreateReport(ctx context.Context, r models.Report) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	_, err := s.reports.InsertOne(ctx, reportToDoc(r))
	return err
}

// ListReports returns matching reports newest-created first.
func (s *Store) ListReports(ctx context.Context, f ReportFilter) ([]models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(f.Skip).
		SetLimit(f.Limit)

	cur, err := s.reports.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reports := make([]models.Report, 0, 16)
	for cur.Next(ctx) {
		var d reportDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		reports = append(reports, d.model())
	}
	return reports, cur.Err()
}

// ReportByID fetches a single report.
func (s *Store) ReportByID(ctx context.Context, id string) (models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var d reportDoc
	err := s.reports.FindOne(ctx, bson.M{"id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return models.Report{}, ErrNotFound
	}
	if err != nil {
		return models.Report{}, err
	}
	return d.model(), nil
}

// SetStatus sets the status verbatim, refreshes updated_at, and appends the
// timeline entry — all in one document update so the mutation is atomic.
func (s *Store) SetStatus(ctx context.Context, id, status string, entry models.TimelineEntry) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	res, err := s.reports.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": fmtTime(entry.Timestamp),
		},
		"$push": bson.M{"timeline": timelineToDoc(entry)},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignReport records the assignee, forces status to in_progress, and
// appends the timeline entry in a single atomic update.
func (s *Store) AssignReport(ctx context.Context, id, assigneeID, assigneeName string, entry models.TimelineEntry) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	res, err := s.reports.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{
			"assigned_to_id":   assigneeID,
			"assigned_to_name": assigneeName,
			"status":           models.StatusInProgress,
			"updated_at":       fmtTime(entry.Timestamp),
		},
		"$push": bson.M{"timeline": timelineToDoc(entry)},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary computes the aggregate counts at call time, unfiltered.
func (s *Store) Summary(ctx context.Context) (models.AnalyticsSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var out models.AnalyticsSummary
	var err error

	if out.TotalReports, err = s.reports.CountDocuments(ctx, bson.M{}); err != nil {
		return out, err
	}
	open := bson.M{"status": bson.M{"$in": bson.A{models.StatusRegistered, models.StatusInProgress}}}
	if out.OpenReports, err = s.reports.CountDocuments(ctx, open); err != nil {
		return out, err
	}
	resolved := bson.M{"status": bson.M{"$in": bson.A{models.StatusResolved, models.StatusClosed}}}
	if out.ResolvedReports, err = s.reports.CountDocuments(ctx, resolved); err != nil {
		return out, err
	}

	if out.StatusCounts, err = s.groupCounts(ctx, "status"); err != nil {
		return out, err
	}
	if out.CategoryCounts, err = s.groupCounts(ctx, "category"); err != nil {
		return out, err
	}
	return out, nil
}

func (s *Store) groupCounts(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$" + field,
			"count": bson.M{"$sum": 1},
		}}},
	}
	cur, err := s.reports.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.ID] = row.Count
	}
	return counts, cur.Err()
}

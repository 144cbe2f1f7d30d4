// path: controllers/reports.go
package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"civicfix/middlewares"
	"civicfix/models"
	"civicfix/store"
)

const defaultListLimit = 100

// ReportController handles the report lifecycle and its comment sub-resource.
type ReportController struct {
	Reports  ReportStore
	Users    UserStore
	Comments CommentStore
	Uploads  Uploader
}

// actorRef returns the id/name pair recorded on timeline entries; anonymous
// callers get a nil id and the fixed Anonymous name.
func actorRef(c *fiber.Ctx) (*string, *string) {
	if user, ok := middlewares.CurrentUser(c); ok {
		return &user.ID, &user.Name
	}
	anon := models.AnonymousName
	return nil, &anon
}

// Create accepts a multipart submission. Authentication is optional: an
// anonymous report is valid and recorded as such.
func (rc *ReportController) Create(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	category := strings.TrimSpace(c.FormValue("category"))
	priority := strings.TrimSpace(c.FormValue("priority"))
	address := strings.TrimSpace(c.FormValue("address"))

	if title == "" {
		return badReq(c, "missing title")
	}
	if category == "" {
		return badReq(c, "missing category")
	}
	if address == "" {
		return badReq(c, "missing address")
	}
	if priority == "" {
		priority = models.PriorityMedium
	}

	lat, err := strconv.ParseFloat(c.FormValue("lat"), 64)
	if err != nil {
		return badReq(c, "invalid lat")
	}
	lng, err := strconv.ParseFloat(c.FormValue("lng"), 64)
	if err != nil {
		return badReq(c, "invalid lng")
	}

	// Entries without a filename are skipped; a failed save fails the whole
	// request and already-saved files are not cleaned up.
	images := []string{}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["images"] {
			if fh.Filename == "" {
				continue
			}
			path, err := rc.Uploads.Save(fh)
			if err != nil {
				return serverErr(c, err)
			}
			images = append(images, path)
		}
	}

	actorID, actorName := actorRef(c)
	now := time.Now().UTC()
	report := models.Report{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   description,
		Category:      category,
		Priority:      priority,
		Status:        models.StatusRegistered,
		Location:      models.Location{Lat: lat, Lng: lng, Address: address},
		Images:        images,
		CreatedByID:   actorID,
		CreatedByName: actorName,
		Timeline: []models.TimelineEntry{{
			Status:     models.StatusRegistered,
			ByUserID:   actorID,
			ByUserName: actorName,
			Comment:    "Report created",
			Timestamp:  now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := rc.Reports.CreateReport(c.Context(), report); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(report)
}

// List returns reports matching the supplied equality filters, newest first.
func (rc *ReportController) List(c *fiber.Ctx) error {
	f := store.ReportFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Limit:    int64(c.QueryInt("limit", defaultListLimit)),
		Skip:     int64(c.QueryInt("skip", 0)),
	}
	reports, err := rc.Reports.ListReports(c.Context(), f)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(reports)
}

// Get fetches one report by id.
func (rc *ReportController) Get(c *fiber.Ctx) error {
	report, err := rc.Reports.ReportByID(c.Context(), c.Params("id"))
	if err == store.ErrNotFound {
		return notFound(c, "Report not found")
	}
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(report)
}

// UpdateStatus appends a timeline entry and sets the status verbatim. The
// status field is deliberately permissive: any value can follow any other.
func (rc *ReportController) UpdateStatus(c *fiber.Ctx) error {
	var p models.StatusUpdatePayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}
	if strings.TrimSpace(p.Status) == "" {
		return badReq(c, "missing status")
	}

	actorID, actorName := actorRef(c)
	entry := models.TimelineEntry{
		Status:     p.Status,
		ByUserID:   actorID,
		ByUserName: actorName,
		Comment:    p.Comment,
		Timestamp:  time.Now().UTC(),
	}

	err := rc.Reports.SetStatus(c.Context(), c.Params("id"), p.Status, entry)
	if err == store.ErrNotFound {
		return notFound(c, "Report not found")
	}
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(models.MessageResponse{Message: "Status updated successfully"})
}

// Assign records the assignee and forces status to in_progress, even when
// the report is already past that stage. The assignee is resolved before any
// mutation so a bad id leaves the report untouched.
func (rc *ReportController) Assign(c *fiber.Ctx) error {
	var p models.AssignPayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}

	assignee, err := rc.Users.UserByID(c.Context(), p.AssignedToID)
	if err == store.ErrNotFound {
		return notFound(c, "User not found")
	}
	if err != nil {
		return serverErr(c, err)
	}

	actorID, actorName := actorRef(c)
	entry := models.TimelineEntry{
		Status:     models.StatusInProgress,
		ByUserID:   actorID,
		ByUserName: actorName,
		Comment:    "Assigned to " + assignee.Name,
		Timestamp:  time.Now().UTC(),
	}

	err = rc.Reports.AssignReport(c.Context(), c.Params("id"), assignee.ID, assignee.Name, entry)
	if err == store.ErrNotFound {
		return notFound(c, "Report not found")
	}
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(models.MessageResponse{Message: "Report assigned successfully"})
}

// AddComment stores a comment against an existing report.
func (rc *ReportController) AddComment(c *fiber.Ctx) error {
	var p models.CommentPayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}
	if strings.TrimSpace(p.Text) == "" {
		return badReq(c, "missing text")
	}

	reportID := c.Params("id")
	if _, err := rc.Reports.ReportByID(c.Context(), reportID); err != nil {
		if err == store.ErrNotFound {
			return notFound(c, "Report not found")
		}
		return serverErr(c, err)
	}

	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return unauthorized(c, "could not validate credentials")
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		ReportID:  reportID,
		UserID:    user.ID,
		UserName:  user.Name,
		Text:      p.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := rc.Comments.CreateComment(c.Context(), comment); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(comment)
}

// ListComments returns a report's comments newest-first.
func (rc *ReportController) ListComments(c *fiber.Ctx) error {
	comments, err := rc.Comments.CommentsByReport(c.Context(), c.Params("id"), listCap)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(comments)
}

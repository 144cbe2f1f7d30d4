// path: controllers/analytics.go
package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// AnalyticsController serves call-time aggregate counts over all reports.
// Any authenticated role may read them; there is no admin gate here.
type AnalyticsController struct {
	Reports ReportStore
}

// Summary returns totals plus status and category breakdowns.
func (an *AnalyticsController) Summary(c *fiber.Ctx) error {
	summary, err := an.Reports.Summary(c.Context())
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(summary)
}

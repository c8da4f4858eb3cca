package report

import (
	"time"

	"github.com/google/uuid"

	"bikeshare/domain/business/triptable"
	"bikeshare/domain/entities"
	"bikeshare/statistics"
)

const (
	reportKind = "bikeshare-statistics"
	producer   = "explorer"
)

// Report contains the statistics of one selection cycle
// + Metadata: city, kind and the filters applied
// + ReportID: unique ID of the report
// + CycleID: ID of the selection cycle that produced the report
// + Month, Weekday: filter labels, "All" when not filtered
// + Summary: statistic groups
type Report struct {
	Metadata  entities.Metadata   `json:"metadata"`
	ReportID  string              `json:"report_id"`
	CycleID   string              `json:"cycle_id"`
	CreatedAt time.Time           `json:"created_at"`
	Month     string              `json:"month"`
	Weekday   string              `json:"weekday"`
	Summary   *statistics.Summary `json:"summary"`
}

func NewReport(cycleID string, view *triptable.FilteredView, summary *statistics.Summary) *Report {
	criteria := view.Criteria()
	metadata := entities.NewMetadata(view.Table().GetCity(), reportKind, producer, criteria.String())
	return &Report{
		Metadata:  metadata,
		ReportID:  uuid.NewString(),
		CycleID:   cycleID,
		CreatedAt: time.Now().UTC(),
		Month:     criteria.MonthLabel(),
		Weekday:   criteria.WeekdayLabel(),
		Summary:   summary,
	}
}

func (r *Report) GetMetadata() entities.Metadata {
	return r.Metadata
}

func (r *Report) GetReportID() string {
	return r.ReportID
}

// AngelaMos | 2026
// service.go

package export

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
	"github.com/carterperez-dev/templates/casetrail/internal/timeline"
)

// TimelineSource loads an owned case together with its chronological events.
type TimelineSource interface {
	Timeline(ctx context.Context, p core.Principal, caseID int64) (*timeline.Case, []timeline.Event, error)
}

type Service struct {
	timelines TimelineSource
	now       func() time.Time
}

func NewService(timelines TimelineSource) *Service {
	return &Service{timelines: timelines, now: time.Now}
}

// ExportCase builds the report for a case the principal owns. Any other case
// id is reported as not found.
func (s *Service) ExportCase(
	ctx context.Context,
	p core.Principal,
	caseID int64,
) (*Report, error) {
	c, events, err := s.timelines.Timeline(ctx, p, caseID)
	if err != nil {
		return nil, err
	}

	report := Build(c, events, s.now())

	core.AddSpanEvent(ctx, "case.exported",
		attribute.Int64("case_id", caseID),
		attribute.Int("event_count", len(events)),
	)

	return report, nil
}

// AngelaMos | 2026
// service.go

package communication

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Add(
	ctx context.Context,
	p core.Principal,
	req CreateCommunicationRequest,
) (*Communication, error) {
	if err := p.Require("add communication"); err != nil {
		return nil, err
	}

	date, err := core.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	clock, err := core.ParseClock(req.Time)
	if err != nil {
		return nil, err
	}

	required := []struct{ field, value string }{
		{"platform", req.Platform},
		{"sender", req.Sender},
		{"recipient", req.Recipient},
		{"message_content", req.MessageContent},
		{"neutral_summary", req.NeutralSummary},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, core.InvalidInputf("%s is required", f.field)
		}
	}

	marking := strings.TrimSpace(req.Marking)
	if marking == "" {
		marking = DefaultMarking
	}

	c := &Communication{
		UserID:                  p.UserID,
		CommDate:                date,
		CommTime:                clock,
		Platform:                strings.TrimSpace(req.Platform),
		Sender:                  strings.TrimSpace(req.Sender),
		Recipient:               strings.TrimSpace(req.Recipient),
		MessageContent:          req.MessageContent,
		NeutralSummary:          req.NeutralSummary,
		EvidenceType:            strings.TrimSpace(req.EvidenceType),
		EvidenceSummary:         req.EvidenceSummary,
		CourtOrderRelevance:     req.CourtOrderRelevance,
		MissedExchangeReference: req.MissedExchangeReference,
		RefusalToProvideInfo:    req.RefusalToProvideInfo,
		InappropriateTone:       req.InappropriateTone,
		Marking:                 marking,
		CreatedAt:               s.now().UTC(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// List returns the user's communications, newest first.
func (s *Service) List(ctx context.Context, p core.Principal) ([]Communication, error) {
	if err := p.Require("list communications"); err != nil {
		return nil, err
	}

	return s.repo.ListByUser(ctx, p.UserID)
}

// Delete answers ErrNotFound for another user's record as well as a missing
// one, so ids owned by others are not disclosed.
func (s *Service) Delete(ctx context.Context, p core.Principal, id int64) error {
	if err := p.Require("delete communication"); err != nil {
		return err
	}

	if err := s.repo.DeleteOwned(ctx, id, p.UserID); err != nil {
		return err
	}

	core.AddSpanEvent(ctx, "communication.deleted", attribute.Int64("communication_id", id))
	return nil
}

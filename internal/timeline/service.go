// AngelaMos | 2026
// service.go

package timeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
)

type Service struct {
	db   *sqlx.DB
	repo Repository
	now  func() time.Time
}

func NewService(db *sqlx.DB) *Service {
	return &Service{
		db:   db,
		repo: NewRepository(db),
		now:  time.Now,
	}
}

// Dashboard is the signed-in user's cases and the most recent events
// across all of them.
type Dashboard struct {
	Cases        []Case
	RecentEvents []RecentEvent
}

// DeleteResult counts the rows removed along with a case.
type DeleteResult struct {
	EventsDeleted    int64
	DocumentsDeleted int64
}

func (s *Service) inTx(ctx context.Context, fn func(repo Repository) error) error {
	return core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		return fn(NewRepository(tx))
	})
}

func (s *Service) CreateCase(
	ctx context.Context,
	p core.Principal,
	req CreateCaseRequest,
) (*Case, error) {
	if err := p.Require("create case"); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.CaseTitle)
	if title == "" {
		return nil, core.InvalidInputf("case_title is required")
	}

	focus := strings.TrimSpace(req.focus())
	if focus == "" {
		focus = DefaultCaseFocus
	}

	c := &Case{
		UserID:      p.UserID,
		CaseTitle:   title,
		CaseFocus:   focus,
		LegalDomain: LegalDomainFamilyLaw,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.CreateCase(ctx, c); err != nil {
		return nil, err
	}

	core.AddSpanEvent(ctx, "case.created", attribute.Int64("case_id", c.ID))

	return c, nil
}

func (s *Service) GetCase(
	ctx context.Context,
	p core.Principal,
	caseID int64,
) (*Case, error) {
	if err := p.Require("get case"); err != nil {
		return nil, err
	}

	return s.repo.GetOwnedCase(ctx, caseID, p.UserID)
}

func (s *Service) ListCases(ctx context.Context, p core.Principal) ([]Case, error) {
	if err := p.Require("list cases"); err != nil {
		return nil, err
	}

	return s.repo.ListCases(ctx, p.UserID)
}

// DeleteCase removes the case together with its events and documents in
// one transaction. Communications are not tied to cases and are untouched.
func (s *Service) DeleteCase(
	ctx context.Context,
	p core.Principal,
	caseID int64,
) (*DeleteResult, error) {
	if err := p.Require("delete case"); err != nil {
		return nil, err
	}

	var res DeleteResult
	err := s.inTx(ctx, func(repo Repository) error {
		if _, err := repo.GetOwnedCase(ctx, caseID, p.UserID); err != nil {
			return err
		}

		events, err := repo.DeleteEvents(ctx, caseID)
		if err != nil {
			return err
		}

		docs, err := repo.DeleteDocuments(ctx, caseID)
		if err != nil {
			return err
		}

		if err := repo.DeleteCase(ctx, caseID); err != nil {
			return err
		}

		res = DeleteResult{EventsDeleted: events, DocumentsDeleted: docs}
		return nil
	})
	if err != nil {
		return nil, err
	}

	core.AddSpanEvent(ctx, "case.deleted",
		attribute.Int64("case_id", caseID),
		attribute.Int64("events_deleted", res.EventsDeleted),
		attribute.Int64("documents_deleted", res.DocumentsDeleted),
	)

	return &res, nil
}

func (s *Service) CreateEvent(
	ctx context.Context,
	p core.Principal,
	req CreateEventRequest,
) (*Event, error) {
	if err := p.Require("create event"); err != nil {
		return nil, err
	}

	e, err := s.newEvent(req)
	if err != nil {
		return nil, err
	}

	err = s.inTx(ctx, func(repo Repository) error {
		if _, err := repo.GetOwnedCase(ctx, e.CaseID, p.UserID); err != nil {
			return err
		}
		return repo.CreateEvent(ctx, e)
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) newEvent(req CreateEventRequest) (*Event, error) {
	if req.CaseID <= 0 {
		return nil, core.InvalidInputf("case_id is required")
	}

	if strings.TrimSpace(req.EventDate) == "" {
		return nil, core.InvalidInputf("event_date is required")
	}
	date, err := core.ParseDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.EventTitle)
	if title == "" {
		return nil, core.InvalidInputf("event_title is required")
	}

	var clock *string
	if strings.TrimSpace(req.EventTime) != "" {
		v, err := core.ParseClock(req.EventTime)
		if err != nil {
			return nil, err
		}
		clock = &v
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = DefaultCategory
	}

	impact := req.ImpactLevel
	if impact == "" {
		impact = ImpactMedium
	}

	return &Event{
		CaseID:           req.CaseID,
		EventDate:        date,
		EventTime:        clock,
		EventTitle:       title,
		EventDescription: req.EventDescription,
		Category:         category,
		EvidenceType:     strings.TrimSpace(req.EvidenceType),
		ImpactLevel:      impact,
		WitnessPresent:   req.WitnessPresent,
		PoliceCalled:     req.PoliceCalled,
		CreatedAt:        s.now().UTC(),
	}, nil
}

// ListEvents returns the events of an owned case, oldest first.
func (s *Service) ListEvents(
	ctx context.Context,
	p core.Principal,
	caseID int64,
) ([]Event, error) {
	_, events, err := s.Timeline(ctx, p, caseID)
	return events, err
}

// Timeline returns an owned case with its events, oldest first.
func (s *Service) Timeline(
	ctx context.Context,
	p core.Principal,
	caseID int64,
) (*Case, []Event, error) {
	if err := p.Require("list events"); err != nil {
		return nil, nil, err
	}

	c, err := s.repo.GetOwnedCase(ctx, caseID, p.UserID)
	if err != nil {
		return nil, nil, err
	}

	events, err := s.repo.ListEvents(ctx, caseID)
	if err != nil {
		return nil, nil, err
	}

	return c, events, nil
}

func (s *Service) Dashboard(ctx context.Context, p core.Principal) (*Dashboard, error) {
	if err := p.Require("dashboard"); err != nil {
		return nil, err
	}

	cases, err := s.repo.ListCases(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.RecentEvents(ctx, p.UserID, recentEventsLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{Cases: cases, RecentEvents: recent}, nil
}

// AddDocument records metadata for an uploaded file. The stored filename is
// generated so that client names never reach the storage layer.
func (s *Service) AddDocument(
	ctx context.Context,
	p core.Principal,
	req CreateDocumentRequest,
) (*Document, error) {
	if err := p.Require("add document"); err != nil {
		return nil, err
	}

	if req.CaseID <= 0 {
		return nil, core.InvalidInputf("case_id is required")
	}

	original := filepath.Base(strings.TrimSpace(req.OriginalFilename))
	if original == "." || original == string(filepath.Separator) {
		return nil, core.InvalidInputf("original_filename is required")
	}

	if req.FileSize < 0 {
		return nil, core.InvalidInputf("file_size must not be negative")
	}

	d := &Document{
		CaseID:           req.CaseID,
		Filename:         storedFilename(original),
		OriginalFilename: original,
		DocumentType:     strings.TrimSpace(req.DocumentType),
		UploadDate:       s.now().UTC(),
		FileSize:         req.FileSize,
		EvidenceCategory: strings.TrimSpace(req.EvidenceCategory),
	}

	err := s.inTx(ctx, func(repo Repository) error {
		if _, err := repo.GetOwnedCase(ctx, d.CaseID, p.UserID); err != nil {
			return err
		}
		return repo.CreateDocument(ctx, d)
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) ListDocuments(
	ctx context.Context,
	p core.Principal,
	caseID int64,
) ([]Document, error) {
	if err := p.Require("list documents"); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetOwnedCase(ctx, caseID, p.UserID); err != nil {
		return nil, err
	}

	return s.repo.ListDocuments(ctx, caseID)
}

func storedFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if len(ext) > 10 {
		ext = ""
	}
	return fmt.Sprintf("%s%s", uuid.NewString(), ext)
}

// AngelaMos | 2026
// repository.go

package timeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
)

type Repository interface {
	CreateCase(ctx context.Context, c *Case) error
	GetOwnedCase(ctx context.Context, caseID, userID int64) (*Case, error)
	ListCases(ctx context.Context, userID int64) ([]Case, error)
	DeleteCase(ctx context.Context, caseID int64) error

	CreateEvent(ctx context.Context, e *Event) error
	ListEvents(ctx context.Context, caseID int64) ([]Event, error)
	RecentEvents(ctx context.Context, userID int64, limit int) ([]RecentEvent, error)
	DeleteEvents(ctx context.Context, caseID int64) (int64, error)

	CreateDocument(ctx context.Context, d *Document) error
	ListDocuments(ctx context.Context, caseID int64) ([]Document, error)
	DeleteDocuments(ctx context.Context, caseID int64) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const (
	caseColumns = `id, user_id, case_title, case_focus, legal_domain, created_at`

	eventColumns = `e.id, e.case_id, e.event_date, e.event_time, e.event_title,
		       e.event_description, e.category, e.evidence_type, e.impact_level,
		       e.witness_present, e.police_called, e.created_at`

	documentColumns = `id, case_id, filename, original_filename, document_type,
		       upload_date, file_size, evidence_category`
)

func (r *repository) CreateCase(ctx context.Context, c *Case) error {
	query := r.db.Rebind(`
		INSERT INTO cases (user_id, case_title, case_focus, legal_domain, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.db.GetContext(ctx, &c.ID, query,
		c.UserID,
		c.CaseTitle,
		c.CaseFocus,
		c.LegalDomain,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create case: %w", err)
	}

	return nil
}

// GetOwnedCase returns ErrNotFound both for a missing case and for a case
// owned by someone else.
func (r *repository) GetOwnedCase(
	ctx context.Context,
	caseID, userID int64,
) (*Case, error) {
	query := r.db.Rebind(`
		SELECT ` + caseColumns + `
		FROM cases
		WHERE id = ? AND user_id = ?`)

	var c Case
	err := r.db.GetContext(ctx, &c, query, caseID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get case: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}

	return &c, nil
}

func (r *repository) ListCases(ctx context.Context, userID int64) ([]Case, error) {
	query := r.db.Rebind(`
		SELECT ` + caseColumns + `
		FROM cases
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`)

	cases := []Case{}
	if err := r.db.SelectContext(ctx, &cases, query, userID); err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	return cases, nil
}

func (r *repository) DeleteCase(ctx context.Context, caseID int64) error {
	query := r.db.Rebind(`DELETE FROM cases WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, caseID)
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete case: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) CreateEvent(ctx context.Context, e *Event) error {
	query := r.db.Rebind(`
		INSERT INTO timeline_events (
			case_id, event_date, event_time, event_title, event_description,
			category, evidence_type, impact_level, witness_present,
			police_called, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.db.GetContext(ctx, &e.ID, query,
		e.CaseID,
		e.EventDate,
		e.EventTime,
		e.EventTitle,
		e.EventDescription,
		e.Category,
		e.EvidenceType,
		e.ImpactLevel,
		e.WitnessPresent,
		e.PoliceCalled,
		e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

func (r *repository) ListEvents(ctx context.Context, caseID int64) ([]Event, error) {
	query := r.db.Rebind(`
		SELECT ` + eventColumns + `
		FROM timeline_events e
		WHERE e.case_id = ?
		ORDER BY e.event_date ASC, e.id ASC`)

	events := []Event{}
	if err := r.db.SelectContext(ctx, &events, query, caseID); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

func (r *repository) RecentEvents(
	ctx context.Context,
	userID int64,
	limit int,
) ([]RecentEvent, error) {
	query := r.db.Rebind(`
		SELECT ` + eventColumns + `, c.case_title
		FROM timeline_events e
		JOIN cases c ON c.id = e.case_id
		WHERE c.user_id = ?
		ORDER BY e.event_date DESC, e.id DESC
		LIMIT ?`)

	events := []RecentEvent{}
	if err := r.db.SelectContext(ctx, &events, query, userID, limit); err != nil {
		return nil, fmt.Errorf("recent events: %w", err)
	}

	return events, nil
}

func (r *repository) DeleteEvents(ctx context.Context, caseID int64) (int64, error) {
	query := r.db.Rebind(`DELETE FROM timeline_events WHERE case_id = ?`)

	result, err := r.db.ExecContext(ctx, query, caseID)
	if err != nil {
		return 0, fmt.Errorf("delete events: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete events: %w", err)
	}

	return rows, nil
}

func (r *repository) CreateDocument(ctx context.Context, d *Document) error {
	query := r.db.Rebind(`
		INSERT INTO documents (
			case_id, filename, original_filename, document_type,
			upload_date, file_size, evidence_category
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.db.GetContext(ctx, &d.ID, query,
		d.CaseID,
		d.Filename,
		d.OriginalFilename,
		d.DocumentType,
		d.UploadDate,
		d.FileSize,
		d.EvidenceCategory,
	)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	return nil
}

func (r *repository) ListDocuments(
	ctx context.Context,
	caseID int64,
) ([]Document, error) {
	query := r.db.Rebind(`
		SELECT ` + documentColumns + `
		FROM documents
		WHERE case_id = ?
		ORDER BY upload_date DESC, id DESC`)

	docs := []Document{}
	if err := r.db.SelectContext(ctx, &docs, query, caseID); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}

func (r *repository) DeleteDocuments(
	ctx context.Context,
	caseID int64,
) (int64, error) {
	query := r.db.Rebind(`DELETE FROM documents WHERE case_id = ?`)

	result, err := r.db.ExecContext(ctx, query, caseID)
	if err != nil {
		return 0, fmt.Errorf("delete documents: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete documents: %w", err)
	}

	return rows, nil
}

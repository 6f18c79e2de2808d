// AngelaMos | 2026
// repository.go

package communication

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Communication) error
	ListByUser(ctx context.Context, userID int64) ([]Communication, error)
	DeleteOwned(ctx context.Context, id, userID int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Communication) error {
	query := r.db.Rebind(`
		INSERT INTO communications (
			user_id, comm_date, comm_time, platform, sender, recipient,
			message_content, neutral_summary, evidence_type, evidence_summary,
			court_order_relevance, missed_exchange_reference,
			refusal_to_provide_info, inappropriate_tone, marking, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.db.GetContext(ctx, &c.ID, query,
		c.UserID,
		c.CommDate,
		c.CommTime,
		c.Platform,
		c.Sender,
		c.Recipient,
		c.MessageContent,
		c.NeutralSummary,
		c.EvidenceType,
		c.EvidenceSummary,
		c.CourtOrderRelevance,
		c.MissedExchangeReference,
		c.RefusalToProvideInfo,
		c.InappropriateTone,
		c.Marking,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create communication: %w", err)
	}

	return nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]Communication, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, comm_date, comm_time, platform, sender, recipient,
		       message_content, neutral_summary, evidence_type, evidence_summary,
		       court_order_relevance, missed_exchange_reference,
		       refusal_to_provide_info, inappropriate_tone, marking, created_at
		FROM communications
		WHERE user_id = ?
		ORDER BY comm_date DESC, comm_time DESC, id DESC`)

	comms := []Communication{}
	if err := r.db.SelectContext(ctx, &comms, query, userID); err != nil {
		return nil, fmt.Errorf("list communications: %w", err)
	}

	return comms, nil
}

// DeleteOwned reports ErrNotFound when the row is missing or belongs to a
// different user.
func (r *repository) DeleteOwned(ctx context.Context, id, userID int64) error {
	query := r.db.Rebind(`DELETE FROM communications WHERE id = ? AND user_id = ?`)

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete communication: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete communication: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete communication: %w", core.ErrNotFound)
	}

	return nil
}

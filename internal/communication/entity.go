// AngelaMos | 2026
// entity.go

package communication

import (
	"time"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
)

// Communication is a logged message exchange. It belongs to a user rather
// than a case and outlives case deletion.
type Communication struct {
	ID                      int64     `db:"id"`
	UserID                  int64     `db:"user_id"`
	CommDate                core.Date `db:"comm_date"`
	CommTime                string    `db:"comm_time"`
	Platform                string    `db:"platform"`
	Sender                  string    `db:"sender"`
	Recipient               string    `db:"recipient"`
	MessageContent          string    `db:"message_content"`
	NeutralSummary          string    `db:"neutral_summary"`
	EvidenceType            string    `db:"evidence_type"`
	EvidenceSummary         string    `db:"evidence_summary"`
	CourtOrderRelevance     bool      `db:"court_order_relevance"`
	MissedExchangeReference bool      `db:"missed_exchange_reference"`
	RefusalToProvideInfo    bool      `db:"refusal_to_provide_info"`
	InappropriateTone       bool      `db:"inappropriate_tone"`
	Marking                 string    `db:"marking"`
	CreatedAt               time.Time `db:"created_at"`
}

const DefaultMarking = "documentation"

// AngelaMos | 2026
// entity.go

package timeline

import (
	"time"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
)

type Case struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	CaseTitle   string    `db:"case_title"`
	CaseFocus   string    `db:"case_focus"`
	LegalDomain string    `db:"legal_domain"`
	CreatedAt   time.Time `db:"created_at"`
}

type Event struct {
	ID               int64     `db:"id"`
	CaseID           int64     `db:"case_id"`
	EventDate        core.Date `db:"event_date"`
	EventTime        *string   `db:"event_time"`
	EventTitle       string    `db:"event_title"`
	EventDescription string    `db:"event_description"`
	Category         string    `db:"category"`
	EvidenceType     string    `db:"evidence_type"`
	ImpactLevel      string    `db:"impact_level"`
	WitnessPresent   bool      `db:"witness_present"`
	PoliceCalled     bool      `db:"police_called"`
	CreatedAt        time.Time `db:"created_at"`
}

// RecentEvent is an event listed outside its case, carrying the case title.
type RecentEvent struct {
	Event
	CaseTitle string `db:"case_title"`
}

type Document struct {
	ID               int64     `db:"id"`
	CaseID           int64     `db:"case_id"`
	Filename         string    `db:"filename"`
	OriginalFilename string    `db:"original_filename"`
	DocumentType     string    `db:"document_type"`
	UploadDate       time.Time `db:"upload_date"`
	FileSize         int64     `db:"file_size"`
	EvidenceCategory string    `db:"evidence_category"`
}

const (
	LegalDomainFamilyLaw = "FAMILY_LAW"
	DefaultCaseFocus     = "CUSTODY_PARENTING"
	DefaultCategory      = "PARENTING_TIME"
)

const (
	ImpactLow      = "low"
	ImpactMedium   = "medium"
	ImpactHigh     = "high"
	ImpactCritical = "critical"
)

const recentEventsLimit = 5

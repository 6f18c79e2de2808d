// AngelaMos | 2026
// dto.go

package timeline

import (
	"time"
)

// CreateCaseRequest accepts the focus as case_focus or the older case_type
// key. A legal_domain sent by the client has no field to land in.
type CreateCaseRequest struct {
	CaseTitle string `json:"case_title" validate:"max=200"`
	CaseFocus string `json:"case_focus" validate:"max=100"`
	CaseType  string `json:"case_type"  validate:"max=100"`
}

func (r CreateCaseRequest) focus() string {
	if r.CaseFocus != "" {
		return r.CaseFocus
	}
	return r.CaseType
}

type CreateEventRequest struct {
	CaseID           int64  `json:"case_id"`
	EventDate        string `json:"event_date"`
	EventTime        string `json:"event_time"`
	EventTitle       string `json:"event_title"       validate:"max=200"`
	EventDescription string `json:"event_description"`
	Category         string `json:"category"          validate:"max=50"`
	EvidenceType     string `json:"evidence_type"     validate:"max=100"`
	ImpactLevel      string `json:"impact_level"      validate:"omitempty,oneof=low medium high critical"`
	WitnessPresent   bool   `json:"witness_present"`
	PoliceCalled     bool   `json:"police_called"`
}

type CreateDocumentRequest struct {
	CaseID           int64  `json:"case_id"`
	OriginalFilename string `json:"original_filename" validate:"max=255"`
	DocumentType     string `json:"document_type"     validate:"max=50"`
	FileSize         int64  `json:"file_size"         validate:"gte=0"`
	EvidenceCategory string `json:"evidence_category" validate:"max=100"`
}

type CreateCaseResponse struct {
	Success bool  `json:"success"`
	CaseID  int64 `json:"case_id"`
}

type CreateEventResponse struct {
	Success bool  `json:"success"`
	EventID int64 `json:"event_id"`
}

type CreateDocumentResponse struct {
	Success    bool   `json:"success"`
	DocumentID int64  `json:"document_id"`
	Filename   string `json:"filename"`
}

type DeleteCaseResponse struct {
	Success          bool  `json:"success"`
	EventsDeleted    int64 `json:"events_deleted"`
	DocumentsDeleted int64 `json:"documents_deleted"`
}

type CaseResponse struct {
	ID          int64     `json:"id"`
	CaseTitle   string    `json:"case_title"`
	CaseFocus   string    `json:"case_focus"`
	LegalDomain string    `json:"legal_domain"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventResponse struct {
	ID               int64     `json:"id"`
	CaseID           int64     `json:"case_id"`
	EventDate        string    `json:"event_date"`
	EventTime        *string   `json:"event_time"`
	EventTitle       string    `json:"event_title"`
	EventDescription string    `json:"event_description"`
	Category         string    `json:"category"`
	EvidenceType     string    `json:"evidence_type"`
	ImpactLevel      string    `json:"impact_level"`
	WitnessPresent   bool      `json:"witness_present"`
	PoliceCalled     bool      `json:"police_called"`
	CreatedAt        time.Time `json:"created_at"`
}

type DocumentResponse struct {
	ID               int64     `json:"id"`
	CaseID           int64     `json:"case_id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	DocumentType     string    `json:"document_type"`
	UploadDate       time.Time `json:"upload_date"`
	FileSize         int64     `json:"file_size"`
	EvidenceCategory string    `json:"evidence_category"`
}

func ToCaseResponse(c *Case) CaseResponse {
	return CaseResponse{
		ID:          c.ID,
		CaseTitle:   c.CaseTitle,
		CaseFocus:   c.CaseFocus,
		LegalDomain: c.LegalDomain,
		CreatedAt:   c.CreatedAt,
	}
}

func ToCaseResponseList(cases []Case) []CaseResponse {
	out := make([]CaseResponse, 0, len(cases))
	for i := range cases {
		out = append(out, ToCaseResponse(&cases[i]))
	}
	return out
}

func ToEventResponse(e *Event) EventResponse {
	return EventResponse{
		ID:               e.ID,
		CaseID:           e.CaseID,
		EventDate:        e.EventDate.String(),
		EventTime:        e.EventTime,
		EventTitle:       e.EventTitle,
		EventDescription: e.EventDescription,
		Category:         e.Category,
		EvidenceType:     e.EvidenceType,
		ImpactLevel:      e.ImpactLevel,
		WitnessPresent:   e.WitnessPresent,
		PoliceCalled:     e.PoliceCalled,
		CreatedAt:        e.CreatedAt,
	}
}

func ToEventResponseList(events []Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, ToEventResponse(&events[i]))
	}
	return out
}

func ToDocumentResponseList(docs []Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentResponse(d))
	}
	return out
}

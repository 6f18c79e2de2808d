// AngelaMos | 2026
// dto.go

package communication

import (
	"time"
)

type CreateCommunicationRequest struct {
	Date                    string `json:"date"                      validate:"required,datetime=2006-01-02"`
	Time                    string `json:"time"                      validate:"required,datetime=15:04"`
	Platform                string `json:"platform"                  validate:"required,max=50"`
	Sender                  string `json:"sender"                    validate:"required,max=100"`
	Recipient               string `json:"recipient"                 validate:"required,max=100"`
	MessageContent          string `json:"message_content"           validate:"required"`
	NeutralSummary          string `json:"neutral_summary"           validate:"required"`
	EvidenceType            string `json:"evidence_type"             validate:"max=100"`
	EvidenceSummary         string `json:"evidence_summary"`
	CourtOrderRelevance     bool   `json:"court_order_relevance"`
	MissedExchangeReference bool   `json:"missed_exchange_reference"`
	RefusalToProvideInfo    bool   `json:"refusal_to_provide_info"`
	InappropriateTone       bool   `json:"inappropriate_tone"`
	Marking                 string `json:"marking"                   validate:"max=50"`
}

type CreateCommunicationResponse struct {
	Success         bool  `json:"success"`
	CommunicationID int64 `json:"communication_id"`
}

type CommunicationResponse struct {
	ID                      int64     `json:"id"`
	Date                    string    `json:"date"`
	Time                    string    `json:"time"`
	Platform                string    `json:"platform"`
	Sender                  string    `json:"sender"`
	Recipient               string    `json:"recipient"`
	MessageContent          string    `json:"message_content"`
	NeutralSummary          string    `json:"neutral_summary"`
	EvidenceType            string    `json:"evidence_type"`
	EvidenceSummary         string    `json:"evidence_summary"`
	CourtOrderRelevance     bool      `json:"court_order_relevance"`
	MissedExchangeReference bool      `json:"missed_exchange_reference"`
	RefusalToProvideInfo    bool      `json:"refusal_to_provide_info"`
	InappropriateTone       bool      `json:"inappropriate_tone"`
	Marking                 string    `json:"marking"`
	CreatedAt               time.Time `json:"created_at"`
}

func ToCommunicationResponse(c *Communication) CommunicationResponse {
	return CommunicationResponse{
		ID:                      c.ID,
		Date:                    c.CommDate.String(),
		Time:                    c.CommTime,
		Platform:                c.Platform,
		Sender:                  c.Sender,
		Recipient:               c.Recipient,
		MessageContent:          c.MessageContent,
		NeutralSummary:          c.NeutralSummary,
		EvidenceType:            c.EvidenceType,
		EvidenceSummary:         c.EvidenceSummary,
		CourtOrderRelevance:     c.CourtOrderRelevance,
		MissedExchangeReference: c.MissedExchangeReference,
		RefusalToProvideInfo:    c.RefusalToProvideInfo,
		InappropriateTone:       c.InappropriateTone,
		Marking:                 c.Marking,
		CreatedAt:               c.CreatedAt,
	}
}

func ToCommunicationResponseList(comms []Communication) []CommunicationResponse {
	out := make([]CommunicationResponse, 0, len(comms))
	for i := range comms {
		out = append(out, ToCommunicationResponse(&comms[i]))
	}
	return out
}

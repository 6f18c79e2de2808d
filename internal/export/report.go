// AngelaMos | 2026
// report.go

package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/carterperez-dev/templates/casetrail/internal/timeline"
)

const (
	displayDateLayout = "January 02, 2006"
	monthLayout       = "2006-01"
	unspecified       = "Unspecified"
)

var categoryLabels = map[string]string{
	"PARENTING_TIME":      "Parenting Time",
	"MISSED_EXCHANGE":     "Missed Exchange",
	"COMMUNICATION":       "Communication",
	"SCHOOL_EDUCATION":    "School / Education",
	"MEDICAL":             "Medical",
	"SAFETY_CONCERN":      "Safety Concern",
	"COURT_ORDER":         "Court Order Violation",
	"FINANCIAL_SUPPORT":   "Financial / Child Support",
	"SUBSTANCE_ABUSE":     "Substance Abuse",
	"EMOTIONAL_WELLBEING": "Emotional Wellbeing",
	"OTHER":               "Other",
}

type Category struct {
	Code  string
	Label string
}

// Categories lists the labelled category codes ordered by label.
func Categories() []Category {
	out := make([]Category, 0, len(categoryLabels))
	for code, label := range categoryLabels {
		out = append(out, Category{Code: code, Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// CategoryLabel maps a category code to its display label. Codes without a
// registered label are title-cased with underscores read as spaces.
func CategoryLabel(code string) string {
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return unspecified
	}
	return cases.Title(language.English).String(strings.ReplaceAll(code, "_", " "))
}

type Report struct {
	Case            CaseInfo        `json:"case"`
	Events          []EventLine     `json:"events"`
	Summary         Summary         `json:"summary"`
	PatternAnalysis PatternAnalysis `json:"pattern_analysis"`
	EvidenceSummary map[string]int  `json:"evidence_summary"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

type CaseInfo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Focus       string `json:"focus"`
	LegalDomain string `json:"legal_domain"`
	CreatedDate string `json:"created_date"`
}

type EventLine struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	EvidenceType   string `json:"evidence_type"`
	ImpactLevel    string `json:"impact_level"`
	WitnessPresent string `json:"witness_present"`
	PoliceCalled   string `json:"police_called"`
}

type Summary struct {
	TotalEvents      int    `json:"total_events"`
	FirstEventDate   string `json:"first_event_date,omitempty"`
	LastEventDate    string `json:"last_event_date,omitempty"`
	HighImpactEvents int    `json:"high_impact_events"`
	PoliceCalled     int    `json:"police_called"`
	WitnessPresent   int    `json:"witness_present"`
	Narrative        string `json:"narrative"`
}

type Group struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type PatternAnalysis struct {
	ByCategory      []Group      `json:"by_category"`
	ByEvidenceType  []Group      `json:"by_evidence_type"`
	PrimaryPatterns []string     `json:"primary_patterns"`
	PrimaryEvidence []string     `json:"primary_evidence"`
	Monthly         []MonthCount `json:"monthly"`
}

// Build assembles the report for a case from its events, which must already
// be in chronological order.
func Build(c *timeline.Case, events []timeline.Event, now time.Time) *Report {
	r := &Report{
		Case: CaseInfo{
			ID:          c.ID,
			Title:       c.CaseTitle,
			Focus:       c.CaseFocus,
			LegalDomain: c.LegalDomain,
			CreatedDate: c.CreatedAt.Format(displayDateLayout),
		},
		Events:          make([]EventLine, 0, len(events)),
		EvidenceSummary: make(map[string]int),
		GeneratedAt:     now.UTC(),
	}

	categories := make(map[string]int)
	evidence := make(map[string]int)
	months := make(map[string]int)

	for i := range events {
		e := &events[i]
		label := CategoryLabel(e.Category)
		evidenceType := evidenceName(e.EvidenceType)

		r.Events = append(r.Events, EventLine{
			Date:           e.EventDate.Format(displayDateLayout),
			Time:           derefString(e.EventTime),
			Title:          e.EventTitle,
			Description:    e.EventDescription,
			Category:       label,
			EvidenceType:   e.EvidenceType,
			ImpactLevel:    e.ImpactLevel,
			WitnessPresent: yesNo(e.WitnessPresent),
			PoliceCalled:   yesNo(e.PoliceCalled),
		})

		categories[label]++
		evidence[evidenceType]++
		months[e.EventDate.Format(monthLayout)]++

		if e.ImpactLevel == timeline.ImpactHigh || e.ImpactLevel == timeline.ImpactCritical {
			r.Summary.HighImpactEvents++
		}
		if e.PoliceCalled {
			r.Summary.PoliceCalled++
		}
		if e.WitnessPresent {
			r.Summary.WitnessPresent++
		}
	}

	r.Summary.TotalEvents = len(events)
	if len(events) > 0 {
		r.Summary.FirstEventDate = r.Events[0].Date
		r.Summary.LastEventDate = r.Events[len(r.Events)-1].Date
	}
	r.Summary.Narrative = narrative(c.CaseTitle, &r.Summary)

	for name, n := range evidence {
		r.EvidenceSummary[name] = n
	}

	r.PatternAnalysis = PatternAnalysis{
		ByCategory:     rank(categories),
		ByEvidenceType: rank(evidence),
		Monthly:        monthly(months),
	}
	r.PatternAnalysis.PrimaryPatterns = leaders(r.PatternAnalysis.ByCategory)
	r.PatternAnalysis.PrimaryEvidence = leaders(r.PatternAnalysis.ByEvidenceType)

	return r
}

// rank orders groups by count descending, then by name.
func rank(counts map[string]int) []Group {
	groups := make([]Group, 0, len(counts))
	for name, n := range counts {
		groups = append(groups, Group{Name: name, Count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Name < groups[j].Name
	})
	return groups
}

// leaders returns every group tied for the highest count.
func leaders(ranked []Group) []string {
	out := []string{}
	for _, g := range ranked {
		if g.Count != ranked[0].Count {
			break
		}
		out = append(out, g.Name)
	}
	return out
}

func monthly(counts map[string]int) []MonthCount {
	out := make([]MonthCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, MonthCount{Month: month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func narrative(title string, s *Summary) string {
	if s.TotalEvents == 0 {
		return fmt.Sprintf("No events have been recorded for %q.", title)
	}

	var b strings.Builder
	if s.FirstEventDate == s.LastEventDate {
		fmt.Fprintf(&b, "%q documents %s on %s.",
			title, plural(s.TotalEvents, "event"), s.FirstEventDate)
	} else {
		fmt.Fprintf(&b, "%q documents %s between %s and %s.",
			title, plural(s.TotalEvents, "event"), s.FirstEventDate, s.LastEventDate)
	}

	if s.HighImpactEvents > 0 {
		verb := "were"
		if s.HighImpactEvents == 1 {
			verb = "was"
		}
		fmt.Fprintf(&b, " %s %s rated high or critical impact.",
			plural(s.HighImpactEvents, "event"), verb)
	}
	if s.PoliceCalled > 0 {
		fmt.Fprintf(&b, " Police were called for %s.", plural(s.PoliceCalled, "event"))
	}
	if s.WitnessPresent > 0 {
		fmt.Fprintf(&b, " A witness was present for %s.", plural(s.WitnessPresent, "event"))
	}

	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func evidenceName(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return unspecified
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// AngelaMos | 2026
// report_test.go

package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
	"github.com/carterperez-dev/templates/casetrail/internal/timeline"
)

func event(date, category, evidence, impact string, witness, police bool) timeline.Event {
	d, err := core.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return timeline.Event{
		EventDate:      d,
		EventTitle:     category + " on " + date,
		Category:       category,
		EvidenceType:   evidence,
		ImpactLevel:    impact,
		WitnessPresent: witness,
		PoliceCalled:   police,
	}
}

var testCase = &timeline.Case{
	ID:          3,
	CaseTitle:   "Custody Matter",
	CaseFocus:   "CUSTODY_PARENTING",
	LegalDomain: timeline.LegalDomainFamilyLaw,
	CreatedAt:   time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC),
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Parenting Time", CategoryLabel("PARENTING_TIME"))
	assert.Equal(t, "Court Order Violation", CategoryLabel("COURT_ORDER"))
	assert.Equal(t, "Holiday Schedule", CategoryLabel("HOLIDAY_SCHEDULE"))
	assert.Equal(t, "Unspecified", CategoryLabel(""))
}

func TestBuild_FormatsEvents(t *testing.T) {
	clock := "18:30"
	e := event("2024-03-05", "PARENTING_TIME", "text message", timeline.ImpactHigh, true, false)
	e.EventTime = &clock
	e.EventDescription = "Child returned two hours late"

	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	r := Build(testCase, []timeline.Event{e}, now)

	assert.Equal(t, "Custody Matter", r.Case.Title)
	assert.Equal(t, "January 02, 2024", r.Case.CreatedDate)
	assert.Equal(t, now, r.GeneratedAt)

	require.Len(t, r.Events, 1)
	line := r.Events[0]
	assert.Equal(t, "March 05, 2024", line.Date)
	assert.Equal(t, "18:30", line.Time)
	assert.Equal(t, "Parenting Time", line.Category)
	assert.Equal(t, "Yes", line.WitnessPresent)
	assert.Equal(t, "No", line.PoliceCalled)
	assert.Equal(t, "Child returned two hours late", line.Description)
}

func TestBuild_SummaryAndPatterns(t *testing.T) {
	events := []timeline.Event{
		event("2024-01-10", "PARENTING_TIME", "text message", timeline.ImpactMedium, false, false),
		event("2024-01-20", "COMMUNICATION", "", timeline.ImpactHigh, true, false),
		event("2024-02-03", "PARENTING_TIME", "text message", timeline.ImpactCritical, false, true),
		event("2024-02-15", "COMMUNICATION", "email", timeline.ImpactLow, true, false),
		event("2024-03-01", "MEDICAL", "text message", timeline.ImpactMedium, false, false),
	}

	r := Build(testCase, events, time.Now())

	assert.Equal(t, 5, r.Summary.TotalEvents)
	assert.Equal(t, "January 10, 2024", r.Summary.FirstEventDate)
	assert.Equal(t, "March 01, 2024", r.Summary.LastEventDate)
	assert.Equal(t, 2, r.Summary.HighImpactEvents)
	assert.Equal(t, 1, r.Summary.PoliceCalled)
	assert.Equal(t, 2, r.Summary.WitnessPresent)
	assert.Equal(t,
		`"Custody Matter" documents 5 events between January 10, 2024 and March 01, 2024.`+
			` 2 events were rated high or critical impact.`+
			` Police were called for 1 event.`+
			` A witness was present for 2 events.`,
		r.Summary.Narrative,
	)

	assert.Equal(t, []Group{
		{Name: "Communication", Count: 2},
		{Name: "Parenting Time", Count: 2},
		{Name: "Medical", Count: 1},
	}, r.PatternAnalysis.ByCategory)
	assert.Equal(t, []string{"Communication", "Parenting Time"}, r.PatternAnalysis.PrimaryPatterns)

	assert.Equal(t, []Group{
		{Name: "text message", Count: 3},
		{Name: "Unspecified", Count: 1},
		{Name: "email", Count: 1},
	}, r.PatternAnalysis.ByEvidenceType)
	assert.Equal(t, []string{"text message"}, r.PatternAnalysis.PrimaryEvidence)

	assert.Equal(t, []MonthCount{
		{Month: "2024-01", Count: 2},
		{Month: "2024-02", Count: 2},
		{Month: "2024-03", Count: 1},
	}, r.PatternAnalysis.Monthly)

	assert.Equal(t, map[string]int{
		"text message": 3,
		"email":        1,
		"Unspecified":  1,
	}, r.EvidenceSummary)
}

func TestBuild_NoEvents(t *testing.T) {
	r := Build(testCase, nil, time.Now())

	assert.Empty(t, r.Events)
	assert.NotNil(t, r.Events)
	assert.Equal(t, 0, r.Summary.TotalEvents)
	assert.Empty(t, r.Summary.FirstEventDate)
	assert.Equal(t, `No events have been recorded for "Custody Matter".`, r.Summary.Narrative)
	assert.Empty(t, r.PatternAnalysis.PrimaryPatterns)
	assert.Empty(t, r.EvidenceSummary)
}

func TestBuild_SingleDay(t *testing.T) {
	r := Build(testCase, []timeline.Event{
		event("2024-05-01", "MEDICAL", "report", timeline.ImpactHigh, false, false),
	}, time.Now())

	assert.Equal(t,
		`"Custody Matter" documents 1 event on May 01, 2024. 1 event was rated high or critical impact.`,
		r.Summary.Narrative,
	)
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)

	for i := 1; i < len(cats); i++ {
		assert.Less(t, cats[i-1].Label, cats[i].Label)
	}
	for _, c := range cats {
		assert.Equal(t, c.Label, CategoryLabel(c.Code))
	}
}

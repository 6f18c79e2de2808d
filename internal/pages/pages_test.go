// AngelaMos | 2026
// pages_test.go

package pages

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/casetrail/internal/communication"
	"github.com/carterperez-dev/templates/casetrail/internal/core"
	"github.com/carterperez-dev/templates/casetrail/internal/middleware"
	"github.com/carterperez-dev/templates/casetrail/internal/timeline"
	"github.com/carterperez-dev/templates/casetrail/internal/user"
)

const ownerID = 1

type fakeTimelines struct {
	cases  []timeline.Case
	events []timeline.Event
	err    error
}

func (f *fakeTimelines) Dashboard(_ context.Context, p core.Principal) (*timeline.Dashboard, error) {
	if f.err != nil {
		return nil, f.err
	}
	d := &timeline.Dashboard{Cases: f.cases}
	for _, e := range f.events {
		d.RecentEvents = append(d.RecentEvents, timeline.RecentEvent{Event: e, CaseTitle: f.cases[0].CaseTitle})
	}
	return d, nil
}

func (f *fakeTimelines) Timeline(_ context.Context, p core.Principal, caseID int64) (*timeline.Case, []timeline.Event, error) {
	for i := range f.cases {
		if f.cases[i].ID == caseID && f.cases[i].UserID == p.UserID {
			return &f.cases[i], f.events, nil
		}
	}
	return nil, nil, core.ErrNotFound
}

func (f *fakeTimelines) ListCases(_ context.Context, p core.Principal) ([]timeline.Case, error) {
	return f.cases, nil
}

type fakeComms struct {
	comms []communication.Communication
}

func (f *fakeComms) List(_ context.Context, p core.Principal) ([]communication.Communication, error) {
	return f.comms, nil
}

type fakeUsers struct{}

func (fakeUsers) GetMe(_ context.Context, p core.Principal) (*user.User, error) {
	if err := p.Require("get me"); err != nil {
		return nil, err
	}
	if p.UserID != ownerID && p.UserID != 2 {
		return nil, core.ErrNotFound
	}
	return &user.User{ID: p.UserID, Email: "a@x.com", FirstName: "Alex"}, nil
}

func mustDate(t *testing.T, s string) core.Date {
	t.Helper()
	d, err := core.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newTestRouter(t *testing.T, tl *fakeTimelines, comms *fakeComms) http.Handler {
	t.Helper()

	h, err := NewHandler(tl, comms, fakeUsers{})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			p := core.Anonymous()
			switch req.Header.Get("X-Test-User") {
			case "1":
				p.UserID = ownerID
			case "2":
				p.UserID = 2
			case "9":
				p.UserID = 9
			}
			next.ServeHTTP(w, req.WithContext(middleware.WithPrincipal(req.Context(), p)))
		})
	})
	h.RegisterRoutes(r)
	return r
}

func get(h http.Handler, path, userHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userHeader != "" {
		req.Header.Set("X-Test-User", userHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func fixtures(t *testing.T) (*fakeTimelines, *fakeComms) {
	t.Helper()

	clock := "18:30"
	tl := &fakeTimelines{
		cases: []timeline.Case{{
			ID:        5,
			UserID:    ownerID,
			CaseTitle: "Custody <Matter>",
			CaseFocus: timeline.DefaultCaseFocus,
			CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		}},
		events: []timeline.Event{{
			ID:           1,
			CaseID:       5,
			EventDate:    mustDate(t, "2024-03-05"),
			EventTime:    &clock,
			EventTitle:   "Missed pickup",
			Category:     "PARENTING_TIME",
			ImpactLevel:  timeline.ImpactHigh,
			PoliceCalled: true,
		}},
	}
	comms := &fakeComms{comms: []communication.Communication{{
		ID:             3,
		CommDate:       mustDate(t, "2024-02-01"),
		CommTime:       "09:15",
		Platform:       "email",
		Sender:         "Parent A",
		Recipient:      "Parent B",
		NeutralSummary: "Schedule request",
		Marking:        communication.DefaultMarking,
	}}}
	return tl, comms
}

func TestIndex(t *testing.T) {
	tl, comms := fixtures(t)
	h := newTestRouter(t, tl, comms)

	rec := get(h, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `data-endpoint="/api/login"`)

	rec = get(h, "/", "1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestProtectedPagesRedirectAnonymous(t *testing.T) {
	tl, comms := fixtures(t)
	h := newTestRouter(t, tl, comms)

	for _, path := range []string{"/dashboard", "/timeline/5", "/timeline-event", "/communication-log"} {
		rec := get(h, path, "")
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/", rec.Header().Get("Location"), path)
	}
}

func TestDashboard(t *testing.T) {
	tl, comms := fixtures(t)
	h := newTestRouter(t, tl, comms)

	rec := get(h, "/dashboard", "1")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Welcome, Alex")
	assert.Contains(t, body, `href="/timeline/5"`)
	assert.Contains(t, body, "Custody &lt;Matter&gt;")
	assert.NotContains(t, body, "Custody <Matter>")
	assert.Contains(t, body, "March 05, 2024")
	assert.Contains(t, body, "Parenting Time")
}

func TestDashboard_ServiceError(t *testing.T) {
	tl, comms := fixtures(t)
	tl.err = errors.New("database is locked")
	h := newTestRouter(t, tl, comms)

	rec := get(h, "/dashboard", "1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "database is locked")
}

func TestTimeline(t *testing.T) {
	tl, comms := fixtures(t)
	h := newTestRouter(t, tl, comms)

	rec := get(h, "/timeline/5", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Missed pickup")
	assert.Contains(t, body, "March 05, 2024 18:30")
	assert.Contains(t, body, "police Yes")
	assert.Contains(t, body, "/api/export/5?download=1")

	rec = get(h, "/timeline/5", "2")
	assert.Equal(t, http.StatusFound, rec.Code, "not the owner")
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = get(h, "/timeline/abc", "1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestTimelineEventForm(t *testing.T) {
	tl, comms := fixtures(t)
	h := newTestRouter(t, tl, comms)

	rec := get(h, "/timeline-event?case_id=5", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<option value="5" selected>`)
	assert.Contains(t, body, `<option value="PARENTING_TIME" selected>Parenting Time</option>`)

	tl.cases = nil
	rec = get(h, "/timeline-event", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Create a case")
}

func TestCommunicationLog(t *testing.T) {
	tl, comms := fixtures(t)
	h := newTestRouter(t, tl, comms)

	rec := get(h, "/communication-log", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "February 01, 2024 09:15")
	assert.Contains(t, body, "Schedule request")
	assert.Contains(t, body, `data-endpoint="/api/communication/3"`)
}

func TestStaleSessionIsSignedOut(t *testing.T) {
	tl, comms := fixtures(t)
	h := newTestRouter(t, tl, comms)

	rec := get(h, "/dashboard", "9")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestStaticAssets(t *testing.T) {
	tl, comms := fixtures(t)
	h := newTestRouter(t, tl, comms)

	rec := get(h, "/static/app.js", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data-endpoint")

	rec = get(h, "/static/app.css", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

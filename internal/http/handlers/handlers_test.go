package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appdrafts "github.com/preston-bernstein/nba-draft-service/internal/app/drafts"
	appplayers "github.com/preston-bernstein/nba-draft-service/internal/app/players"
	"github.com/preston-bernstein/nba-draft-service/internal/draft"
	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
	"github.com/preston-bernstein/nba-draft-service/internal/needs"
	"github.com/preston-bernstein/nba-draft-service/internal/pool"
	"github.com/preston-bernstein/nba-draft-service/internal/snapshots"
	"github.com/preston-bernstein/nba-draft-service/internal/store"
	"github.com/preston-bernstein/nba-draft-service/internal/sweeper"
	"github.com/preston-bernstein/nba-draft-service/internal/testutil"
)

type draftPayload struct {
	ID           string       `json:"id"`
	Complete     bool         `json:"complete"`
	OnTheClock   string       `json:"onTheClock"`
	UserTeamID   string       `json:"userTeamId"`
	CurrentRound int          `json:"currentRound"`
	LastPicks    []draft.Pick `json:"lastPicks"`
}

type errorPayload struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	ms := store.NewMemoryStore()
	src := pool.Source{Current: pool.FixtureCurrent(), AllTime: pool.FixtureAllTime()}
	playerSvc := appplayers.NewService(ms, src, pool.NewNormalizer(nil, nil), nil)

	dir := t.TempDir()
	draftSvc := appdrafts.NewService(ms, playerSvc, nil,
		appdrafts.Defaults{Pool: "current", Rounds: 2, AITeams: 2, UserTeam: "Mine", Order: draft.OrderLinear},
		appdrafts.WithSnapshots(snapshots.NewWriter(dir, 7), snapshots.NewFSStore(dir)),
	)
	return NewHandler(Deps{Players: playerSvc, Drafts: draftSvc, DefaultPool: "current"})
}

func request(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	return httptest.NewRequest(method, target, &buf)
}

func withID(req *http.Request, id string) *http.Request {
	req.SetPathValue("id", id)
	return req
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(http.HandlerFunc(h.Health), http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	if rr.Header().Get("Allow") != http.MethodGet {
		t.Fatalf("expected Allow header, got %q", rr.Header().Get("Allow"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(ctx)
	rr = testutil.ServeRequest(http.HandlerFunc(h.Health), req)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestReadyUsesSweeperStatus(t *testing.T) {
	h := newTestHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	h.statusFn = func() sweeper.Status {
		return sweeper.Status{ConsecutiveFailures: 5, LastError: "disk gone"}
	}
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var body errorPayload
	testutil.DecodeJSON(t, rr, &body)
	if body.Error != "disk gone" {
		t.Fatalf("expected last error surfaced, got %+v", body)
	}

	h.statusFn = func() sweeper.Status { return sweeper.Status{ConsecutiveFailures: 5} }
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.DecodeJSON(t, rr, &body)
	if body.Error != "not ready" {
		t.Fatalf("expected generic message, got %+v", body)
	}
}

func TestPlayersListsPoolBestFirst(t *testing.T) {
	h := newTestHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/players?limit=3", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp PoolResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Pool != "current" || resp.Count != 3 || len(resp.Players) != 3 {
		t.Fatalf("unexpected pool response %s/%d", resp.Pool, resp.Count)
	}
	first := resp.Players[0]
	if first.Name != "Nikola Jokic" || first.OverallRating != 98 {
		t.Fatalf("expected best player first, got %s (%d)", first.Name, first.OverallRating)
	}
	if first.Composites.Shooting == 0 || first.Composites.Defense == 0 {
		t.Fatalf("expected composites populated, got %+v", first.Composites)
	}
	for i := 1; i < len(resp.Players); i++ {
		if resp.Players[i].OverallRating > resp.Players[i-1].OverallRating {
			t.Fatalf("pool not sorted at %d", i)
		}
	}
}

func TestPlayersUnknownPoolFallsBackToAllTime(t *testing.T) {
	h := newTestHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/players?pool=bogus&limit=1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp PoolResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Pool != string(pool.SelectorAllTime) || resp.Players[0].Name != "Michael Jordan" {
		t.Fatalf("expected all-time fallback, got %s/%s", resp.Pool, resp.Players[0].Name)
	}
}

func TestPlayersRejectsBadLimit(t *testing.T) {
	h := newTestHandler(t)
	for _, limit := range []string{"abc", "-1"} {
		rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/players?limit="+limit, nil)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	}
}

func TestPlayerByID(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.ServeRequest(http.HandlerFunc(h.PlayerByID), withID(request(t, http.MethodGet, "/players/cur-8", nil), "cur-8"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var view PlayerView
	testutil.DecodeJSON(t, rr, &view)
	if view.Name != "Victor Wembanyama" || view.HeightInches != 87 {
		t.Fatalf("unexpected player %s (%d in)", view.Name, view.HeightInches)
	}

	rr = testutil.ServeRequest(http.HandlerFunc(h.PlayerByID), withID(request(t, http.MethodGet, "/players/at-1", nil), "at-1"))
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.ServeRequest(http.HandlerFunc(h.PlayerByID), withID(request(t, http.MethodGet, "/players/at-1?pool=allTime", nil), "at-1"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.ServeRequest(http.HandlerFunc(h.PlayerByID), withID(request(t, http.MethodGet, "/players/x", nil), " "))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestDraftLifecycle(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Drafts), request(t, http.MethodPost, "/drafts", appdrafts.CreateRequest{Seed: 7}))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var created draftPayload
	testutil.DecodeJSON(t, rr, &created)
	if created.ID == "" || created.UserTeamID != "team-1" || created.OnTheClock != "team-1" {
		t.Fatalf("unexpected created draft %+v", created)
	}

	rr = testutil.ServeRequest(http.HandlerFunc(h.GetDraft), withID(request(t, http.MethodGet, "/drafts/"+created.ID, nil), created.ID))
	testutil.AssertStatus(t, rr, http.StatusOK)

	pick := func(playerID string) *httptest.ResponseRecorder {
		req := withID(request(t, http.MethodPost, "/drafts/"+created.ID+"/picks", PickRequest{PlayerID: playerID}), created.ID)
		return testutil.ServeRequest(http.HandlerFunc(h.Pick), req)
	}

	rr = pick("cur-1")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var afterPick draftPayload
	testutil.DecodeJSON(t, rr, &afterPick)
	if len(afterPick.LastPicks) != 3 || afterPick.LastPicks[0].PlayerName != "Nikola Jokic" || afterPick.LastPicks[0].Auto {
		t.Fatalf("expected user pick then two AI picks, got %+v", afterPick.LastPicks)
	}
	if afterPick.OnTheClock != "team-1" || afterPick.CurrentRound != 2 {
		t.Fatalf("expected user back on the clock in round 2, got %+v", afterPick)
	}

	testutil.AssertStatus(t, pick("cur-1"), http.StatusConflict)
	testutil.AssertStatus(t, pick(""), http.StatusBadRequest)

	rr = testutil.ServeRequest(http.HandlerFunc(h.DraftNeeds), withID(request(t, http.MethodGet, "/drafts/x/needs", nil), created.ID))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var report needs.Report
	testutil.DecodeJSON(t, rr, &report)
	if len(report.Priorities) != 5 {
		t.Fatalf("expected five priorities, got %+v", report.Priorities)
	}

	rr = testutil.ServeRequest(http.HandlerFunc(h.DraftNeeds), withID(request(t, http.MethodGet, "/drafts/x/needs?team=team-9", nil), created.ID))
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.ServeRequest(http.HandlerFunc(h.Auto), withID(request(t, http.MethodPost, "/drafts/x/auto", nil), created.ID))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var done draftPayload
	testutil.DecodeJSON(t, rr, &done)
	if !done.Complete || done.OnTheClock != "" || len(done.LastPicks) != 3 {
		t.Fatalf("expected completed draft, got %+v", done)
	}

	testutil.AssertStatus(t, pick("cur-30"), http.StatusConflict)

	rr = testutil.ServeRequest(http.HandlerFunc(h.DraftResults), withID(request(t, http.MethodGet, "/drafts/x/results", nil), created.ID))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var results draft.Results
	testutil.DecodeJSON(t, rr, &results)
	if results.User.TeamName != "Mine" || len(results.User.Roster) != 2 || len(results.AI) != 2 {
		t.Fatalf("unexpected results %+v", results.User)
	}
	if results.User.Evaluation.Feedback != evaluation.FeedbackForScore(results.User.Evaluation.Score) {
		t.Fatalf("feedback does not match score")
	}

	rr = testutil.Serve(http.HandlerFunc(h.Drafts), http.MethodGet, "/drafts", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var history struct {
		Count  int                       `json:"count"`
		Drafts []snapshots.ManifestEntry `json:"drafts"`
	}
	testutil.DecodeJSON(t, rr, &history)
	if history.Count != 1 || history.Drafts[0].DraftID != created.ID {
		t.Fatalf("unexpected history %+v", history)
	}
}

func TestCreateDraftRejectsInvalidOptions(t *testing.T) {
	h := newTestHandler(t)
	cases := []appdrafts.CreateRequest{
		{Rounds: -1},
		{Order: "zigzag"},
		{Rounds: 40, AITeams: 10},
		{Rounds: math.MaxInt/4 + 1, AITeams: 3},
		{Rounds: 2, AITeams: math.MaxInt / 2},
	}
	for _, req := range cases {
		rr := testutil.ServeRequest(http.HandlerFunc(h.Drafts), request(t, http.MethodPost, "/drafts", req))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	}

	rr := testutil.Serve(http.HandlerFunc(h.Drafts), http.MethodPost, "/drafts", strings.NewReader("{"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.Serve(http.HandlerFunc(h.Drafts), http.MethodDelete, "/drafts", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestUnknownDraftIs404(t *testing.T) {
	h := newTestHandler(t)
	id := "6f1c1f8e-8c43-4d8e-9a57-3b1b7a0f0b11"
	for name, fn := range map[string]http.HandlerFunc{
		"get":     h.GetDraft,
		"needs":   h.DraftNeeds,
		"results": h.DraftResults,
	} {
		rr := testutil.ServeRequest(fn, withID(request(t, http.MethodGet, "/drafts/"+id, nil), id))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", name, rr.Code)
		}
	}
	rr := testutil.ServeRequest(http.HandlerFunc(h.Auto), withID(request(t, http.MethodPost, "/drafts/"+id+"/auto", nil), id))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestEvaluate(t *testing.T) {
	h := newTestHandler(t)
	roster := testutil.SamplePool(5)

	rr := testutil.ServeJSON(t, http.HandlerFunc(h.Evaluate), http.MethodPost, "/evaluate", EvaluateRequest{Roster: roster})
	testutil.AssertStatus(t, rr, http.StatusOK)
	var res evaluation.Result
	testutil.DecodeJSON(t, rr, &res)
	want := evaluation.EvaluateRoster(roster)
	if res.Score != want.Score || res.Feedback != want.Feedback || len(res.SubScores) != 10 {
		t.Fatalf("expected %+v, got %+v", want, res)
	}

	rr = testutil.Serve(http.HandlerFunc(h.Evaluate), http.MethodPost, "/evaluate", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.DecodeJSON(t, rr, &res)
	if res.Score != 0 || res.Feedback != evaluation.FeedbackForScore(0) {
		t.Fatalf("expected empty roster result, got %+v", res)
	}

	rr = testutil.Serve(http.HandlerFunc(h.Evaluate), http.MethodPost, "/evaluate", strings.NewReader(`{"roster": 5}`))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestNeeds(t *testing.T) {
	h := newTestHandler(t)
	roster := testutil.SamplePool(2)

	rr := testutil.ServeJSON(t, http.HandlerFunc(h.Needs), http.MethodPost, "/needs", NeedsRequest{Roster: roster, TotalRounds: 5})
	testutil.AssertStatus(t, rr, http.StatusOK)
	var report needs.Report
	testutil.DecodeJSON(t, rr, &report)
	if len(report.Priorities) != 5 || report.Priorities[0].Priority != 1 {
		t.Fatalf("unexpected priorities %+v", report.Priorities)
	}

	rr = testutil.ServeJSON(t, http.HandlerFunc(h.Needs), http.MethodPost, "/needs", NeedsRequest{Roster: roster})
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestFeedback(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Feedback), http.MethodGet, "/feedback?score=96", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp FeedbackResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Score != 96 || resp.Feedback != evaluation.FeedbackForScore(96) {
		t.Fatalf("unexpected feedback %+v", resp)
	}

	rr = testutil.Serve(http.HandlerFunc(h.Feedback), http.MethodGet, "/feedback?score=high", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestNotFound(t *testing.T) {
	h := newTestHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.NotFound), http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

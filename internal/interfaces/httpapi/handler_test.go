package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/cricsight-io/cricsight/internal/domain/catalogue"
	"github.com/cricsight-io/cricsight/internal/domain/match"
	"github.com/cricsight-io/cricsight/internal/domain/player"
	"github.com/cricsight-io/cricsight/internal/domain/record"
	"github.com/cricsight-io/cricsight/internal/platform/cache"
	"github.com/cricsight-io/cricsight/internal/platform/logging"
	"github.com/cricsight-io/cricsight/internal/usecase"
)

type stubGateway struct {
	matches []match.Summary
	profile player.Profile
	found   bool
	err     error
}

func (s *stubGateway) FetchLiveMatches(ctx context.Context) ([]match.Summary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.matches, nil
}

func (s *stubGateway) FetchScorecard(ctx context.Context, matchID int64) (match.Scorecard, error) {
	if s.err != nil {
		return match.Scorecard{}, s.err
	}
	return match.Scorecard{MatchID: matchID}, nil
}

func (s *stubGateway) FetchPlayerStats(ctx context.Context, name string) (player.Profile, bool, error) {
	if s.err != nil {
		return player.Profile{}, false, s.err
	}
	return s.profile, s.found, nil
}

type stubStore struct {
	result record.ResultTable
	err    error
}

func (s *stubStore) Execute(ctx context.Context, query string) (record.ResultTable, error) {
	if s.err != nil {
		return record.ResultTable{}, s.err
	}
	return s.result, nil
}

func newTestRouter(t *testing.T, gateway *stubGateway, store *stubStore) http.Handler {
	t.Helper()

	memo := cache.NewMemo(cache.DefaultCapacity)
	logger := slog.New(slog.DiscardHandler)

	handler := NewHandler(
		usecase.NewMatchService(gateway, memo, 2, logging.NewNop()),
		usecase.NewPlayerService(gateway, memo),
		usecase.NewAnalyticsService(catalogue.New(), store),
		usecase.NewCacheService(memo, logging.NewNop()),
		logger,
	)

	return NewRouter(handler, logger, nil)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestListLiveMatchesEndpoint(t *testing.T) {
	gateway := &stubGateway{matches: []match.Summary{
		{SeriesName: "World Cup", MatchID: 9001, Team1: "India", Team2: "Australia", Status: "Live"},
	}}
	router := newTestRouter(t, gateway, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/matches/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	items, ok := body["data"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("data = %v, want one match", body["data"])
	}
	first := items[0].(map[string]any)
	if first["label"] != "World Cup | India vs Australia - Live" {
		t.Fatalf("label = %v", first["label"])
	}
}

func TestScorecardEndpointRejectsNonNumericID(t *testing.T) {
	router := newTestRouter(t, &stubGateway{}, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/matches/abc/scorecard", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestScorecardEndpointMapsUnavailableUpstream(t *testing.T) {
	gateway := &stubGateway{err: fmt.Errorf("%w: upstream down", usecase.ErrDependencyUnavailable)}
	router := newTestRouter(t, gateway, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/matches/9001/scorecard", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestPlayerProfileEndpointRequiresName(t *testing.T) {
	router := newTestRouter(t, &stubGateway{}, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players/profile", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPlayerProfileEndpointUnknownPlayerIs404(t *testing.T) {
	router := newTestRouter(t, &stubGateway{found: false}, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players/profile?name=Nobody", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPlayerProfileEndpointDefaultsDisplayFields(t *testing.T) {
	gateway := &stubGateway{profile: player.Profile{Name: "Virat Kohli"}, found: true}
	router := newTestRouter(t, gateway, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players/profile?name=Virat+Kohli", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	if data["battingStyle"] != player.NotAvailable {
		t.Fatalf("battingStyle = %v, want %q", data["battingStyle"], player.NotAvailable)
	}
}

func TestListQueriesEndpointReturnsFullCatalogue(t *testing.T) {
	router := newTestRouter(t, &stubGateway{}, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/queries", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	names, ok := body["data"].([]any)
	if !ok || len(names) != catalogue.New().Len() {
		t.Fatalf("data = %v, want full catalogue", body["data"])
	}
}

func TestRunQueryEndpoint(t *testing.T) {
	store := &stubStore{result: record.ResultTable{
		Columns: []string{"player_name", "country"},
		Rows:    [][]any{{"Virat Kohli", "India"}},
	}}
	router := newTestRouter(t, &stubGateway{}, store)

	target := "/v1/queries/" + strings.ReplaceAll("Q1. Players from India", " ", "%20")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	if data["total"] != float64(1) {
		t.Fatalf("total = %v, want 1", data["total"])
	}
}

func TestRunQueryEndpointUnknownNameIs404(t *testing.T) {
	router := newTestRouter(t, &stubGateway{}, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/queries/Q99", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRefreshCacheEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGateway{}, &stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/v1/cache/refresh", strings.NewReader(`{"functions":["live_matches"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	cleared, ok := data["cleared"].([]any)
	if !ok || len(cleared) != 1 || cleared[0] != "live_matches" {
		t.Fatalf("cleared = %v", data["cleared"])
	}
}

func TestRefreshCacheEndpointRejectsUnknownFunction(t *testing.T) {
	router := newTestRouter(t, &stubGateway{}, &stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/v1/cache/refresh", strings.NewReader(`{"functions":["standings"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

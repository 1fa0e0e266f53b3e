package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cricsight-io/cricsight/internal/domain/catalogue"
	"github.com/cricsight-io/cricsight/internal/domain/record"
)

type fakeQueryStore struct {
	executed []string
	results  map[string]record.ResultTable
	err      error
}

func (f *fakeQueryStore) Execute(ctx context.Context, query string) (record.ResultTable, error) {
	f.executed = append(f.executed, query)
	if f.err != nil {
		return record.ResultTable{}, f.err
	}
	for prefix, result := range f.results {
		if strings.HasPrefix(query, prefix) {
			return result, nil
		}
	}
	return record.ResultTable{Columns: []string{"player_name"}, Rows: [][]any{}}, nil
}

func TestListQueriesMatchesCatalogueOrder(t *testing.T) {
	cat := catalogue.New()
	svc := NewAnalyticsService(cat, &fakeQueryStore{})

	names := svc.ListQueries(context.Background())
	if len(names) != cat.Len() {
		t.Fatalf("got %d names, want %d", len(names), cat.Len())
	}
	if names[0] != "Q1. Players from India" {
		t.Fatalf("first query = %q", names[0])
	}
}

func TestRunQueryExecutesCatalogueSQL(t *testing.T) {
	store := &fakeQueryStore{}
	svc := NewAnalyticsService(catalogue.New(), store)

	if _, err := svc.RunQuery(context.Background(), "Q1. Players from India"); err != nil {
		t.Fatalf("RunQuery: %v", err)
	}
	def, err := catalogue.New().Get("Q1. Players from India")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(store.executed) != 1 || store.executed[0] != def.SQL {
		t.Fatalf("executed %v, want the Q1 SQL", store.executed)
	}
	if !strings.Contains(store.executed[0], "country = 'India'") {
		t.Fatalf("executed %q, want the India filter", store.executed[0])
	}
}

func TestRunQueryUnknownNameIsNotFound(t *testing.T) {
	svc := NewAnalyticsService(catalogue.New(), &fakeQueryStore{})

	if _, err := svc.RunQuery(context.Background(), "Q99. Made Up"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestRunQueryPropagatesStoreFailure(t *testing.T) {
	store := &fakeQueryStore{err: fmt.Errorf("%w: no such column", ErrInvalidQuery)}
	svc := NewAnalyticsService(catalogue.New(), store)

	if _, err := svc.RunQuery(context.Background(), "Q1. Players from India"); !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("got %v, want invalid query", err)
	}
}

func TestDatasetTableBoundsLimit(t *testing.T) {
	store := &fakeQueryStore{}
	svc := NewAnalyticsService(catalogue.New(), store)
	ctx := context.Background()

	if _, err := svc.DatasetTable(ctx, 0); err != nil {
		t.Fatalf("DatasetTable: %v", err)
	}
	if !strings.HasSuffix(store.executed[0], fmt.Sprintf("LIMIT %d", defaultDatasetLimit)) {
		t.Fatalf("executed %q, want default limit", store.executed[0])
	}

	if _, err := svc.DatasetTable(ctx, maxDatasetLimit+1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want invalid input", err)
	}
}

func TestDatasetSummaryCollectsCounts(t *testing.T) {
	store := &fakeQueryStore{results: map[string]record.ResultTable{
		"SELECT COUNT(DISTINCT player_id)": {
			Columns: []string{"players", "matches", "venues"},
			Rows:    [][]any{{int64(120), int64(45), int64(12)}},
		},
		"SELECT COUNT(*) AS teams": {
			Columns: []string{"teams"},
			Rows:    [][]any{{int64(10)}},
		},
	}}
	svc := NewAnalyticsService(catalogue.New(), store)

	summary, err := svc.DatasetSummary(context.Background())
	if err != nil {
		t.Fatalf("DatasetSummary: %v", err)
	}
	want := DatasetSummary{Players: 120, Matches: 45, Venues: 12, Teams: 10}
	if summary != want {
		t.Fatalf("summary = %+v, want %+v", summary, want)
	}
}

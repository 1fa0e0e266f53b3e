package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cricsight-io/cricsight/internal/domain/catalogue"
	"github.com/cricsight-io/cricsight/internal/domain/record"
	"github.com/cricsight-io/cricsight/internal/platform/logging"
	"github.com/cricsight-io/cricsight/internal/usecase"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRow(playerID int64, name string, matchID int64, matchType, country string, runs int64) record.Record {
	return record.Record{
		PlayerID:    playerID,
		PlayerName:  name,
		MatchID:     matchID,
		MatchDesc:   "1st ODI",
		MatchType:   matchType,
		MatchDate:   "2023-10-08",
		Team1:       "India",
		Team2:       "Australia",
		VenueName:   "MA Chidambaram Stadium",
		VenueCity:   "Chennai",
		Tournament:  "World Cup",
		Country:     country,
		PlayingRole: "Batsman",
		RunsScored:  runs,
		WinnerTeam:  "India",
		DOB:         "1988-11-05",
	}
}

func testTable(rows ...record.Record) record.Table {
	return record.Table{Columns: record.Schema, Rows: rows}
}

func TestMaterializePreservesRowsAndColumns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	table := testTable(
		testRow(101, "Virat Kohli", 9001, "ODI", "India", 85),
		testRow(102, "Steve Smith", 9001, "ODI", "Australia", 71),
	)
	require.NoError(t, store.Materialize(ctx, table))

	result, err := store.Execute(ctx, "SELECT * FROM cricket_data")
	require.NoError(t, err)
	require.Equal(t, record.ColumnNames(), result.Columns)
	require.Equal(t, table.RowCount(), result.RowCount())
}

func TestMaterializeTwiceReplacesRows(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	table := testTable(testRow(101, "Virat Kohli", 9001, "ODI", "India", 85))
	require.NoError(t, store.Materialize(ctx, table))
	require.NoError(t, store.Materialize(ctx, table))

	result, err := store.Execute(ctx, "SELECT COUNT(*) FROM cricket_data")
	require.NoError(t, err)
	require.Equal(t, int64(1), result.Rows[0][0])
}

func TestCountryFilterReturnsOnlyMatchingPlayers(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Materialize(ctx, testTable(
		testRow(101, "Virat Kohli", 9001, "ODI", "India", 85),
		testRow(102, "Steve Smith", 9001, "ODI", "Australia", 71),
		testRow(103, "Rohit Sharma", 9002, "ODI", "India", 48),
	)))

	query, err := catalogue.New().Get("Q1. Players from India")
	require.NoError(t, err)

	result, err := store.Execute(ctx, query.SQL)
	require.NoError(t, err)
	require.Equal(t, 2, result.RowCount())
	for _, row := range result.Rows {
		require.Equal(t, "India", row[len(row)-1])
	}
}

func TestRunScorerAggregates(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Materialize(ctx, testTable(
		testRow(101, "Virat Kohli", 9001, "ODI", "India", 10),
		testRow(101, "Virat Kohli", 9002, "ODI", "India", 20),
		testRow(101, "Virat Kohli", 9003, "ODI", "India", 30),
	)))

	query, err := catalogue.New().Get("Q3. Top 10 ODI Run Scorers")
	require.NoError(t, err)

	result, err := store.Execute(ctx, query.SQL)
	require.NoError(t, err)
	require.Equal(t, []string{"player_name", "total_runs", "batting_average", "matches"}, result.Columns)
	require.Equal(t, 1, result.RowCount())

	row := result.Rows[0]
	require.Equal(t, "Virat Kohli", row[0])
	require.Equal(t, int64(60), row[1])
	require.Equal(t, 20.0, row[2])
	require.Equal(t, int64(3), row[3])
}

func TestWholeCatalogueExecutes(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Materialize(ctx, testTable(
		testRow(101, "Virat Kohli", 9001, "ODI", "India", 85),
	)))

	cat := catalogue.New()
	for _, name := range cat.Names() {
		query, err := cat.Get(name)
		require.NoError(t, err)

		result, err := store.Execute(ctx, query.SQL)
		require.NoError(t, err, "query %s", name)
		require.NotEmpty(t, result.Columns, "query %s", name)
	}
}

func TestEmptyResultKeepsColumns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Materialize(ctx, testTable()))

	result, err := store.Execute(ctx, "SELECT player_name, country FROM cricket_data")
	require.NoError(t, err)
	require.Equal(t, []string{"player_name", "country"}, result.Columns)
	require.Zero(t, result.RowCount())
}

func TestMalformedSQLIsInvalidQuery(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Materialize(ctx, testTable()))

	_, err := store.Execute(ctx, "SELECT FROM WHERE")
	require.Error(t, err)
	require.ErrorIs(t, err, usecase.ErrInvalidQuery)
	require.Contains(t, err.Error(), "syntax")
}

func TestWriteStatementsAreRejected(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Materialize(ctx, testTable()))

	_, err := store.Execute(ctx, "DELETE FROM cricket_data")
	require.ErrorIs(t, err, usecase.ErrInvalidQuery)
}

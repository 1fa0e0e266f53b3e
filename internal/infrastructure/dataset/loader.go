package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/cricsight-io/cricsight/internal/domain/record"
	"github.com/cricsight-io/cricsight/internal/platform/logging"
)

// Loader reads the analytical dataset file exactly once per process. A missing
// file is a fatal condition for the caller: the service must not start without
// its dataset.
type Loader struct {
	path   string
	logger *logging.Logger

	once  sync.Once
	table record.Table
	err   error
}

func NewLoader(path string, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Loader{path: path, logger: logger}
}

// Load parses the CSV file into a typed table. Subsequent calls return the
// same table without re-reading the file.
func (l *Loader) Load() (record.Table, error) {
	l.once.Do(func() {
		l.table, l.err = l.read()
	})
	return l.table, l.err
}

func (l *Loader) read() (record.Table, error) {
	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return record.Table{}, fmt.Errorf("dataset file %q not found: %w", l.path, err)
		}
		return record.Table{}, fmt.Errorf("open dataset file %q: %w", l.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return record.Table{}, fmt.Errorf("read dataset header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return record.Table{}, err
	}

	rows := make([]record.Record, 0, 1024)
	line := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return record.Table{}, fmt.Errorf("read dataset line %d: %w", line, err)
		}

		row, err := parseRecord(fields)
		if err != nil {
			return record.Table{}, fmt.Errorf("dataset line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	l.logger.Info("dataset loaded", "path", l.path, "rows", len(rows))

	return record.Table{Columns: record.Schema, Rows: rows}, nil
}

func validateHeader(header []string) error {
	expected := record.ColumnNames()
	if len(header) != len(expected) {
		return fmt.Errorf("dataset has %d columns, want %d", len(header), len(expected))
	}
	for i, name := range header {
		if strings.TrimSpace(name) != expected[i] {
			return fmt.Errorf("dataset column %d is %q, want %q", i+1, name, expected[i])
		}
	}
	return nil
}

func parseRecord(fields []string) (record.Record, error) {
	if len(fields) != len(record.Schema) {
		return record.Record{}, fmt.Errorf("row has %d fields, want %d", len(fields), len(record.Schema))
	}

	var parseErr error
	asInt := func(col int) int64 {
		raw := strings.TrimSpace(fields[col])
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("column %s: parse %q as integer", record.Schema[col].Name, raw)
		}
		return v
	}
	asFloat := func(col int) float64 {
		raw := strings.TrimSpace(fields[col])
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("column %s: parse %q as number", record.Schema[col].Name, raw)
		}
		return v
	}
	asText := func(col int) string {
		return strings.TrimSpace(fields[col])
	}

	row := record.Record{
		PlayerID:       asInt(0),
		PlayerName:     asText(1),
		MatchID:        asInt(2),
		MatchDesc:      asText(3),
		MatchType:      asText(4),
		MatchDate:      asText(5),
		Team1:          asText(6),
		Team2:          asText(7),
		Team1Runs:      asInt(8),
		Team2Runs:      asInt(9),
		VenueName:      asText(10),
		VenueCity:      asText(11),
		Tournament:     asText(12),
		Country:        asText(13),
		PlayingRole:    asText(14),
		BattingStyle:   asText(15),
		BowlingStyle:   asText(16),
		RunsScored:     asInt(17),
		WicketsTaken:   asInt(18),
		StrikeRate:     asFloat(19),
		EconomyRate:    asFloat(20),
		BattingAverage: asFloat(21),
		Sixes:          asInt(22),
		Catches:        asInt(23),
		HatTrick:       asInt(24),
		ManOfTheMatch:  asInt(25),
		WinnerTeam:     asText(26),
		Batsman1:       asText(27),
		Batsman2:       asText(28),
		DOB:            asText(29),
	}
	return row, parseErr
}

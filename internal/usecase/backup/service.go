package backup

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/journey/internal/entity"
	"github.com/eslsoft/journey/internal/repository"
)

const (
	defaultBatchSize = 512
	formatVersion    = 1

	// TableTerms and TableTermStats name the exportable record streams.
	TableTerms     = "terms"
	TableTermStats = "term_stats"
)

var errNoTablesSelected = errors.New("backup: no tables selected")

// Service streams catalog terms and term stats as NDJSON backups and
// restores them through the repositories, so it works identically against
// the local SQLite store and the remote Postgres one.
type Service struct {
	terms     repository.TermRepository
	stats     repository.TermStatsRepository
	batchSize int
}

// Option customizes a Service.
type Option func(*Service)

// WithBatchSize overrides the page size used when reading records.
func WithBatchSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.batchSize = size
		}
	}
}

// NewService constructs a backup service over the given repositories.
func NewService(terms repository.TermRepository, stats repository.TermStatsRepository, opts ...Option) *Service {
	s := &Service{terms: terms, stats: stats, batchSize: defaultBatchSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type record struct {
	Type       string          `json:"type"`
	Version    int             `json:"version,omitempty"`
	ExportedAt *time.Time      `json:"exported_at,omitempty"`
	Tables     []string        `json:"tables,omitempty"`
	Table      string          `json:"table,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

func allTables() []string {
	return []string{TableTerms, TableTermStats}
}

func selectTables(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return allTables(), nil
	}
	known := allTables()
	selected := lo.Intersect(known, requested)
	if len(selected) == 0 {
		return nil, errNoTablesSelected
	}
	if unknown, _ := lo.Difference(requested, known); len(unknown) > 0 {
		return nil, fmt.Errorf("backup: unknown tables %v", unknown)
	}
	return selected, nil
}

// Export writes a meta line followed by one NDJSON record per row.
// Returns per-table row counts.
func (s *Service) Export(ctx context.Context, w io.Writer, tables []string) (map[string]int, error) {
	selected, err := selectTables(tables)
	if err != nil {
		return nil, err
	}

	writer := bufio.NewWriter(w)
	now := time.Now().UTC()
	if err := writeRecord(writer, record{
		Type:       "meta",
		Version:    formatVersion,
		ExportedAt: &now,
		Tables:     selected,
	}); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(selected))
	for _, table := range selected {
		count, err := s.exportTable(ctx, writer, table)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, writer.Flush()
}

func (s *Service) exportTable(ctx context.Context, writer *bufio.Writer, table string) (int, error) {
	switch table {
	case TableTerms:
		return exportPaged(ctx, writer, table, s.batchSize, func(ctx context.Context, page, size int32) ([]entity.Term, error) {
			terms, _, err := s.terms.List(ctx, &repository.ListTermQuery{
				Pagination: repository.Pagination{PageNo: page, PageSize: size},
			})
			return terms, err
		})
	case TableTermStats:
		return exportPaged(ctx, writer, table, s.batchSize, func(ctx context.Context, page, size int32) ([]entity.TermStats, error) {
			stats, _, err := s.stats.List(ctx, &repository.ListTermStatsQuery{
				Pagination: repository.Pagination{PageNo: page, PageSize: size},
			})
			return stats, err
		})
	default:
		return 0, fmt.Errorf("backup: unknown table %q", table)
	}
}

func exportPaged[T any](ctx context.Context, writer *bufio.Writer, table string, batchSize int, list func(ctx context.Context, page, size int32) ([]T, error)) (int, error) {
	count := 0
	for page := int32(1); ; page++ {
		rows, err := list(ctx, page, int32(batchSize))
		if err != nil {
			return count, err
		}
		for _, row := range rows {
			payload, err := json.Marshal(row)
			if err != nil {
				return count, err
			}
			if err := writeRecord(writer, record{Type: "row", Table: table, Payload: payload}); err != nil {
				return count, err
			}
			count++
		}
		if len(rows) < batchSize {
			return count, nil
		}
	}
}

func writeRecord(writer *bufio.Writer, rec record) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := writer.Write(line); err != nil {
		return err
	}
	return writer.WriteByte('\n')
}

// Import replays an NDJSON backup into the repositories. Terms that already
// exist are skipped; stats are upserted last-write-wins. Returns per-table
// row counts of applied records.
func (s *Service) Import(ctx context.Context, r io.Reader, tables []string) (map[string]int, error) {
	selected, err := selectTables(tables)
	if err != nil {
		return nil, err
	}
	wanted := lo.SliceToMap(selected, func(t string) (string, bool) { return t, true })

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	counts := make(map[string]int, len(selected))
	sawMeta := false
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			return counts, fmt.Errorf("backup: malformed line: %w", err)
		}
		switch rec.Type {
		case "meta":
			if rec.Version != formatVersion {
				return counts, fmt.Errorf("backup: unsupported format version %d", rec.Version)
			}
			sawMeta = true
		case "row":
			if !sawMeta {
				return counts, errors.New("backup: row before meta record")
			}
			if !wanted[rec.Table] {
				continue
			}
			applied, err := s.importRow(ctx, rec)
			if err != nil {
				return counts, fmt.Errorf("import %s: %w", rec.Table, err)
			}
			if applied {
				counts[rec.Table]++
			}
		default:
			return counts, fmt.Errorf("backup: unknown record type %q", rec.Type)
		}
	}
	if err := scanner.Err(); err != nil {
		return counts, err
	}
	if !sawMeta {
		return counts, errors.New("backup: missing meta record")
	}
	return counts, nil
}

func (s *Service) importRow(ctx context.Context, rec record) (bool, error) {
	switch rec.Table {
	case TableTerms:
		var term entity.Term
		if err := json.Unmarshal(rec.Payload, &term); err != nil {
			return false, err
		}
		term.ID = 0
		term.Normalize()
		_, err := s.terms.Create(ctx, &term)
		if err == entity.ErrDuplicateTerm {
			return false, nil
		}
		return err == nil, err
	case TableTermStats:
		var stats entity.TermStats
		if err := json.Unmarshal(rec.Payload, &stats); err != nil {
			return false, err
		}
		stats.ID = 0
		_, err := s.stats.Upsert(ctx, &stats)
		return err == nil, err
	default:
		return false, fmt.Errorf("backup: unknown table %q", rec.Table)
	}
}

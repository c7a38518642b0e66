package backup

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/eslsoft/journey/internal/entity"
	"github.com/eslsoft/journey/internal/repository"
)

type memTermRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[string]*entity.Term
}

func newMemTermRepo() *memTermRepo {
	return &memTermRepo{items: make(map[string]*entity.Term)}
}

func (r *memTermRepo) Create(ctx context.Context, term *entity.Term) (*entity.Term, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[term.Key()]; ok {
		return nil, entity.ErrDuplicateTerm
	}
	r.seq++
	copied := *term
	copied.ID = r.seq
	r.items[copied.Key()] = &copied
	return &copied, nil
}

func (r *memTermRepo) GetByKey(ctx context.Context, source, target string) (*entity.Term, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	term, ok := r.items[source+"|"+target]
	if !ok {
		return nil, entity.ErrTermNotFound
	}
	copied := *term
	return &copied, nil
}

func (r *memTermRepo) List(ctx context.Context, query *repository.ListTermQuery) ([]entity.Term, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Term
	for _, term := range r.items {
		out = append(out, *term)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	out = paginate(out, query.Pagination)
	return out, int64(len(r.items)), nil
}

func (r *memTermRepo) Corpora(ctx context.Context) ([]string, error) { return nil, nil }

type memStatsRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.TermStats
}

func newMemStatsRepo() *memStatsRepo {
	return &memStatsRepo{items: make(map[string]*entity.TermStats)}
}

func (r *memStatsRepo) Upsert(ctx context.Context, stats *entity.TermStats) (*entity.TermStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := stats.Clone()
	r.items[copied.TermKey] = copied
	return copied.Clone(), nil
}

func (r *memStatsRepo) GetByTermKey(ctx context.Context, termKey string) (*entity.TermStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats, ok := r.items[termKey]
	if !ok {
		return nil, entity.ErrTermStatsNotFound
	}
	return stats.Clone(), nil
}

func (r *memStatsRepo) List(ctx context.Context, query *repository.ListTermStatsQuery) ([]entity.TermStats, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.TermStats
	for _, stats := range r.items {
		out = append(out, *stats.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TermKey < out[j].TermKey })
	out = paginate(out, query.Pagination)
	return out, int64(len(r.items)), nil
}

func (r *memStatsRepo) Delete(ctx context.Context, termKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, termKey)
	return nil
}

func paginate[T any](rows []T, p repository.Pagination) []T {
	if p.PageSize <= 0 {
		return rows
	}
	start := int(p.Offset())
	if start < 0 || start >= len(rows) {
		return nil
	}
	end := start + int(p.PageSize)
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func seed(t *testing.T, terms *memTermRepo, stats *memStatsRepo, n int) {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		term := &entity.Term{
			SourceText: "word-" + string(rune('a'+i)),
			TargetText: "žodis-" + string(rune('a'+i)),
			Corpus:     "nouns_one",
			Group:      "Basics",
		}
		term.Normalize()
		if _, err := terms.Create(ctx, term); err != nil {
			t.Fatalf("seed term: %v", err)
		}
		record := entity.NewTermStats(*term)
		record.Exposed = true
		record.MultipleChoice.Correct = int32(i)
		record.LastSeen = &now
		if _, err := stats.Upsert(ctx, record); err != nil {
			t.Fatalf("seed stats: %v", err)
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	srcTerms, srcStats := newMemTermRepo(), newMemStatsRepo()
	seed(t, srcTerms, srcStats, 5)

	// Batch size below the row count exercises the paging loop.
	exporter := NewService(srcTerms, srcStats, WithBatchSize(2))
	var buf bytes.Buffer
	counts, err := exporter.Export(context.Background(), &buf, nil)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if counts[TableTerms] != 5 || counts[TableTermStats] != 5 {
		t.Fatalf("export counts = %v, want 5/5", counts)
	}

	dstTerms, dstStats := newMemTermRepo(), newMemStatsRepo()
	importer := NewService(dstTerms, dstStats)
	counts, err = importer.Import(context.Background(), bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if counts[TableTerms] != 5 || counts[TableTermStats] != 5 {
		t.Fatalf("import counts = %v, want 5/5", counts)
	}

	restored, err := dstStats.GetByTermKey(context.Background(), "word-c|žodis-c")
	if err != nil {
		t.Fatalf("GetByTermKey: %v", err)
	}
	if restored.MultipleChoice.Correct != 2 {
		t.Errorf("restored Correct = %d, want 2", restored.MultipleChoice.Correct)
	}
}

func TestImportSkipsDuplicateTerms(t *testing.T) {
	terms, stats := newMemTermRepo(), newMemStatsRepo()
	seed(t, terms, stats, 3)

	var buf bytes.Buffer
	if _, err := NewService(terms, stats).Export(context.Background(), &buf, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}

	// Importing into the same repositories: terms collide, stats upsert.
	counts, err := NewService(terms, stats).Import(context.Background(), bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if counts[TableTerms] != 0 {
		t.Errorf("terms applied = %d, want 0 for duplicates", counts[TableTerms])
	}
	if counts[TableTermStats] != 3 {
		t.Errorf("stats applied = %d, want 3", counts[TableTermStats])
	}
}

func TestExportTableSelection(t *testing.T) {
	terms, stats := newMemTermRepo(), newMemStatsRepo()
	seed(t, terms, stats, 2)
	svc := NewService(terms, stats)

	var buf bytes.Buffer
	counts, err := svc.Export(context.Background(), &buf, []string{TableTermStats})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if _, ok := counts[TableTerms]; ok {
		t.Error("terms exported despite selection")
	}
	if counts[TableTermStats] != 2 {
		t.Errorf("stats exported = %d, want 2", counts[TableTermStats])
	}

	if _, err := svc.Export(context.Background(), &buf, []string{"unknown"}); err == nil {
		t.Error("expected error for unknown table selection")
	}
}

func TestImportRejectsMalformedStream(t *testing.T) {
	svc := NewService(newMemTermRepo(), newMemStatsRepo())
	cases := map[string]string{
		"missing meta":   `{"type":"row","table":"terms","payload":{}}`,
		"bad version":    `{"type":"meta","version":99}`,
		"unknown type":   "{\"type\":\"meta\",\"version\":1}\n{\"type\":\"wat\"}",
		"malformed json": "{\"type\":\"meta\",\"version\":1}\nnot-json",
		"empty stream":   "",
	}
	for name, payload := range cases {
		if _, err := svc.Import(context.Background(), strings.NewReader(payload), nil); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

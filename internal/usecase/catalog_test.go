package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/eslsoft/journey/internal/entity"
	"github.com/eslsoft/journey/internal/repository"
)

type fakeTermRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[string]*entity.Term
}

func newFakeTermRepo() *fakeTermRepo {
	return &fakeTermRepo{items: make(map[string]*entity.Term)}
}

func (r *fakeTermRepo) Create(ctx context.Context, term *entity.Term) (*entity.Term, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
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

func (r *fakeTermRepo) GetByKey(ctx context.Context, source, target string) (*entity.Term, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	term, ok := r.items[source+"|"+target]
	if !ok {
		return nil, entity.ErrTermNotFound
	}
	copied := *term
	return &copied, nil
}

func (r *fakeTermRepo) List(ctx context.Context, query *repository.ListTermQuery) ([]entity.Term, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Term
	for _, term := range r.items {
		if query.Corpus != "" && term.Corpus != query.Corpus {
			continue
		}
		if query.Group != "" && term.Group != query.Group {
			continue
		}
		out = append(out, *term)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTermRepo) Corpora(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]bool{}
	var out []string
	for _, term := range r.items {
		if !seen[term.Corpus] {
			seen[term.Corpus] = true
			out = append(out, term.Corpus)
		}
	}
	return out, nil
}

const sampleWordlist = `{
  "nouns_one": {
    "Animals": [
      {"english": "cat", "lithuanian": "katė"},
      {"english": "dog", "lithuanian": "šuo"}
    ],
    "Food": [
      {"english": "bread", "lithuanian": "duona"}
    ]
  },
  "verbs_present": {
    "Basics": [
      {"english": "to eat", "lithuanian": "valgyti"},
      {"english": "cat", "lithuanian": "katinas"}
    ]
  }
}`

func TestImportWordlist(t *testing.T) {
	repo := newFakeTermRepo()
	uc := NewCatalogUsecase(repo, silentLogger())

	summary, err := uc.ImportWordlist(context.Background(), strings.NewReader(sampleWordlist))
	if err != nil {
		t.Fatalf("ImportWordlist: %v", err)
	}
	if summary.Imported != 5 {
		t.Errorf("Imported = %d, want 5", summary.Imported)
	}
	if summary.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", summary.Skipped)
	}
	// "cat" appears twice with different translations.
	if len(summary.Duplicates) != 1 || summary.Duplicates[0] != "cat" {
		t.Errorf("Duplicates = %v, want [cat]", summary.Duplicates)
	}

	term, err := repo.GetByKey(context.Background(), "cat", "katė")
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if term.Corpus != "nouns_one" || term.Group != "Animals" {
		t.Errorf("imported term carries corpus %q group %q", term.Corpus, term.Group)
	}
	if term.SourceLang != entity.LanguageEnglish || term.TargetLang != entity.LanguageLithuanian {
		t.Errorf("language pair = %s/%s, want en/lt", term.SourceLang, term.TargetLang)
	}
}

func TestImportWordlistSkipsExisting(t *testing.T) {
	repo := newFakeTermRepo()
	uc := NewCatalogUsecase(repo, silentLogger())
	ctx := context.Background()

	if _, err := uc.ImportWordlist(ctx, strings.NewReader(sampleWordlist)); err != nil {
		t.Fatalf("first import: %v", err)
	}
	summary, err := uc.ImportWordlist(ctx, strings.NewReader(sampleWordlist))
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if summary.Imported != 0 {
		t.Errorf("Imported = %d, want 0 on re-import", summary.Imported)
	}
	if summary.Skipped != 5 {
		t.Errorf("Skipped = %d, want 5 on re-import", summary.Skipped)
	}
}

func TestImportWordlistRejectsBlankEntries(t *testing.T) {
	uc := NewCatalogUsecase(newFakeTermRepo(), silentLogger())
	payload := `{"nouns_one": {"Animals": [{"english": "  ", "lithuanian": "katė"}]}}`
	if _, err := uc.ImportWordlist(context.Background(), strings.NewReader(payload)); err != entity.ErrInvalidTermText {
		t.Errorf("err = %v, want %v", err, entity.ErrInvalidTermText)
	}
}

func TestListTermsAppliesDefaults(t *testing.T) {
	repo := newFakeTermRepo()
	uc := NewCatalogUsecase(repo, silentLogger())
	ctx := context.Background()
	if _, err := uc.ImportWordlist(ctx, strings.NewReader(sampleWordlist)); err != nil {
		t.Fatalf("import: %v", err)
	}

	terms, total, err := uc.ListTerms(ctx, &repository.ListTermQuery{Corpus: "nouns_one"})
	if err != nil {
		t.Fatalf("ListTerms: %v", err)
	}
	if total != 3 || len(terms) != 3 {
		t.Errorf("ListTerms returned %d/%d terms, want 3", len(terms), total)
	}
}

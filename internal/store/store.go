// Package store persists the finance document as a single JSON file,
// mirroring the shape `{transactions, category_budgets, default_budget,
// goals}`. The analytics core never touches this package directly; it only
// receives the loaded collections as parameters.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// defaultBudget seeds a fresh document so budget tools have a ceiling to
// report against before the user configures one.
const defaultBudget = 3000.0

// Document is the full persisted state.
type Document struct {
	Transactions    []types.Transaction `json:"transactions"`
	CategoryBudgets map[string]float64  `json:"category_budgets"`
	DefaultBudget   float64             `json:"default_budget"`
	Goals           []types.Goal        `json:"goals"`
}

// Settings extracts the budget settings from the document.
func (d Document) Settings() types.Settings {
	return types.Settings{
		DefaultBudget:   d.DefaultBudget,
		CategoryBudgets: d.CategoryBudgets,
	}
}

// Store reads and writes the document file. Writes are serialized: the
// analytics core assumes the collection it was handed does not change
// mid-computation, so only one save may be in flight at a time.
type Store struct {
	path   string
	logger *log.Logger
	mu     sync.Mutex
}

// New creates a store backed by the given file path.
func New(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the document. A missing file yields an empty document with the
// default budget rather than an error.
func (s *Store) Load() (Document, error) {
	doc := Document{
		CategoryBudgets: map[string]float64{},
		DefaultBudget:   defaultBudget,
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Data file does not exist, starting empty", "path", s.path)
			return doc, nil
		}
		return Document{}, fmt.Errorf("failed to read data file: %w", err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse data file: %w", err)
	}
	if doc.CategoryBudgets == nil {
		doc.CategoryBudgets = map[string]float64{}
	}
	return doc, nil
}

// Save writes the document atomically: marshal to a temp file in the same
// directory, then rename over the target.
func (s *Store) Save(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	s.logger.Debug("Saved data file",
		"path", s.path,
		"transactions", len(doc.Transactions),
		"goals", len(doc.Goals))
	return nil
}

// AddGoal appends a goal with a server-assigned id and creation time and
// persists the document.
func (s *Store) AddGoal(doc *Document, goal types.Goal) (types.Goal, error) {
	goal.ID = uuid.NewString()
	goal.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	doc.Goals = append(doc.Goals, goal)
	if err := s.Save(*doc); err != nil {
		return types.Goal{}, err
	}
	return goal, nil
}

// DeleteGoal removes a goal by id and persists the document. Returns false
// when no goal matched.
func (s *Store) DeleteGoal(doc *Document, id string) (bool, error) {
	for i, g := range doc.Goals {
		if g.ID == id {
			doc.Goals = append(doc.Goals[:i], doc.Goals[i+1:]...)
			if err := s.Save(*doc); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

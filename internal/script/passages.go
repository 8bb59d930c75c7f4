package script

import "errors"

// Passage is a block of narrative text identified by a stable ID.
type Passage struct {
	ID    string   `json:"id"`    // Unique identifier (e.g., "intro")
	Lines []string `json:"lines"` // Text lines, displayed in order
}

// PassagesFile represents the structure of passages.json.
type PassagesFile struct {
	Passages []Passage `json:"passages"`
}

// LoadPassages reads all narrative passages from the embedded passages.json.
func LoadPassages() ([]Passage, error) {
	file, err := Load[PassagesFile]("passages.json")
	if err != nil {
		return nil, err
	}
	return file.Passages, nil
}

// PassageRegistry holds loaded passages and provides lookup by ID.
type PassageRegistry struct {
	passages map[string][]string
	all      []Passage
}

// NewPassageRegistry creates a registry from loaded passages.
func NewPassageRegistry(passages []Passage) *PassageRegistry {
	registry := &PassageRegistry{
		passages: make(map[string][]string, len(passages)),
		all:      passages,
	}
	for _, p := range passages {
		registry.passages[p.ID] = p.Lines
	}
	return registry
}

// LoadPassageRegistry loads and creates a registry from the embedded passages.json.
func LoadPassageRegistry() (*PassageRegistry, error) {
	passages, err := LoadPassages()
	if err != nil {
		return nil, err
	}
	if len(passages) == 0 {
		return nil, errors.New("no passages loaded from passages.json")
	}
	return NewPassageRegistry(passages), nil
}

// MustLoadPassageRegistry loads a registry, panicking on error.
func MustLoadPassageRegistry() *PassageRegistry {
	registry, err := LoadPassageRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Lines returns the text lines for the given passage ID, or nil if not found.
func (r *PassageRegistry) Lines(id string) []string {
	return r.passages[id]
}

// Has reports whether a passage with the given ID exists.
func (r *PassageRegistry) Has(id string) bool {
	_, ok := r.passages[id]
	return ok
}

// Count returns the number of passages in the registry.
func (r *PassageRegistry) Count() int {
	return len(r.all)
}

package script

import (
	"errors"
	"math/rand"
)

// Question defines a trivia question loaded from JSON.
type Question struct {
	ID       string `json:"id"`       // Unique identifier (e.g., "cpu")
	Question string `json:"question"` // The question text
	Options  string `json:"options"`  // Pre-formatted answer options on one line
	Answer   string `json:"answer"`   // Correct answer letter, lowercase
}

// TriviaFile represents the structure of trivia.json.
type TriviaFile struct {
	Questions []Question `json:"questions"`
}

// LoadQuestions reads the trivia pool from the embedded trivia.json.
func LoadQuestions() ([]Question, error) {
	file, err := Load[TriviaFile]("trivia.json")
	if err != nil {
		return nil, err
	}
	return file.Questions, nil
}

// TriviaRegistry holds the loaded question pool and provides random selection.
type TriviaRegistry struct {
	questions []Question
	byID      map[string]*Question
}

// NewTriviaRegistry creates a registry from loaded questions.
func NewTriviaRegistry(questions []Question) *TriviaRegistry {
	registry := &TriviaRegistry{
		questions: questions,
		byID:      make(map[string]*Question, len(questions)),
	}
	for i := range questions {
		registry.byID[questions[i].ID] = &questions[i]
	}
	return registry
}

// LoadTriviaRegistry loads and creates a registry from the embedded trivia.json.
func LoadTriviaRegistry() (*TriviaRegistry, error) {
	questions, err := LoadQuestions()
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, errors.New("no questions loaded from trivia.json")
	}
	return NewTriviaRegistry(questions), nil
}

// MustLoadTriviaRegistry loads a registry, panicking on error.
func MustLoadTriviaRegistry() *TriviaRegistry {
	registry, err := LoadTriviaRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// PickRandom selects a question uniformly at random from the pool.
func (r *TriviaRegistry) PickRandom(rng *rand.Rand) *Question {
	if len(r.questions) == 0 {
		return nil
	}
	return &r.questions[rng.Intn(len(r.questions))]
}

// GetByID returns the question with the given ID, or nil if not found.
func (r *TriviaRegistry) GetByID(id string) *Question {
	return r.byID[id]
}

// All returns all questions in the pool.
func (r *TriviaRegistry) All() []Question {
	return r.questions
}

// Count returns the number of questions in the pool.
func (r *TriviaRegistry) Count() int {
	return len(r.questions)
}

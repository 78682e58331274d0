package domain

import (
	"errors"
	"fmt"
)

// Entry-specific validation errors
var (
	// ErrEntryWordEmpty is returned when an entry's headword is empty.
	ErrEntryWordEmpty = errors.New("entry word cannot be empty")

	// ErrBadRecord is returned when a source record cannot be converted
	// into an Entry because one of the required fields is absent.
	ErrBadRecord = errors.New("malformed source record")
)

// Record field keys expected from a data source. A record must carry all
// six keys to be convertible into an Entry; values may be empty strings.
const (
	FieldWord         = "word"
	FieldExplanation  = "explanation"
	FieldRelatedWords = "related_words"
	FieldPOS          = "pos"
	FieldUsage        = "usage"
	FieldSentence     = "sentence"
)

// requiredFields lists every key a source record must contain.
var requiredFields = []string{
	FieldWord,
	FieldExplanation,
	FieldRelatedWords,
	FieldPOS,
	FieldUsage,
	FieldSentence,
}

// Entry represents a single vocabulary item: the prompt-side headword plus
// the answer-side material (meaning, related words, usage note, example).
// Entries are immutable values once constructed from a source record or the
// built-in sample set.
type Entry struct {
	Word         string `json:"word"`
	Explanation  string `json:"explanation"`
	RelatedWords string `json:"related_words"`
	POS          string `json:"pos"`
	Usage        string `json:"usage"`
	Sentence     string `json:"sentence"`
}

// NewEntry creates an Entry from its six fields.
// Returns an error if validation fails.
func NewEntry(word, explanation, relatedWords, pos, usage, sentence string) (Entry, error) {
	e := Entry{
		Word:         word,
		Explanation:  explanation,
		RelatedWords: relatedWords,
		POS:          pos,
		Usage:        usage,
		Sentence:     sentence,
	}

	if err := e.Validate(); err != nil {
		return Entry{}, err
	}

	return e, nil
}

// EntryFromRecord converts a raw source record into an Entry by exact key
// match. A record missing any of the six required keys produces an error
// wrapping ErrBadRecord; there is no silent coercion or defaulting.
func EntryFromRecord(rec map[string]string) (Entry, error) {
	for _, field := range requiredFields {
		if _, ok := rec[field]; !ok {
			return Entry{}, fmt.Errorf("%w: missing field %q", ErrBadRecord, field)
		}
	}

	return NewEntry(
		rec[FieldWord],
		rec[FieldExplanation],
		rec[FieldRelatedWords],
		rec[FieldPOS],
		rec[FieldUsage],
		rec[FieldSentence],
	)
}

// Validate checks if the Entry has valid data.
func (e Entry) Validate() error {
	if e.Word == "" {
		return ErrEntryWordEmpty
	}
	return nil
}

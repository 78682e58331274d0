package domain

import (
	"errors"
	"testing"
)

func validRecord() map[string]string {
	return map[string]string{
		"word":          "abate",
		"explanation":   "減少；減輕",
		"related_words": "diminish, subside, decrease",
		"pos":           "v.",
		"usage":         "通常指強度、數量或程度的減少",
		"sentence":      "The storm began to abate after midnight.",
	}
}

func TestNewEntry(t *testing.T) {
	t.Parallel()

	entry, err := NewEntry("abate", "減少；減輕", "diminish", "v.", "usage note", "The storm began to abate.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if entry.Word != "abate" {
		t.Errorf("Expected word %q, got %q", "abate", entry.Word)
	}

	// Empty headword is the one invalid construction
	_, err = NewEntry("", "x", "x", "x", "x", "x")
	if !errors.Is(err, ErrEntryWordEmpty) {
		t.Errorf("Expected error %v, got %v", ErrEntryWordEmpty, err)
	}
}

func TestEntryFromRecord(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	entry, err := EntryFromRecord(rec)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if entry.Word != rec["word"] {
		t.Errorf("Expected word %q, got %q", rec["word"], entry.Word)
	}
	if entry.Explanation != rec["explanation"] {
		t.Errorf("Expected explanation %q, got %q", rec["explanation"], entry.Explanation)
	}
	if entry.RelatedWords != rec["related_words"] {
		t.Errorf("Expected related words %q, got %q", rec["related_words"], entry.RelatedWords)
	}
	if entry.POS != rec["pos"] {
		t.Errorf("Expected pos %q, got %q", rec["pos"], entry.POS)
	}
	if entry.Usage != rec["usage"] {
		t.Errorf("Expected usage %q, got %q", rec["usage"], entry.Usage)
	}
	if entry.Sentence != rec["sentence"] {
		t.Errorf("Expected sentence %q, got %q", rec["sentence"], entry.Sentence)
	}
}

func TestEntryFromRecordMissingField(t *testing.T) {
	t.Parallel()

	for _, field := range requiredFields {
		rec := validRecord()
		delete(rec, field)

		_, err := EntryFromRecord(rec)
		if !errors.Is(err, ErrBadRecord) {
			t.Errorf("Expected ErrBadRecord for missing %q, got %v", field, err)
		}
	}
}

func TestEntryFromRecordEmptyValuesAllowed(t *testing.T) {
	t.Parallel()

	// Fields may be empty strings as long as the key exists and the
	// headword itself is non-empty.
	rec := validRecord()
	rec["usage"] = ""
	rec["related_words"] = ""

	entry, err := EntryFromRecord(rec)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if entry.Usage != "" {
		t.Errorf("Expected empty usage, got %q", entry.Usage)
	}
}

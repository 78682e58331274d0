package domain

import "testing"

func sampleEntry() *Entry {
	return &Entry{
		Word:         "aberrant",
		Explanation:  "偏離常軌的；異常的",
		RelatedWords: "deviant, abnormal, atypical",
		POS:          "adj.",
		Usage:        "用來形容行為或現象偏離正常標準",
		Sentence:     "His aberrant behavior worried his friends.",
	}
}

func TestCardInitialState(t *testing.T) {
	t.Parallel()

	card := NewCard()

	if card.Current() != nil {
		t.Error("Expected no current entry on a fresh card")
	}
	if card.IsFlipped() {
		t.Error("Expected fresh card to be unflipped")
	}

	view := card.CurrentView()
	if view.State != ViewEmpty {
		t.Errorf("Expected state %q, got %q", ViewEmpty, view.State)
	}
	if view.Front != nil || view.Back != nil {
		t.Error("Expected no faces on an empty view")
	}
}

func TestFlipOnEmptyCardIsNoOp(t *testing.T) {
	t.Parallel()

	// Flipping an empty card any number of times leaves it empty.
	card := NewCard()
	for i := 0; i < 5; i++ {
		card.Flip()
	}

	if card.Current() != nil || card.IsFlipped() {
		t.Error("Expected card to remain in the empty state after flips")
	}
	if view := card.CurrentView(); view.State != ViewEmpty {
		t.Errorf("Expected state %q, got %q", ViewEmpty, view.State)
	}
}

func TestDrawResetsFlip(t *testing.T) {
	t.Parallel()

	card := NewCard()
	card.DrawNew(sampleEntry())
	card.Flip()

	if !card.IsFlipped() {
		t.Fatal("Expected card to be flipped")
	}

	// A new draw forces the front side regardless of prior flip state.
	card.DrawNew(sampleEntry())
	if card.IsFlipped() {
		t.Error("Expected draw to reset flip state")
	}
	if view := card.CurrentView(); view.State != ViewFront {
		t.Errorf("Expected state %q, got %q", ViewFront, view.State)
	}
}

func TestFlipToggles(t *testing.T) {
	t.Parallel()

	card := NewCard()
	card.DrawNew(sampleEntry())

	card.Flip()
	if !card.IsFlipped() {
		t.Error("Expected card flipped after one flip")
	}

	card.Flip()
	if card.IsFlipped() {
		t.Error("Expected double flip to return to front")
	}
}

func TestDrawNilIsNoOp(t *testing.T) {
	t.Parallel()

	card := NewCard()
	card.DrawNew(nil)

	if card.Current() != nil {
		t.Error("Expected drawing nil to leave the card empty")
	}
	if view := card.CurrentView(); view.State != ViewEmpty {
		t.Errorf("Expected state %q, got %q", ViewEmpty, view.State)
	}

	// Drawing nil over an existing entry must not clear it either.
	entry := sampleEntry()
	card.DrawNew(entry)
	card.Flip()
	card.DrawNew(nil)

	if card.Current() != entry {
		t.Error("Expected current entry to be unchanged after nil draw")
	}
	if !card.IsFlipped() {
		t.Error("Expected flip state to be unchanged after nil draw")
	}
}

func TestCurrentViewFrontFields(t *testing.T) {
	t.Parallel()

	entry := sampleEntry()
	card := NewCard()
	card.DrawNew(entry)

	view := card.CurrentView()
	if view.State != ViewFront {
		t.Fatalf("Expected state %q, got %q", ViewFront, view.State)
	}
	if view.Front == nil {
		t.Fatal("Expected front face to be present")
	}
	if view.Back != nil {
		t.Error("Expected back face to be absent on front view")
	}

	if view.Front.Word != entry.Word ||
		view.Front.POS != entry.POS ||
		view.Front.Usage != entry.Usage ||
		view.Front.Sentence != entry.Sentence {
		t.Errorf("Front face does not match entry: %+v", view.Front)
	}
}

func TestCurrentViewBackFields(t *testing.T) {
	t.Parallel()

	entry := sampleEntry()
	card := NewCard()
	card.DrawNew(entry)
	card.Flip()

	view := card.CurrentView()
	if view.State != ViewBack {
		t.Fatalf("Expected state %q, got %q", ViewBack, view.State)
	}
	if view.Back == nil {
		t.Fatal("Expected back face to be present")
	}
	if view.Front != nil {
		t.Error("Expected front face to be absent on back view")
	}

	if view.Back.Word != entry.Word ||
		view.Back.Explanation != entry.Explanation ||
		view.Back.POS != entry.POS ||
		view.Back.Usage != entry.Usage ||
		view.Back.RelatedWords != entry.RelatedWords {
		t.Errorf("Back face does not match entry: %+v", view.Back)
	}
}

func TestDrawFlipFlipYieldsFront(t *testing.T) {
	t.Parallel()

	// draw -> flip -> flip ends on the front of the same entry.
	entry := sampleEntry()
	card := NewCard()
	card.DrawNew(entry)
	card.Flip()
	card.Flip()

	view := card.CurrentView()
	if view.State != ViewFront {
		t.Errorf("Expected state %q, got %q", ViewFront, view.State)
	}
	if view.Front == nil || view.Front.Word != entry.Word {
		t.Error("Expected front view of the drawn entry")
	}
}

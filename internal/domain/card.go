package domain

// ViewState identifies which of the three card display states is active.
type ViewState string

const (
	// ViewEmpty means no entry has been drawn yet.
	ViewEmpty ViewState = "empty"

	// ViewFront shows the prompt side of the current entry.
	ViewFront ViewState = "front"

	// ViewBack shows the answer side of the current entry.
	ViewBack ViewState = "back"
)

// FrontFace is the prompt-side projection of an entry: the headword and the
// cues that help recall its meaning, but not the meaning itself.
type FrontFace struct {
	Word     string `json:"word"`
	POS      string `json:"pos"`
	Usage    string `json:"usage"`
	Sentence string `json:"sentence"`
}

// BackFace is the answer-side projection of an entry.
type BackFace struct {
	Word         string `json:"word"`
	Explanation  string `json:"explanation"`
	POS          string `json:"pos"`
	Usage        string `json:"usage"`
	RelatedWords string `json:"related_words"`
}

// CardView is the tagged render output of a Card. Exactly one of Front and
// Back is non-nil unless State is ViewEmpty, in which case both are nil.
// The two faces are pure projections of the same entry; the view creates no
// new data.
type CardView struct {
	State ViewState  `json:"state"`
	Front *FrontFace `json:"front,omitempty"`
	Back  *BackFace  `json:"back,omitempty"`
}

// Card tracks which entry is currently displayed and whether it is flipped
// to its answer side. The zero value (nothing drawn, unflipped) is the
// initial state of every session.
//
// State machine:
//
//	Empty --draw--> Front
//	Front --draw--> Front (new entry, flip reset)
//	Back  --draw--> Front
//	Front --flip--> Back
//	Back  --flip--> Front
//	Empty --flip--> Empty (no-op)
type Card struct {
	current *Entry
	flipped bool
}

// NewCard creates a Card in the Empty state.
func NewCard() *Card {
	return &Card{}
}

// DrawNew makes entry the current entry and resets the card to its front
// side, regardless of prior state. Drawing nil is a no-op; callers are
// expected to check store emptiness first.
func (c *Card) DrawNew(entry *Entry) {
	if entry == nil {
		return
	}
	c.current = entry
	c.flipped = false
}

// Flip toggles between the front and back of the current entry. Flipping
// when nothing has been drawn is a no-op, not an error.
func (c *Card) Flip() {
	if c.current == nil {
		return
	}
	c.flipped = !c.flipped
}

// Current returns the entry being displayed, or nil if none has been drawn.
func (c *Card) Current() *Entry {
	return c.current
}

// IsFlipped reports whether the card shows its answer side.
func (c *Card) IsFlipped() bool {
	return c.flipped
}

// CurrentView derives the render output from the card's state. It is a pure
// projection and never mutates the card.
func (c *Card) CurrentView() CardView {
	if c.current == nil {
		return CardView{State: ViewEmpty}
	}

	if c.flipped {
		return CardView{
			State: ViewBack,
			Back: &BackFace{
				Word:         c.current.Word,
				Explanation:  c.current.Explanation,
				POS:          c.current.POS,
				Usage:        c.current.Usage,
				RelatedWords: c.current.RelatedWords,
			},
		}
	}

	return CardView{
		State: ViewFront,
		Front: &FrontFace{
			Word:     c.current.Word,
			POS:      c.current.POS,
			Usage:    c.current.Usage,
			Sentence: c.current.Sentence,
		},
	}
}

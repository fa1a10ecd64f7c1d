package render

// --- Renderer options ------------------------------------------------------

// Option configures a renderer.
type Option func(c *config)

type config struct {
	mode   uint   // toggles, set by renderer options
	markup Markup // output flavour
}

const (
	optionShowReading      uint = 1 << 1 // show visible readings as ruby
	optionShowEnding       uint = 1 << 2 // show endings (linear order only)
	optionShowMarks        uint = 1 << 3 // show reading-order marks (linear order only)
	optionShowPunctuation  uint = 1 << 4 // keep 。 and 、
	optionIdeographicMarks uint = 1 << 5 // use Kanbun annotation characters for marks
	optionHiragana         uint = 1 << 6 // fold katakana to hiragana (kundoku only)
)

const defaultMode = optionShowReading | optionShowEnding | optionShowMarks | optionShowPunctuation

func newConfig(opts []Option) *config {
	c := &config{mode: defaultMode, markup: HTML}
	for _, opt := range opts {
		opt(c)
	}
	if c.markup == nil {
		c.markup = HTML
	}
	return c
}

func (c *config) set(m uint, b bool) {
	if b {
		c.mode |= m
	} else {
		c.mode &^= m
	}
}

func (c *config) hasMode(m uint) bool {
	return c.mode&m > 0
}

// ShowReading toggles the display of visible readings (ruby). Hidden readings
// are unaffected: they are never shown in linear order and always replace
// their glyph in kundoku order.
func ShowReading(b bool) Option {
	return func(c *config) {
		c.set(optionShowReading, b)
	}
}

// ShowEnding toggles the display of endings in linear order.
func ShowEnding(b bool) Option {
	return func(c *config) {
		c.set(optionShowEnding, b)
	}
}

// ShowMarks toggles the display of reading-order marks and vertical links
// in linear order.
func ShowMarks(b bool) Option {
	return func(c *config) {
		c.set(optionShowMarks, b)
	}
}

// ShowPunctuation toggles the display of punctuation glyphs.
func ShowPunctuation(b bool) Option {
	return func(c *config) {
		c.set(optionShowPunctuation, b)
	}
}

// IdeographicMarks makes the linear renderer display marks with the Kanbun
// annotation characters ㆐…㆟ instead of subscripted mark symbols.
func IdeographicMarks(b bool) Option {
	return func(c *config) {
		c.set(optionIdeographicMarks, b)
	}
}

// Hiragana makes the kundoku renderer output hiragana instead of katakana.
func Hiragana(b bool) Option {
	return func(c *config) {
		c.set(optionHiragana, b)
	}
}

// WithMarkup selects the markup flavour of the output. The default is HTML.
func WithMarkup(m Markup) Option {
	return func(c *config) {
		c.markup = m
	}
}

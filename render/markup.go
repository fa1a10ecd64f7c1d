package render

// Markup is a flavour of output markup. Renderers use it to decorate the
// parts of an annotated unit.
type Markup interface {
	Ruby(base, reading string) string // base glyph with a reading beside it
	Ending(s string) string           // ending in linear order
	Marks(s string) string            // reading-order mark symbols
	Segment(s string) string          // a unit which must not be broken
}

// HTML renders units as HTML fragments: readings as <ruby>, endings as
// <sup>, marks as <sub> and units as <nobr>.
var HTML Markup = htmlMarkup{}

// Aozora renders units as plain text, with readings in the notation of
// Aozora Bunko (base《reading》) and marks as ［＃…］ annotations.
var Aozora Markup = aozoraMarkup{}

type htmlMarkup struct{}

func (htmlMarkup) Ruby(base, reading string) string {
	return "<ruby>" + base + "<rt>" + reading + "</rt></ruby>"
}

func (htmlMarkup) Ending(s string) string {
	return "<sup>" + s + "</sup>"
}

func (htmlMarkup) Marks(s string) string {
	return "<sub style='font-size: x-small;'>" + s + "</sub>"
}

func (htmlMarkup) Segment(s string) string {
	return "<nobr>" + s + "</nobr>"
}

type aozoraMarkup struct{}

func (aozoraMarkup) Ruby(base, reading string) string {
	return base + "《" + reading + "》"
}

func (aozoraMarkup) Ending(s string) string {
	return s
}

func (aozoraMarkup) Marks(s string) string {
	return "［＃" + s + "］"
}

func (aozoraMarkup) Segment(s string) string {
	return s
}

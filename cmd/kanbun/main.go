// Command kanbun renders annotated Kanbun text in Chinese or Japanese
// reading order.
//
//	kanbun kundoku '読ム［＃二］書ヲ［＃一］。'
//	kanbun chinese --plain --ideographic -
//	kanbun repl
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/kanbun"
	"github.com/npillmayer/kanbun/render"
	"github.com/npillmayer/kanbun/reorder"
	"github.com/npillmayer/kanbun/retain"
	"github.com/npillmayer/kanbun/tokenize"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"golang.org/x/text/width"
)

// tracer traces to the global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// CLI defines the command-line interface for kanbun.
var CLI struct {
	Trace string `help:"Trace level [Debug|Info|Error]" default:"Error" enum:"Debug,Info,Error"`

	Chinese ChineseCmd `cmd:"" help:"Render text in Chinese reading order"`
	Kundoku KundokuCmd `cmd:"" help:"Render text in Japanese reading order (書き下し文)"`
	Tokens  TokensCmd  `cmd:"" help:"List the annotated units of a text"`
	Restore RestoreCmd `cmd:"" help:"Recover or re-render the original of rendered markup"`
	Repl    ReplCmd    `cmd:"" help:"Interactive mode"`
}

// Output holds flags common to the rendering commands.
type Output struct {
	Plain  bool     `help:"Output plain text instead of HTML"`
	Retain bool     `help:"Append the original text as an HTML comment"`
	Text   []string `arg:"" help:"Annotated text; '-' reads lines from stdin"`
}

func (o Output) markup() render.Markup {
	if o.Plain {
		return render.Aozora
	}
	return render.HTML
}

// ChineseCmd renders text in Chinese reading order.
type ChineseCmd struct {
	Output        `embed:""`
	NoReading     bool `help:"Do not show readings"`
	NoEnding      bool `help:"Do not show endings"`
	NoMarks       bool `help:"Do not show reading-order marks"`
	NoPunctuation bool `help:"Do not show punctuation"`
	Ideographic   bool `help:"Show marks as Kanbun annotation characters"`
}

func (c *ChineseCmd) options() []render.Option {
	return []render.Option{
		render.WithMarkup(c.markup()),
		render.ShowReading(!c.NoReading),
		render.ShowEnding(!c.NoEnding),
		render.ShowMarks(!c.NoMarks),
		render.ShowPunctuation(!c.NoPunctuation),
		render.IdeographicMarks(c.Ideographic),
	}
}

func (c *ChineseCmd) Run(ctx *kong.Context) error {
	opts := c.options()
	return c.each(func(text string) (string, error) {
		return render.Chinese(text, opts...)
	})
}

// KundokuCmd renders text in Japanese reading order.
type KundokuCmd struct {
	Output        `embed:""`
	NoReading     bool   `help:"Do not show readings"`
	NoPunctuation bool   `help:"Do not show punctuation"`
	Script        string `help:"Kana script for readings and endings" default:"auto" enum:"auto,hiragana,katakana"`
}

func (c *KundokuCmd) options() []render.Option {
	hiragana := c.Script == "hiragana"
	if c.Script == "auto" {
		hiragana = hiraganaByLocale()
	}
	return []render.Option{
		render.WithMarkup(c.markup()),
		render.ShowReading(!c.NoReading),
		render.ShowPunctuation(!c.NoPunctuation),
		render.Hiragana(hiragana),
	}
}

func (c *KundokuCmd) Run(ctx *kong.Context) error {
	opts := c.options()
	return c.each(func(text string) (string, error) {
		return render.Kundoku(text, opts...)
	})
}

// each renders every input text and prints the results. Texts which cannot
// be rendered are reported and skipped.
func (o Output) each(r retain.Renderer) error {
	failed, total := 0, 0
	err := forEachText(o.Text, func(text string) {
		total++
		out, err := r(text)
		if err != nil {
			pterm.Error.Println(err.Error())
			failed++
			return
		}
		if o.Retain {
			out = retain.Embed(out, text)
		}
		fmt.Println(out)
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d texts could not be rendered", failed, total)
	}
	return nil
}

// TokensCmd lists the annotated units of a text.
type TokensCmd struct {
	Ordered bool     `help:"List units in Japanese reading order"`
	Text    []string `arg:"" help:"Annotated text; '-' reads lines from stdin"`
}

func (c *TokensCmd) Run(ctx *kong.Context) error {
	var failed error
	err := forEachText(c.Text, func(text string) {
		tokens, err := tokenize.Tokenize(text)
		if err == nil && c.Ordered {
			tokens, err = reorder.Checked(tokens)
		}
		if err != nil {
			pterm.Error.Println(err.Error())
			failed = err
			return
		}
		if err := tokenTable(tokens).Render(); err != nil {
			tracer().Errorf(err.Error())
		}
	})
	if err != nil {
		return err
	}
	return failed
}

func tokenTable(tokens []kanbun.Token) *pterm.TablePrinter {
	data := pterm.TableData{
		{"#", "span", "glyph", "reading", "ending", "re-reading", "re-ending", "marks"},
	}
	for i, t := range tokens {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d…%d", t.Span.From, t.Span.To),
			t.Glyph,
			t.Reading.String(),
			t.Ending,
			t.ReReading.String(),
			t.ReEnding,
			t.Marks(),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data)
}

// RestoreCmd recovers the original text retained in rendered markup, or
// renders it again.
type RestoreCmd struct {
	To     string   `help:"Output of restoring" default:"original" enum:"original,chinese,kundoku"`
	Markup []string `arg:"" help:"Rendered markup with retained original; '-' reads lines from stdin"`
}

func (c *RestoreCmd) Run(ctx *kong.Context) error {
	var r retain.Renderer
	switch c.To {
	case "chinese":
		r = func(text string) (string, error) { return render.Chinese(text) }
	case "kundoku":
		r = func(text string) (string, error) { return render.Kundoku(text) }
	}
	var failed error
	err := forEachArg(c.Markup, func(s string) {
		if r == nil {
			fmt.Println(retain.Original(s))
			return
		}
		out, err := retain.Restore(s, r)
		if err != nil {
			pterm.Error.Println(err.Error())
			failed = err
		}
		fmt.Println(out)
	})
	if err != nil {
		return err
	}
	return failed
}

// forEachText calls f for every annotated text argument. The argument "-"
// denotes the lines of stdin.
func forEachText(args []string, f func(string)) error {
	return forEachArg(args, func(s string) {
		f(normalize(s))
	})
}

// forEachArg calls f for every argument, unmodified.
func forEachArg(args []string, f func(string)) error {
	for _, arg := range args {
		if arg != "-" {
			f(arg)
			continue
		}
		if err := forEachLine(os.Stdin, f); err != nil {
			return err
		}
	}
	return nil
}

func forEachLine(r io.Reader, f func(string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			f(line)
		}
	}
	return scanner.Err()
}

// normalize maps half-width kana and punctuation to their full-width forms,
// as used by the annotation syntax.
func normalize(s string) string {
	return width.Widen.String(s)
}

func setTraceLevel(level string) {
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	default:
		tracer().SetTraceLevel(tracing.LevelError)
	}
}

func main() {
	initDisplay()
	gtrace.CoreTracer = gologadapter.New()
	ctx := kong.Parse(&CLI,
		kong.Name("kanbun"),
		kong.Description("Render annotated Kanbun (漢文) text"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	setTraceLevel(CLI.Trace)
	tracer().Infof("Trace level is %s", CLI.Trace)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

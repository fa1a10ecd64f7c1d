package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/chzyer/readline"
	"github.com/npillmayer/kanbun/render"
	"github.com/pterm/pterm"
)

// ReplCmd starts interactive mode.
type ReplCmd struct {
	Script string `help:"Kana script for kundoku output" default:"auto" enum:"auto,hiragana,katakana"`
}

func (c *ReplCmd) Run(ctx *kong.Context) error {
	repl, err := readline.New("漢文 > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	hiragana := c.Script == "hiragana"
	if c.Script == "auto" {
		hiragana = hiraganaByLocale()
	}
	intp := &Intp{repl: repl, mode: modeBoth, hiragana: hiragana}
	pterm.Info.Println("Welcome to the Kanbun REPL")
	pterm.Info.Println("Switch output with :chinese, :kundoku, :both; quit with :quit or <ctrl>D")
	intp.REPL()
	return nil
}

type outputMode int

const (
	modeBoth outputMode = iota
	modeChinese
	modeKundoku
)

func (m outputMode) String() string {
	switch m {
	case modeChinese:
		return "chinese"
	case modeKundoku:
		return "kundoku"
	}
	return "both"
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	mode     outputMode
	hiragana bool
}

// REPL reads lines of annotated text and renders them until the user quits.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.command(line[1:]); quit {
				break
			}
			continue
		}
		intp.render(normalize(line))
	}
	pterm.Info.Println("Good bye!")
}

// command executes a REPL command and returns true if the REPL should quit.
func (intp *Intp) command(cmd string) bool {
	switch cmd {
	case "quit", "q":
		return true
	case "chinese":
		intp.mode = modeChinese
	case "kundoku":
		intp.mode = modeKundoku
	case "both":
		intp.mode = modeBoth
	case "hiragana":
		intp.hiragana = true
	case "katakana":
		intp.hiragana = false
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command :%s", cmd))
		return false
	}
	tracer().Infof("REPL mode is %s, hiragana=%v", intp.mode, intp.hiragana)
	return false
}

func (intp *Intp) render(text string) {
	if intp.mode != modeKundoku {
		s, err := render.Chinese(text, render.WithMarkup(render.Aozora), render.IdeographicMarks(true))
		if err != nil {
			pterm.Error.Println(err.Error())
			return
		}
		pterm.Println(s)
	}
	if intp.mode != modeChinese {
		s, err := render.Kundoku(text, render.WithMarkup(render.Aozora), render.Hiragana(intp.hiragana))
		if err != nil {
			pterm.Error.Println(err.Error())
			return
		}
		pterm.Println(s)
	}
}

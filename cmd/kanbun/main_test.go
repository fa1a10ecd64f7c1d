package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/kanbun/render"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestIsJapanese(t *testing.T) {
	assert.True(t, isJapanese(language.Make("ja-JP")))
	assert.True(t, isJapanese(language.Japanese))
	assert.False(t, isJapanese(language.Make("en-US")))
	assert.False(t, isJapanese(language.Make("de-AT")))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "読ム［＃二］書ヲ［＃一］。", normalize("読ﾑ［＃二］書ｦ［＃一］｡"))
}

func TestForEachLine(t *testing.T) {
	var lines []string
	err := forEachLine(strings.NewReader("山\n\n  川 \n"), func(s string) {
		lines = append(lines, s)
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"山", "川"}, lines)
}

func TestCommandOptions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	k := &KundokuCmd{Output: Output{Plain: true}, Script: "hiragana"}
	s, err := render.Kundoku("読ム［＃二］書ヲ［＃一］。", k.options()...)
	assert.NoError(t, err)
	assert.Equal(t, "書を読む。", s)
	c := &ChineseCmd{Output: Output{Plain: true}, NoMarks: true}
	s, err = render.Chinese("読ム［＃二］書ヲ［＃一］。", c.options()...)
	assert.NoError(t, err)
	assert.Equal(t, "読ム書ヲ。", s)
}

func TestREPLCommands(t *testing.T) {
	intp := &Intp{}
	assert.False(t, intp.command("kundoku"))
	assert.Equal(t, modeKundoku, intp.mode)
	assert.False(t, intp.command("hiragana"))
	assert.True(t, intp.hiragana)
	assert.False(t, intp.command("nonsense"))
	assert.Equal(t, modeKundoku, intp.mode)
	assert.True(t, intp.command("quit"))
}

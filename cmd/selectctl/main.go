// Command selectctl is a minimal demo driver for the selection engine: it
// loads a file into a buffer.Buffer, runs a raw-terminal keystroke loop,
// and dispatches resolved keybindings to selection operations, rendering
// the result with reverse-video highlighting. A "keys" subcommand exposes
// the keybinding inspection/debug tooling without entering the editor loop.
package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/modaltext/selectengine/buffer"
	"github.com/modaltext/selectengine/internal/config"
	"github.com/modaltext/selectengine/internal/keybindings"
	"github.com/modaltext/selectengine/internal/prompt"
	"github.com/modaltext/selectengine/internal/render"
	"github.com/modaltext/selectengine/internal/termio"
	"github.com/modaltext/selectengine/internal/ui"
	"github.com/modaltext/selectengine/selection"
)

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "keys" {
		if err := runKeysCommand(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "selectctl:", err)
			os.Exit(1)
		}
		return
	}
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: selectctl <file> | selectctl keys <show|debug> ...")
		os.Exit(2)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "selectctl:", err)
		os.Exit(1)
	}
}

func run(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	buf := buffer.New(string(data))

	mgr := config.NewConfigManager()
	if err := mgr.Load(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := mgr.GetConfig()
	opts := selection.DefaultOptions{Extra: []rune(cfg.Editing.ExtraWordChars), Tab: cfg.Editing.Tabstop}

	resolver := keybindings.NewKeyBindingResolver(mgr.GetConfig())
	keyMap, err := resolver.Resolve()
	if err != nil {
		return fmt.Errorf("resolving keybindings: %w", err)
	}

	term := termio.DefaultTerminal{}
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() { _ = term.Restore(int(os.Stdin.Fd()), state) }()

	formatter := ui.NewFormatter(os.Stdout)
	sels := selection.NewList(selection.NewSelection(buffer.Coord{0, 0}, buffer.Coord{0, 0}))

	loop := &editorLoop{
		buf:       buf,
		opts:      opts,
		keyMap:    keyMap,
		formatter: formatter,
		sels:      sels,
	}

	return loop.run()
}

// editorLoop drives the keystroke-read/dispatch/render cycle.
type editorLoop struct {
	buf       *buffer.Buffer
	opts      selection.Options
	keyMap    *keybindings.KeyBindingMap
	formatter *ui.Formatter
	sels      selection.List
}

func (e *editorLoop) run() error {
	e.render()
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return err
		}
		ks := keybindings.NewRawKeyStroke([]byte{buf[0]})
		if b := buf[0]; b >= 1 && b <= 26 && b != 9 && b != 13 {
			ks = keybindings.NewCtrlKeyStroke(rune('a' + b - 1))
		}
		if e.keyMap.MatchesKeyStroke("soft_cancel", ks) {
			return nil
		}
		if err := e.dispatch(ks); err != nil {
			e.formatter.Error(err)
		}
		e.render()
	}
}

func (e *editorLoop) dispatch(ks keybindings.KeyStroke) error {
	km := e.keyMap
	mapSel := func(f func(selection.Selection) selection.Selection) {
		e.sels = e.sels.Map(f)
	}
	switch {
	case km.MatchesKeyStroke("select_word", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectWord(e.buf, s, selection.Word, 0, e.opts)
		})
	case km.MatchesKeyStroke("select_unicode_word", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectUnicodeWord(e.buf, s)
		})
	case km.MatchesKeyStroke("select_line", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectLine(e.buf, s)
		})
	case km.MatchesKeyStroke("select_paragraph", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectParagraph(e.buf, s, 0)
		})
	case km.MatchesKeyStroke("select_sentence", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectSentence(e.buf, s, 0)
		})
	case km.MatchesKeyStroke("select_whitespaces", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectWhitespaces(e.buf, s)
		})
	case km.MatchesKeyStroke("select_indent_block", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectIndentBlock(e.buf, s, e.opts)
		})
	case km.MatchesKeyStroke("select_matching", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectMatching(e.buf, s)
		})
	case km.MatchesKeyStroke("select_surrounding", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectSurrounding(e.buf, s, "(", ")", selection.ToBegin|selection.ToEnd)
		})
	case km.MatchesKeyStroke("select_argument", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectArgument(e.buf, s, 0)
		})
	case km.MatchesKeyStroke("select_number", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectNumber(e.buf, s, 0)
		})
	case km.MatchesKeyStroke("select_buffer", ks):
		e.sels = selection.SelectBuffer(e.buf)
	case km.MatchesKeyStroke("select_lines", ks):
		e.sels = selection.SelectLines(e.buf, e.sels)
	case km.MatchesKeyStroke("trim_partial_lines", ks):
		e.sels = selection.TrimPartialLines(e.buf, e.sels)
	case km.MatchesKeyStroke("move_right", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectToNextWord(e.buf, s, selection.Word, e.opts)
		})
	case km.MatchesKeyStroke("move_left", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectToPreviousWord(e.buf, s, selection.Word, e.opts)
		})
	case km.MatchesKeyStroke("move_to_line_begin", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectToLineBegin(e.buf, s)
		})
	case km.MatchesKeyStroke("move_to_line_end", ks):
		mapSel(func(s selection.Selection) selection.Selection {
			return selection.SelectToLineEnd(e.buf, s)
		})
	case km.MatchesKeyStroke("search", ks):
		return e.promptSearch()
	}
	return nil
}

func (e *editorLoop) promptSearch() error {
	term := termio.DefaultTerminal{}
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err == nil {
		defer func() { _ = term.Restore(int(os.Stdin.Fd()), state) }()
	}
	p := prompt.New(os.Stdin, os.Stdout)
	pattern, canceled, err := p.Input("search pattern: ")
	if err != nil {
		return err
	}
	if canceled || pattern == "" {
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	var wrapped bool
	next, err := selection.FindNextMatch(e.buf, e.sels, re, selection.Forward, true, &wrapped)
	if err != nil {
		return err
	}
	if wrapped {
		e.formatter.Print("search wrapped to start of buffer\r\n")
	}
	e.sels = next
	return nil
}

func (e *editorLoop) render() {
	e.formatter.Print("\033[2J\033[H")
	colors := e.formatter.Colors()
	for i := 0; i < e.buf.LineCount(); i++ {
		e.formatter.Println(render.Line(e.buf, i, e.sels, colors))
	}
}

// runKeysCommand implements "selectctl keys <show|debug>", exposing the
// keybinding inspection/debug tooling outside of the interactive editor loop.
func runKeysCommand(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: selectctl keys <show|debug> ...")
	}

	mgr := config.NewConfigManager()
	if err := mgr.Load(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	resolver := keybindings.NewKeyBindingResolver(mgr.GetConfig())

	switch args[0] {
	case "show":
		return keybindings.NewShowKeysCommand(resolver).Execute()
	case "debug":
		if len(args) < 2 {
			return fmt.Errorf("usage: selectctl keys debug <output-file>")
		}
		return runKeysDebug(args[1])
	default:
		return fmt.Errorf("unknown keys subcommand: %s", args[0])
	}
}

func runKeysDebug(outputFile string) error {
	term := termio.DefaultTerminal{}
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer func() { _ = term.Restore(int(os.Stdin.Fd()), state) }()

	dkc := keybindings.NewDebugKeysCommand(outputFile)
	dkc.StartCapture()
	fmt.Fprintln(os.Stderr, "capturing keystrokes, press Ctrl+G to stop")
	buf := make([]byte, 16)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			break
		}
		seq := buf[:n]
		dkc.CaptureSequence(seq)
		if n == 1 && seq[0] == 7 {
			break
		}
	}
	return dkc.StopCapture()
}

package keybindings

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ShowKeysCommand displays the effective keybindings.
type ShowKeysCommand struct {
	resolver *KeyBindingResolver
}

// NewShowKeysCommand creates a new show keys command
func NewShowKeysCommand(resolver *KeyBindingResolver) *ShowKeysCommand {
	return &ShowKeysCommand{resolver: resolver}
}

// Execute prints every dispatchable action and its bound keystrokes.
func (skc *ShowKeysCommand) Execute() error {
	km, err := skc.resolver.Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve keybindings: %w", err)
	}

	fmt.Printf("selectctl keybindings\n")
	fmt.Printf("======================\n\n")

	rows := []struct {
		action, help string
		strokes      []KeyStroke
	}{
		{"select_word", "select the word under the cursor", km.SelectWord},
		{"select_unicode_word", "select the Unicode word under the cursor", km.SelectUnicodeWord},
		{"select_line", "select the current line", km.SelectLine},
		{"select_paragraph", "select the current paragraph", km.SelectParagraph},
		{"select_sentence", "select the current sentence", km.SelectSentence},
		{"select_whitespaces", "select the blank run under the cursor", km.SelectWhitespaces},
		{"select_indent_block", "select the enclosing indent block", km.SelectIndentBlock},
		{"select_matching", "jump to the matching bracket", km.SelectMatching},
		{"select_surrounding", "select the enclosing ( )", km.SelectSurrounding},
		{"select_argument", "select the enclosing call argument", km.SelectArgument},
		{"select_number", "select the number under the cursor", km.SelectNumber},
		{"select_buffer", "select the whole buffer", km.SelectBuffer},
		{"select_lines", "expand selections to whole lines", km.SelectLines},
		{"trim_partial_lines", "trim selections to whole lines", km.TrimPartialLines},
		{"move_right", "select to the next word", km.MoveRight},
		{"move_left", "select to the previous word", km.MoveLeft},
		{"move_to_line_begin", "select to line begin", km.MoveToLineBegin},
		{"move_to_line_end", "select to line end", km.MoveToLineEnd},
		{"search", "prompt for a regex and select the next match", km.Search},
		{"soft_cancel", "exit the editor loop", km.SoftCancel},
	}

	for _, row := range rows {
		fmt.Printf("  %-20s %-16s %s\n", row.action, FormatKeyStrokesForDisplay(row.strokes), row.help)
	}

	return nil
}

// DebugKeysCommand captures and displays raw key sequences
type DebugKeysCommand struct {
	capturing  bool
	sequences  [][]byte
	outputFile string
}

// NewDebugKeysCommand creates a new debug keys command
func NewDebugKeysCommand(outputFile string) *DebugKeysCommand {
	return &DebugKeysCommand{
		capturing:  false,
		sequences:  make([][]byte, 0),
		outputFile: outputFile,
	}
}

// StartCapture begins capturing raw key sequences
func (dkc *DebugKeysCommand) StartCapture() {
	dkc.capturing = true
	dkc.sequences = make([][]byte, 0)

	fmt.Printf("=== Debug Keys Mode ===\n")
	fmt.Printf("Raw key sequence capture started.\n")
	fmt.Printf("Press keys to see their sequences.\n")
	fmt.Printf("Press Ctrl+G to stop and view results.\n\n")
}

// CaptureSequence captures a raw key sequence
func (dkc *DebugKeysCommand) CaptureSequence(seq []byte) {
	if !dkc.capturing {
		return
	}

	// Make a copy of the sequence
	captured := make([]byte, len(seq))
	copy(captured, seq)
	dkc.sequences = append(dkc.sequences, captured)

	// Display immediately
	fmt.Printf("Captured: %v (hex: %x) (chars: %q)\n", seq, seq, seq)
}

// StopCapture stops capturing and shows results
func (dkc *DebugKeysCommand) StopCapture() error {
	if !dkc.capturing {
		return nil
	}

	dkc.capturing = false

	fmt.Printf("\n=== Capture Results ===\n")
	fmt.Printf("Total sequences captured: %d\n\n", len(dkc.sequences))

	if len(dkc.sequences) == 0 {
		fmt.Printf("No sequences captured.\n")
		return nil
	}

	// Display all captured sequences
	for i, seq := range dkc.sequences {
		fmt.Printf("%d. %v (hex: %x)\n", i+1, seq, seq)

		// Try to identify common sequences
		if identified := dkc.identifySequence(seq); identified != "" {
			fmt.Printf("   → Identified as: %s\n", identified)
		}

		// Show the raw bytes in hex
		fmt.Printf("   → Raw bytes (hex): %x\n", seq)
	}

	// Save to file if requested
	if dkc.outputFile != "" {
		if err := dkc.saveToFile(); err != nil {
			return fmt.Errorf("failed to save to file: %w", err)
		}
		fmt.Printf("\nSequences saved to: %s\n", dkc.outputFile)
	}

	fmt.Printf("\nNote: the config does not accept raw byte sequences as bindings.\n")

	return nil
}

// identifySequence tries to identify common key sequences
func (dkc *DebugKeysCommand) identifySequence(seq []byte) string { //nolint:revive // identifies many terminal escape sequences
	if len(seq) == 1 {
		switch seq[0] {
		case 9:
			return "Tab"
		case 13:
			return "Enter"
		case 27:
			return "Esc"
		case 32:
			return "Space"
		}
		if seq[0] >= 1 && seq[0] <= 26 {
			return fmt.Sprintf("Ctrl+%c", 'A'+seq[0]-1)
		}
	}

	if len(seq) == 3 && seq[0] == 27 && seq[1] == 91 {
		switch seq[2] {
		case 65:
			return "↑"
		case 66:
			return "↓"
		case 67:
			return "→"
		case 68:
			return "←"
		}
	}

	// Shift-modified arrow keys (CSI 1;2X sequences)
	if len(seq) == 6 && seq[0] == 27 && seq[1] == 91 && seq[2] == 49 && seq[3] == 59 {
		if seq[4] == 50 {
			switch seq[5] {
			case 65:
				return "Shift+↑"
			case 66:
				return "Shift+↓"
			case 67:
				return "Shift+→"
			case 68:
				return "Shift+←"
			}
		}
	}

	// Function keys
	if len(seq) >= 3 && seq[0] == 27 && seq[1] == 79 {
		switch seq[2] {
		case 80:
			return "F1"
		case 81:
			return "F2"
		case 82:
			return "F3"
		case 83:
			return "F4"
		}
	}

	return ""
}

// saveToFile saves captured sequences to a file
func (dkc *DebugKeysCommand) saveToFile() error {
	var content strings.Builder

	content.WriteString("# Raw Key Sequences Captured by selectctl debug-keys\n")
	content.WriteString(fmt.Sprintf("# Captured on: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	content.WriteString(fmt.Sprintf("# Total sequences: %d\n\n", len(dkc.sequences)))

	for i, seq := range dkc.sequences {
		content.WriteString(fmt.Sprintf("# Sequence %d\n", i+1))
		content.WriteString(fmt.Sprintf("# Raw: %v\n", seq))
		content.WriteString(fmt.Sprintf("# Hex: %x\n", seq))
		if identified := dkc.identifySequence(seq); identified != "" {
			content.WriteString(fmt.Sprintf("# Identified: %s\n", identified))
		}
		content.WriteString(fmt.Sprintf("raw:%x\n\n", seq))
	}

	if err := os.WriteFile(dkc.outputFile, []byte(content.String()), 0600); err != nil {
		return err
	}

	fmt.Printf("Saved to %s:\n%s", dkc.outputFile, content.String())

	return nil
}

// IsCapturing returns whether debug capture is active
func (dkc *DebugKeysCommand) IsCapturing() bool {
	return dkc.capturing
}

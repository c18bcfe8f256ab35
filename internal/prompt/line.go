package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/javoire/branchsweep/internal/ui"
)

// LinePrompter is the numeric menu. It reads whole lines from the input,
// so it works with pipes and redirected files as well as terminals.
type LinePrompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter constructs a numeric menu over in and out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: in, reader: bufio.NewReader(in), out: out}
}

// SelectBranch prints the numbered branch list and reads choices until one
// is valid, printing the list again after every invalid entry. End of input
// counts as quitting.
func (p *LinePrompter) SelectBranch(branches []string) (Selection, error) {
	for {
		p.printMenu(branches)
		fmt.Fprintf(p.out, "Enter a number, or %s to quit: ", QuitToken)
		line, eof, err := p.readLine()
		if err != nil {
			return Selection{}, err
		}
		if eof && line == "" {
			fmt.Fprintln(p.out)
			return QuitSelection, nil
		}

		selection, err := ParseChoice(line, branches)
		if errors.Is(err, ErrInvalidEntry) {
			fmt.Fprintln(p.out, ui.Warning("Invalid Entry"))
			if eof {
				return QuitSelection, nil
			}
			continue
		}
		return selection, nil
	}
}

func (p *LinePrompter) printMenu(branches []string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Which branch do you want to delete?")
	if len(branches) == 0 {
		fmt.Fprintln(p.out, ui.Dim("  (no branches)"))
	}
	for i, branch := range branches {
		fmt.Fprintf(p.out, "  %s %s\n", ui.Ordinal(i+1), branch)
	}
}

// Confirm asks a yes/no question. Only y or yes confirm; everything else,
// including an empty answer, declines.
func (p *LinePrompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N] ", question)
	line, _, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Close releases the input stream
func (p *LinePrompter) Close() error {
	return closeInput(p.in)
}

func (p *LinePrompter) readLine() (string, bool, error) {
	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return strings.TrimSpace(line), true, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), false, nil
}

// Package prompt asks the user which branch to delete and whether an
// unmerged branch should be force deleted.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// QuitToken is what the user types to leave the numeric menu
const QuitToken = "q"

// ErrInvalidEntry is returned by ParseChoice for out of range or non-numeric input
var ErrInvalidEntry = errors.New("invalid entry")

// Selection is the user's answer to the branch menu: either a branch name or Quit
type Selection struct {
	Branch string
	Quit   bool
}

// QuitSelection is the Quit sentinel
var QuitSelection = Selection{Quit: true}

// Prompter presents menus to the user. One prompter owns the input stream
// for the whole session and releases it on Close.
type Prompter interface {
	SelectBranch(branches []string) (Selection, error)
	Confirm(question string) (bool, error)
	Close() error
}

// Style is the menu presentation
type Style string

const (
	StyleAuto    Style = "auto"
	StyleList    Style = "list"
	StyleNumeric Style = "numeric"
)

// ParseStyle validates a menu style name
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleAuto, "":
		return StyleAuto, nil
	case StyleList:
		return StyleList, nil
	case StyleNumeric:
		return StyleNumeric, nil
	default:
		return "", fmt.Errorf("unknown menu style %q (want auto, list or numeric)", s)
	}
}

// Open creates the prompter for the given style. StyleAuto picks the
// choice list when both in and out are terminals and the numeric menu
// otherwise.
func Open(style Style, in io.Reader, out io.Writer) Prompter {
	if style == StyleAuto {
		style = StyleNumeric
		if isTerminal(in) && isTerminal(out) {
			style = StyleList
		}
	}
	if style == StyleList {
		return NewTerminalPrompter(in, out)
	}
	return NewLinePrompter(in, out)
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseChoice maps numeric menu input to a selection. "1".."count" select
// the matching branch, the quit token quits, anything else is ErrInvalidEntry.
func ParseChoice(input string, branches []string) (Selection, error) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, QuitToken) {
		return QuitSelection, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil || strconv.Itoa(n) != input || n < 1 || n > len(branches) {
		return Selection{}, ErrInvalidEntry
	}
	return Selection{Branch: branches[n-1]}, nil
}

// closeInput closes in when it is closable
func closeInput(in io.Reader) error {
	if c, ok := in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

package sweep

import (
	"errors"
	"fmt"
	"io"

	"github.com/javoire/branchsweep/internal/git"
	"github.com/javoire/branchsweep/internal/prompt"
	"github.com/javoire/branchsweep/internal/ui"
	"go.uber.org/zap"
)

// State is a step of the interaction loop
type State int

const (
	Listing State = iota
	Presenting
	ConfirmingForce
	Deleting
	Quitting
	Failed
)

var stateNames = map[State]string{
	Listing:         "listing",
	Presenting:      "presenting",
	ConfirmingForce: "confirming-force",
	Deleting:        "deleting",
	Quitting:        "quitting",
	Failed:          "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Loop is one interactive session. It owns the prompter and closes it when
// Run returns.
type Loop struct {
	service  *Service
	prompter prompt.Prompter
	out      io.Writer
	logger   *zap.Logger

	state    State
	branches []string
	selected string
	mode     DeletionMode
	err      error
}

// NewLoop creates a session over service and prompter
func NewLoop(service *Service, prompter prompt.Prompter, out io.Writer, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		service:  service,
		prompter: prompter,
		out:      out,
		logger:   logger,
		state:    Listing,
	}
}

// State returns the current state; after Run it is Quitting or Failed
func (l *Loop) State() State {
	return l.state
}

// Run drives the session until the user quits, or until the repository
// check, listing or a prompt fails. The error
// that ended the session, already shown to the user, is returned.
func (l *Loop) Run() error {
	fmt.Fprintln(l.out, ui.Banner(" Welcome. Let's do some housekeeping on your git repository. "))
	defer func() {
		if closeErr := l.prompter.Close(); closeErr != nil {
			l.logger.Debug("failed to release input", zap.Error(closeErr))
		}
		fmt.Fprintln(l.out, ui.Info("\nGoodbye."))
	}()

	if err := l.service.CheckRepository(); err != nil {
		l.state = l.fail(err)
	}

	for {
		previous := l.state
		switch l.state {
		case Listing:
			l.state = l.list()
		case Presenting:
			l.state = l.present()
		case ConfirmingForce:
			l.state = l.confirmForce()
		case Deleting:
			l.state = l.delete()
		case Quitting:
			return nil
		case Failed:
			return l.err
		}
		l.logger.Debug("state transition", zap.Stringer("from", previous), zap.Stringer("to", l.state))
	}
}

func (l *Loop) list() State {
	branches, err := l.service.ListBranches()
	if err != nil {
		return l.fail(err)
	}
	// replaced wholesale; menu positions never survive a relist
	l.branches = branches
	return Presenting
}

func (l *Loop) present() State {
	selection, err := l.prompter.SelectBranch(l.branches)
	if err != nil {
		return l.fail(err)
	}
	if selection.Quit {
		return Quitting
	}

	l.selected = selection.Branch
	fmt.Fprintf(l.out, "\nAttempting to delete branch %s...\n", ui.Branch(l.selected))

	unmerged, err := l.service.IsUnmerged(l.selected)
	if err != nil {
		l.report("Could not check whether the branch is merged.", err)
		return Presenting
	}
	if unmerged {
		return ConfirmingForce
	}
	l.mode = Safe
	return Deleting
}

func (l *Loop) confirmForce() State {
	fmt.Fprintln(l.out, ui.Warning(fmt.Sprintf("Branch %s has commits that are not merged.", ui.Branch(l.selected))))
	confirmed, err := l.prompter.Confirm("Deleting it will lose them. Delete it anyway?")
	if err != nil {
		return l.fail(err)
	}
	if !confirmed {
		fmt.Fprintln(l.out, ui.Notice(fmt.Sprintf("\nKept branch %s. Your work is safe.", ui.Branch(l.selected))))
		return Presenting
	}
	l.mode = Forced
	return Deleting
}

func (l *Loop) delete() State {
	if err := l.service.Delete(l.selected, l.mode); err != nil {
		l.report("Error while deleting the branch. Check the error below and try again.", err)
		return Presenting
	}
	fmt.Fprintln(l.out, ui.Success(fmt.Sprintf("Deleted branch %s", ui.Branch(l.selected))))
	return Listing
}

func (l *Loop) fail(err error) State {
	l.err = err
	fmt.Fprintln(l.out, ui.ErrorDetail("\n"+err.Error()))
	return Failed
}

func (l *Loop) report(headline string, err error) {
	fmt.Fprintln(l.out, ui.Error(headline))
	fmt.Fprintln(l.out, ui.ErrorDetail(err.Error()))

	var execErr *git.ExecutionError
	if errors.As(err, &execErr) {
		l.logger.Debug("git command failed", zap.String("command", execErr.Command()))
	}
}

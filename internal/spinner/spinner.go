package spinner

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Enabled controls whether spinners are animated. When disabled (verbose mode,
// or output is not a terminal) the message is printed as a plain line instead.
var Enabled = true

// Output is where spinners and notices are written
var Output io.Writer = os.Stdout

// Spinner represents a loading spinner
type Spinner struct {
	message      string
	frames       []string
	interval     time.Duration
	writer       io.Writer
	stopChan     chan struct{}
	done         chan struct{}
	stopped      bool
	mu           sync.Mutex
	hideWhenDone bool
}

var defaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// New creates a new spinner with the given message
func New(message string) *Spinner {
	return &Spinner{
		message:  message,
		frames:   defaultFrames,
		interval: 80 * time.Millisecond,
		writer:   Output,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// HideWhenDone sets whether to hide the spinner line when done
func (s *Spinner) HideWhenDone() *Spinner {
	s.hideWhenDone = true
	return s
}

// Start starts the spinner
func (s *Spinner) Start() *Spinner {
	if Enabled {
		go s.run()
	} else {
		close(s.done)
	}
	return s
}

// Stop stops the spinner and optionally shows a final message
func (s *Spinner) Stop(finalMessage string) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopChan)
	s.mu.Unlock()

	// the animation goroutine must be gone before the line is cleared,
	// otherwise a late frame can land after the prompt that follows
	<-s.done

	if Enabled {
		fmt.Fprint(s.writer, "\r\033[K")
	}

	if !s.hideWhenDone && finalMessage != "" {
		fmt.Fprintln(s.writer, finalMessage)
	}
}

func (s *Spinner) run() {
	defer close(s.done)

	frameIdx := 0
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			frame := s.frames[frameIdx%len(s.frames)]
			fmt.Fprintf(s.writer, "\r%s %s", frame, s.message)
			s.mu.Unlock()
			frameIdx++
		}
	}
}

// Wrap runs a function with a spinner
func Wrap(message string, fn func() error) error {
	if !Enabled {
		fmt.Fprintln(Output, message)
		return fn()
	}
	sp := New(message).HideWhenDone().Start()
	err := fn()
	sp.Stop("")
	return err
}

package ui

import (
	"fmt"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a simple terminal spinner for long-running remote calls.
type Spinner struct {
	message string
	mu      sync.Mutex
	active  bool
	done    chan struct{}
}

// NewSpinner creates a spinner with a message.
func NewSpinner(message string) *Spinner {
	return &Spinner{message: message, done: make(chan struct{})}
}

// Start begins rendering the spinner.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.active || !supportsColor {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		frame := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				fmt.Printf("\r%s %s", ColorInfo(spinnerFrames[frame%len(spinnerFrames)]), s.message)
				frame++
			}
		}
	}()
}

// Stop ends the spinner, replacing it with a final status line.
func (s *Spinner) Stop(success bool, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		close(s.done)
		s.active = false
		fmt.Print("\r\033[K")
	}
	if message == "" {
		return
	}
	if success {
		fmt.Printf("%s %s\n", ColorSuccess("✓"), message)
	} else {
		fmt.Printf("%s %s\n", ColorError("✗"), message)
	}
}

package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

//nolint:gochecknoglobals // Spinner animation frames
var spinnerFrames = []string{"|", "/", "-", "\\"}

// spinner provides a simple text-based progress indicator.
type spinner struct {
	out     io.Writer
	message string
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// startSpinner draws message followed by a rotating frame until Stop is called.
func startSpinner(out io.Writer, message string) (s *spinner) {
	s = &spinner{
		out:     out,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	go s.run()

	return s
}

func (s *spinner) run() {
	defer close(s.done)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	_, _ = fmt.Fprintf(s.out, "%s ", s.message)
	for i := 0; ; i++ {
		select {
		case <-s.stop:
			// Blank the line so the next output starts clean.
			_, _ = fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.message)+2))
			return
		case <-ticker.C:
			_, _ = fmt.Fprintf(s.out, "\r%s %s", s.message, spinnerFrames[i%len(spinnerFrames)])
		}
	}
}

// Stop halts the animation and waits for the line to be cleared. It is safe to call
// more than once.
func (s *spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})
	<-s.done
}

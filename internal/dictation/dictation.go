// Package dictation models an external speech-capture source as a producer
// of transcript strings. The rest of the program only ever acts on text the
// user explicitly submits, never on a final flag alone.
package dictation

import (
	"bufio"
	"io"
	"sync"
)

// Source emits best-effort transcripts while active and marks utterance
// boundaries with a final flag.
type Source interface {
	Start() error
	Stop() error
	OnTranscript(fn func(text string))
	OnFinal(fn func(text string))
}

// ReaderSource adapts a line-oriented reader (a dictation bridge, a pipe)
// into a Source. Each line is emitted as an interim transcript and then
// flagged final.
type ReaderSource struct {
	r io.Reader

	mu           sync.Mutex
	onTranscript func(string)
	onFinal      func(string)
	done         chan struct{}
	eof          chan struct{}
	started      bool
}

// NewReaderSource wraps the given reader.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r, done: make(chan struct{}), eof: make(chan struct{})}
}

// Done is closed when the underlying reader is exhausted.
func (s *ReaderSource) Done() <-chan struct{} {
	return s.eof
}

// OnTranscript registers the interim transcript callback.
func (s *ReaderSource) OnTranscript(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTranscript = fn
}

// OnFinal registers the utterance-boundary callback.
func (s *ReaderSource) OnFinal(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFinal = fn
}

// Start begins scanning the reader in the background.
func (s *ReaderSource) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	go s.scan()
	return nil
}

// Stop ends scanning. Pending callbacks may still run once.
func (s *ReaderSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.started = false
		close(s.done)
	}
	return nil
}

func (s *ReaderSource) scan() {
	defer close(s.eof)

	scanner := bufio.NewScanner(s.r)
	for scanner.Scan() {
		select {
		case <-s.done:
			return
		default:
		}

		line := scanner.Text()

		s.mu.Lock()
		transcript, final := s.onTranscript, s.onFinal
		s.mu.Unlock()

		if transcript != nil {
			transcript(line)
		}
		if final != nil {
			final(line)
		}
	}
}

package script

import (
	"bufio"
	"context"
	"io"

	"github.com/rs/zerolog/log"
)

const feederBacklog = 64

// Feeder reads lines from a terminal on its own goroutine and queues them
// for the frame loop. It never touches an Interpreter itself.
type Feeder struct {
	r     io.Reader
	lines chan string
	done  chan struct{}
}

func NewFeeder(r io.Reader) *Feeder {
	return &Feeder{
		r:     r,
		lines: make(chan string, feederBacklog),
		done:  make(chan struct{}),
	}
}

// Start begins reading. The goroutine exits on EOF, on a read error or once
// ctx is cancelled and the next line arrives.
func (f *Feeder) Start(ctx context.Context) {
	go func() {
		defer close(f.done)
		log.Debug().Msg("stdin console started")
		defer log.Debug().Msg("stdin console stopped")

		scanner := bufio.NewScanner(f.r)
		for scanner.Scan() {
			select {
			case f.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.Warn().Err(err).Msg("stdin console read failed")
		}
	}()
}

// Drain returns every queued line without blocking.
func (f *Feeder) Drain() []string {
	var out []string
	for {
		select {
		case line := <-f.lines:
			out = append(out, line)
		default:
			return out
		}
	}
}

// Done is closed when the reading goroutine has exited.
func (f *Feeder) Done() <-chan struct{} {
	return f.done
}

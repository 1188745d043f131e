package derive

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/Klingon-tech/keyderive/internal/log"
	"github.com/Klingon-tech/keyderive/pkg/crypto"
)

// MaxLineLength is the longest input line accepted, in bytes. Longer lines
// are consumed and reported as record errors.
const MaxLineLength = 4096

// RecordError reports a failure on one input line.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Stats summarizes a batch run.
type Stats struct {
	Lines   int // records read
	Written int // output lines written
	Failed  int // records skipped
}

// Batch derives one output line per newline-delimited hex key.
type Batch struct {
	Deriver *Deriver
	Mode    Mode

	// Workers is the number of derivation goroutines. Output order always
	// follows input order.
	Workers int

	// Strict stops the run at the first bad record instead of skipping it.
	Strict bool
}

// NewBatch creates a single-worker, non-strict batch.
func NewBatch(d *Deriver, mode Mode) *Batch {
	return &Batch{Deriver: d, Mode: mode, Workers: 1}
}

type record struct {
	line int
	text string
	err  error
}

// lineReader splits input into records without buffering unbounded lines.
type lineReader struct {
	br   *bufio.Reader
	line int
}

func newLineReader(r io.Reader) *lineReader {
	// Room for the longest accepted line plus "\r\n".
	return &lineReader{br: bufio.NewReaderSize(r, MaxLineLength+2)}
}

// next returns the next record, or io.EOF after the last line.
func (lr *lineReader) next() (record, error) {
	text, isPrefix, err := lr.br.ReadLine()
	if err != nil {
		return record{}, err
	}
	lr.line++
	if !isPrefix && len(text) <= MaxLineLength {
		return record{line: lr.line, text: string(text)}, nil
	}
	for isPrefix {
		_, isPrefix, err = lr.br.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return record{}, err
		}
	}
	return record{
		line: lr.line,
		err:  fmt.Errorf("%w: line longer than %d bytes", crypto.ErrLength, MaxLineLength),
	}, nil
}

type outcome struct {
	line int
	text string
	err  error
}

// Run reads keys from r and writes the selected output for each valid key
// to w. Bad records are logged and skipped unless Strict is set, in which
// case the first one (in input order) is returned as a *RecordError.
func (b *Batch) Run(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	if b.Deriver == nil {
		return Stats{}, fmt.Errorf("batch has no deriver")
	}
	if _, err := ParseMode(string(b.Mode)); err != nil {
		return Stats{}, err
	}

	out := bufio.NewWriter(w)
	done := log.Benchmark("batch")
	defer done()

	var (
		stats Stats
		err   error
	)
	if b.Workers <= 1 {
		stats, err = b.runSingle(ctx, r, out)
	} else {
		stats, err = b.runParallel(ctx, r, out, b.Workers)
	}
	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("write output: %w", flushErr)
	}

	log.Batch.Info().
		Int("lines", stats.Lines).
		Int("written", stats.Written).
		Int("failed", stats.Failed).
		Str("mode", b.Mode.Description()).
		Msg("batch finished")
	return stats, err
}

// runSingle derives keys sequentially on the calling goroutine.
func (b *Batch) runSingle(ctx context.Context, r io.Reader, out *bufio.Writer) (Stats, error) {
	var stats Stats
	lr := newLineReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		rec, err := lr.next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return stats, fmt.Errorf("read input: %w", err)
		}
		if err := b.emit(out, b.process(rec), &stats); err != nil {
			return stats, err
		}
	}
}

// runParallel fans records out to a pool of workers and writes results
// back in input order through a reorder buffer.
func (b *Batch) runParallel(parent context.Context, r io.Reader, out *bufio.Writer, workers int) (Stats, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	jobs := make(chan record, workers)
	results := make(chan outcome, workers)

	var readErr error
	go func() {
		defer close(jobs)
		lr := newLineReader(r)
		for {
			rec, err := lr.next()
			if err != nil {
				if err != io.EOF {
					readErr = err
				}
				return
			}
			select {
			case jobs <- rec:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range jobs {
				o := b.process(rec)
				select {
				case results <- o:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Close results once every worker has exited.
	go func() {
		wg.Wait()
		close(results)
	}()

	var (
		stats    Stats
		firstErr error
	)
	pending := make(map[int]outcome)
	next := 1
	for o := range results {
		if firstErr != nil {
			continue
		}
		pending[o.line] = o
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := b.emit(out, p, &stats); err != nil {
				firstErr = err
				cancel()
				break
			}
		}
	}

	if firstErr != nil {
		return stats, firstErr
	}
	if err := parent.Err(); err != nil {
		return stats, err
	}
	if readErr != nil {
		return stats, fmt.Errorf("read input: %w", readErr)
	}
	return stats, nil
}

func (b *Batch) process(rec record) outcome {
	if rec.err != nil {
		return outcome{line: rec.line, err: &RecordError{Line: rec.line, Err: rec.err}}
	}
	res, err := b.Deriver.Derive(rec.text)
	if err != nil {
		return outcome{line: rec.line, err: &RecordError{Line: rec.line, Err: err}}
	}
	return outcome{line: rec.line, text: res.Field(b.Mode)}
}

// emit writes one outcome. It returns an error only when the run must stop.
func (b *Batch) emit(out *bufio.Writer, o outcome, stats *Stats) error {
	stats.Lines++
	if o.err != nil {
		stats.Failed++
		log.Batch.Warn().Int("line", o.line).Err(o.err).Msg("skipping record")
		if b.Strict {
			return o.err
		}
		return nil
	}
	if _, err := fmt.Fprintln(out, o.text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	stats.Written++
	return nil
}

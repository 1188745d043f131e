package derive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Klingon-tech/keyderive/pkg/crypto"
	"github.com/Klingon-tech/keyderive/pkg/types"
)

func keyHex(i int) string {
	return fmt.Sprintf("%064x", i)
}

func TestBatch_Run(t *testing.T) {
	input := strings.Join([]string{
		keyHex(1),
		"not hex",
		keyHex(2),
		strings.Repeat("00", 32),
		"0102",
		keyHex(3),
	}, "\n") + "\n"

	want := make([]string, 0, 3)
	d := New(types.Mainnet, false)
	for _, i := range []int{1, 2, 3} {
		res, err := d.Derive(keyHex(i))
		if err != nil {
			t.Fatalf("Derive(%d) error: %v", i, err)
		}
		want = append(want, res.CompressedAddress)
	}

	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			b := NewBatch(d, ModeCompressedAddress)
			b.Workers = workers

			var out bytes.Buffer
			stats, err := b.Run(context.Background(), strings.NewReader(input), &out)
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if stats.Lines != 6 || stats.Written != 3 || stats.Failed != 3 {
				t.Errorf("stats = %+v, want 6 lines, 3 written, 3 failed", stats)
			}
			got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			if strings.Join(got, ",") != strings.Join(want, ",") {
				t.Errorf("output = %v, want %v", got, want)
			}
		})
	}
}

func TestBatch_CRLFAndNoTrailingNewline(t *testing.T) {
	input := keyHex(1) + "\r\n" + keyHex(1)
	b := NewBatch(New(types.Mainnet, false), ModeUncompressedWIF)

	var out bytes.Buffer
	stats, err := b.Run(context.Background(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if stats.Written != 2 {
		t.Fatalf("Written = %d, want 2", stats.Written)
	}
	want := "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf\n5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestBatch_OverlongLine(t *testing.T) {
	long := strings.Repeat("a", 70000)
	input := keyHex(1) + "\n" + long + "\r\n" + keyHex(2) + "\n"

	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			b := NewBatch(New(types.Mainnet, false), ModeCompressedAddress)
			b.Workers = workers

			var out bytes.Buffer
			stats, err := b.Run(context.Background(), strings.NewReader(input), &out)
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if stats.Lines != 3 || stats.Written != 2 || stats.Failed != 1 {
				t.Errorf("stats = %+v, want 3 lines, 2 written, 1 failed", stats)
			}
			if lines := strings.Count(out.String(), "\n"); lines != 2 {
				t.Errorf("output has %d lines, want 2", lines)
			}

			b.Strict = true
			_, err = b.Run(context.Background(), strings.NewReader(input), &bytes.Buffer{})
			var recErr *RecordError
			if !errors.As(err, &recErr) || recErr.Line != 2 {
				t.Fatalf("strict Run() error = %v, want *RecordError on line 2", err)
			}
			if !errors.Is(err, crypto.ErrLength) {
				t.Errorf("strict Run() error = %v, want ErrLength", err)
			}
		})
	}
}

func TestBatch_LongestAcceptedLine(t *testing.T) {
	// Padding to the limit still reaches the key decoder.
	line := strings.Repeat("0", MaxLineLength)
	b := NewBatch(New(types.Mainnet, false), ModeCompressedAddress)
	b.Strict = true
	_, err := b.Run(context.Background(), strings.NewReader(line+"\r\n"), &bytes.Buffer{})
	if !errors.Is(err, crypto.ErrLength) {
		t.Fatalf("Run() error = %v, want ErrLength", err)
	}
	if strings.Contains(err.Error(), "longer than") {
		t.Errorf("Run() error = %v, want a key length error", err)
	}
}

func TestBatch_ParallelPreservesOrder(t *testing.T) {
	const n = 300
	var in strings.Builder
	for i := 1; i <= n; i++ {
		in.WriteString(keyHex(i))
		in.WriteByte('\n')
	}

	run := func(workers int) string {
		b := NewBatch(New(types.Mainnet, true), ModeCompressedWIF)
		b.Workers = workers
		var out bytes.Buffer
		stats, err := b.Run(context.Background(), strings.NewReader(in.String()), &out)
		if err != nil {
			t.Fatalf("Run(workers=%d) error: %v", workers, err)
		}
		if stats.Written != n {
			t.Fatalf("Run(workers=%d) wrote %d, want %d", workers, stats.Written, n)
		}
		return out.String()
	}

	sequential := run(1)
	if parallel := run(8); parallel != sequential {
		t.Error("parallel output differs from sequential output")
	}
}

func TestBatch_Strict(t *testing.T) {
	input := keyHex(1) + "\n" + strings.Repeat("00", 32) + "\n" + "zz\n" + keyHex(2) + "\n"

	for _, workers := range []int{1, 3} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			b := NewBatch(New(types.Mainnet, false), ModeCompressedAddress)
			b.Workers = workers
			b.Strict = true

			var out bytes.Buffer
			stats, err := b.Run(context.Background(), strings.NewReader(input), &out)

			var recErr *RecordError
			if !errors.As(err, &recErr) {
				t.Fatalf("Run() error = %v, want *RecordError", err)
			}
			if recErr.Line != 2 {
				t.Errorf("RecordError.Line = %d, want 2", recErr.Line)
			}
			if !errors.Is(err, crypto.ErrInvalidKey) {
				t.Errorf("Run() error = %v, want ErrInvalidKey", err)
			}
			if stats.Written != 1 {
				t.Errorf("Written = %d, want 1", stats.Written)
			}
			if out.String() != "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH\n" {
				t.Errorf("output = %q", out.String())
			}
		})
	}
}

func TestBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 2} {
		b := NewBatch(New(types.Mainnet, false), ModeCompressedAddress)
		b.Workers = workers
		_, err := b.Run(ctx, strings.NewReader(keyHex(1)+"\n"+keyHex(2)+"\n"), &bytes.Buffer{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run(workers=%d) error = %v, want context.Canceled", workers, err)
		}
	}
}

func TestBatch_InvalidSetup(t *testing.T) {
	if _, err := (&Batch{Mode: ModeCompressedAddress}).Run(context.Background(), strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Error("Run() without deriver should fail")
	}
	b := NewBatch(New(nil, false), Mode("xx"))
	if _, err := b.Run(context.Background(), strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Error("Run() with unknown mode should fail")
	}
}

func TestBatch_EmptyInput(t *testing.T) {
	b := NewBatch(New(nil, false), ModeCompressedAddress)
	var out bytes.Buffer
	stats, err := b.Run(context.Background(), strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if stats != (Stats{}) || out.Len() != 0 {
		t.Errorf("stats = %+v, output = %q; want nothing", stats, out.String())
	}
}

func TestRecordError(t *testing.T) {
	err := &RecordError{Line: 7, Err: crypto.ErrLength}
	if !strings.Contains(err.Error(), "line 7") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, crypto.ErrLength) {
		t.Error("RecordError should unwrap to its cause")
	}
}

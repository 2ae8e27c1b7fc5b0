// Package journal records the controller's per-tick decisions as
// zstd-compressed JSON lines, one entry per tick.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/nstehr/harvest/model"
)

// Entry is one tick's decision record.
type Entry struct {
	Session      string         `json:"session"`
	Tick         int            `json:"tick"`
	Phase        string         `json:"phase"`
	PhaseReached string         `json:"phaseReached"`
	Transition   bool           `json:"transition,omitempty"` // first tick at PhaseReached
	Gold         int            `json:"gold"`
	Wood         int            `json:"wood"`
	Fired        []string       `json:"fired,omitempty"`
	Skipped      []string       `json:"skipped,omitempty"`
	Omitted      []int          `json:"omitted,omitempty"`
	Actions      []model.Action `json:"actions"`
}

type Writer struct {
	session string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Create opens path for appending a new session. Each session is its own
// zstd frame, so a file holding several sessions still decodes as one stream.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Writer{
		session: uuid.NewString(),
		f:       f,
		enc:     enc,
		w:       bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

func (w *Writer) Session() string { return w.session }

// Write appends e, stamping it with the writer's session id.
func (w *Writer) Write(e Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return fmt.Errorf("journal closed")
	}
	e.Session = w.session
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes and closes the journal. Entries are only durable after Close.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return nil
	}
	var firstErr error
	if err := w.w.Flush(); err != nil {
		firstErr = err
	}
	if err := w.enc.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := w.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	w.w, w.enc, w.f = nil, nil, nil
	return firstErr
}

// ReadAll decodes every entry in the journal at path.
func ReadAll(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Entry
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return out, fmt.Errorf("journal %s entry %d: %w", path, len(out)+1, err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return out, err
	}
	return out, nil
}

package ipc

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// headerSize is the 4-byte little-endian payload length that precedes
// every envelope in both directions.
const headerSize = 4

// maxFrame caps one envelope. The largest frames are world snapshots, which
// grow with unit and resource node counts.
const maxFrame = 4 << 20

// ErrFrameSize is returned for a length prefix of zero or above maxFrame.
var ErrFrameSize = errors.New("frame size out of range")

// Envelope carries one message. The host sends snapshots (initial_state,
// state, terminal_state) and receives the actions or summary answering
// each; Data stays raw until the handler for Type decodes it.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func NewEnvelope(msgType string, data any) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s: %w", msgType, err)
	}
	return Envelope{Type: msgType, Data: raw}, nil
}

// ReadEnvelope reads one framed envelope from r.
func ReadEnvelope(r io.Reader) (Envelope, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Envelope{}, fmt.Errorf("read frame header: %w", err)
	}
	size := binary.LittleEndian.Uint32(header[:])
	if size == 0 || size > maxFrame {
		return Envelope{}, fmt.Errorf("%w: %d bytes", ErrFrameSize, size)
	}

	frame := make([]byte, size)
	if _, err := io.ReadFull(r, frame); err != nil {
		return Envelope{}, fmt.Errorf("read %d-byte frame: %w", size, err)
	}

	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode frame: %w", err)
	}
	return env, nil
}

// WriteEnvelope frames env and writes header and body in a single call, so
// a reply is never split between a length and a late payload.
func WriteEnvelope(w io.Writer, env Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode %s frame: %w", env.Type, err)
	}
	if len(body) > maxFrame {
		return fmt.Errorf("%w: %s reply of %d bytes", ErrFrameSize, env.Type, len(body))
	}

	frame := make([]byte, headerSize, headerSize+len(body))
	binary.LittleEndian.PutUint32(frame, uint32(len(body)))
	frame = append(frame, body...)
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("write %s frame: %w", env.Type, err)
	}
	return nil
}

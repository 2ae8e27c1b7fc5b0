package ipc

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"testing"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	env, err := NewEnvelope(TypeAck, AckMessage{Status: "ok"})
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}
	if err := WriteEnvelope(&buf, env); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}

	length := binary.LittleEndian.Uint32(buf.Bytes()[:4])
	if int(length) != buf.Len()-4 {
		t.Errorf("length prefix = %d, payload = %d", length, buf.Len()-4)
	}

	got, err := ReadEnvelope(&buf)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}
	if got.Type != TypeAck {
		t.Errorf("type = %q, want %q", got.Type, TypeAck)
	}
	var ack AckMessage
	if err := json.Unmarshal(got.Data, &ack); err != nil || ack.Status != "ok" {
		t.Errorf("ack = %+v, err = %v", ack, err)
	}
}

func TestReadEnvelopeRejectsBadFrames(t *testing.T) {
	tests := []struct {
		name    string
		frame   []byte
		sizeErr bool
	}{
		{"zero length", []byte{0, 0, 0, 0}, true},
		{"oversized", binary.LittleEndian.AppendUint32(nil, maxFrame+1), true},
		{"truncated payload", append(binary.LittleEndian.AppendUint32(nil, 10), '{'), false},
		{"not json", append(binary.LittleEndian.AppendUint32(nil, 3), 'a', 'b', 'c'), false},
		{"short prefix", []byte{1, 0}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadEnvelope(bytes.NewReader(tc.frame))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrFrameSize); got != tc.sizeErr {
				t.Errorf("errors.Is(err, ErrFrameSize) = %v, want %v (err: %v)", got, tc.sizeErr, err)
			}
		})
	}
}

type countingWriter struct {
	writes int
	bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestWriteEnvelopeSingleWrite(t *testing.T) {
	env, err := NewEnvelope(TypeActions, ActionsMessage{Tick: 3, Commands: []ActionCommand{{Type: CommandGather, ActorID: 2, TargetID: 30}}})
	if err != nil {
		t.Fatal(err)
	}
	var w countingWriter
	if err := WriteEnvelope(&w, env); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	if w.writes != 1 {
		t.Errorf("frame written in %d calls, want 1", w.writes)
	}
}

package logic

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"io"
	"testing"

	"github.com/ulikunitz/xz/lzma"
)

// buildContainer assembles a minimal valid replay container around the
// given (already compressed) event payload.
func buildContainer(t *testing.T, compressed []byte, withScoreID bool) []byte {
	t.Helper()
	var buf bytes.Buffer

	writeByte := func(b byte) { buf.WriteByte(b) }
	writeInt32 := func(n int32) { binary.Write(&buf, binary.LittleEndian, n) }
	writeUint16 := func(n uint16) { binary.Write(&buf, binary.LittleEndian, n) }
	writeInt64 := func(n int64) { binary.Write(&buf, binary.LittleEndian, n) }
	writeString := func(s string) {
		if s == "" {
			buf.WriteByte(0x00)
			return
		}
		buf.WriteByte(0x0b)
		// Single-byte ULEB128 is enough for test strings.
		buf.WriteByte(byte(len(s)))
		buf.WriteString(s)
	}

	writeByte(0)          // mode
	writeInt32(20230615)  // version
	writeString("0f343b0931126a20f133d67c2b018a3b") // beatmap md5
	writeString("Demo Player")
	writeString("c4ca4238a0b923820dcc509a6f75849b") // replay md5
	writeUint16(300)      // n300
	writeUint16(10)       // n100
	writeUint16(2)        // n50
	writeUint16(50)       // ngeki
	writeUint16(5)        // nkatu
	writeUint16(0)        // nmiss
	writeInt32(123456)    // total score
	writeUint16(500)      // max combo
	writeByte(0)          // perfect
	writeInt32(64)        // mods
	writeString("")       // life bar graph
	writeInt64(637900000000000000) // timestamp
	writeInt32(int32(len(compressed)))
	buf.Write(compressed)
	if withScoreID {
		writeInt64(9001)
	}

	return buf.Bytes()
}

func TestTranscodeReplayRoundTrip(t *testing.T) {
	events := []byte("0|256.5|192.25|0,1|257|193|5,16|300|200|0")
	compressed, err := CompressEvents(events)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}

	raw := buildContainer(t, compressed, true)

	encoded, err := TranscodeReplay(raw)
	if err != nil {
		t.Fatalf("transcode: %v", err)
	}

	// Decode the transport form back to the original event stream.
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	lr, err := lzma.NewReader(bytes.NewReader(decoded))
	if err != nil {
		t.Fatalf("lzma reader: %v", err)
	}
	roundTripped, err := io.ReadAll(lr)
	if err != nil {
		t.Fatalf("lzma read: %v", err)
	}

	if !bytes.Equal(roundTripped, events) {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", roundTripped, events)
	}
}

func TestParseReplayContainerFields(t *testing.T) {
	compressed, err := CompressEvents([]byte("events"))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	raw := buildContainer(t, compressed, true)

	c, err := ParseReplayContainer(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if c.PlayerName != "Demo Player" {
		t.Errorf("player name = %q", c.PlayerName)
	}
	if c.TotalScore != 123456 || c.MaxCombo != 500 || c.Mods != 64 {
		t.Errorf("header fields wrong: %+v", c)
	}
	if c.ScoreID != 9001 {
		t.Errorf("score id = %d", c.ScoreID)
	}

	events, err := c.ExtractEvents()
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if string(events) != "events" {
		t.Errorf("events = %q", events)
	}
}

func TestParseReplayContainerWithoutScoreID(t *testing.T) {
	compressed, err := CompressEvents([]byte("x"))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	raw := buildContainer(t, compressed, false)

	c, err := ParseReplayContainer(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.ScoreID != 0 {
		t.Errorf("score id = %d, want 0 for legacy container", c.ScoreID)
	}
}

func TestTranscodeReplayMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty input", nil},
		{"truncated header", []byte{0x00, 0x01}},
		{"bad string marker", append([]byte{0x00, 0x01, 0x00, 0x00, 0x00}, 0xff)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TranscodeReplay(tt.raw); err == nil {
				t.Error("expected hard failure for malformed container")
			}
		})
	}
}

func TestTranscodeReplayTruncatedPayload(t *testing.T) {
	compressed, err := CompressEvents([]byte("payload"))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	raw := buildContainer(t, compressed, false)

	// Chop into the compressed payload; the declared length now exceeds
	// the remaining bytes.
	if _, err := TranscodeReplay(raw[:len(raw)-3]); err == nil {
		t.Error("expected failure for truncated payload")
	}
}

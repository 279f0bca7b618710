package logic

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// ReplayContainer is the parsed fixed-header replay artifact. The embedded
// event stream stays LZMA-compressed until ExtractEvents is called.
type ReplayContainer struct {
	Mode          byte
	Version       int32
	BeatmapMD5    string
	PlayerName    string
	ReplayMD5     string
	Count300      uint16
	Count100      uint16
	Count50       uint16
	CountGeki     uint16
	CountKatu     uint16
	CountMiss     uint16
	TotalScore    int32
	MaxCombo      uint16
	Perfect       byte
	Mods          int32
	LifeGraph     string
	Timestamp     int64
	CompressedRaw []byte
	ScoreID       int64
}

// TranscodeReplay deserializes a raw replay container, extracts the
// embedded input-event stream, recompresses it and returns it as base64
// text — the legacy replay wire format. A malformed or truncated container
// is a hard failure; no partial replay is ever returned.
//
// The function holds no state and is safe for concurrent use.
func TranscodeReplay(raw []byte) (string, error) {
	container, err := ParseReplayContainer(raw)
	if err != nil {
		return "", fmt.Errorf("parse replay container: %w", err)
	}

	events, err := container.ExtractEvents()
	if err != nil {
		return "", fmt.Errorf("extract event stream: %w", err)
	}

	compressed, err := CompressEvents(events)
	if err != nil {
		return "", fmt.Errorf("recompress event stream: %w", err)
	}

	return base64.StdEncoding.EncodeToString(compressed), nil
}

// ParseReplayContainer decodes the binary replay header and the
// length-prefixed compressed event payload.
func ParseReplayContainer(raw []byte) (*ReplayContainer, error) {
	r := &replayReader{buf: raw}
	c := &ReplayContainer{}

	c.Mode = r.readByte()
	c.Version = r.readInt32()
	c.BeatmapMD5 = r.readString()
	c.PlayerName = r.readString()
	c.ReplayMD5 = r.readString()
	c.Count300 = r.readUint16()
	c.Count100 = r.readUint16()
	c.Count50 = r.readUint16()
	c.CountGeki = r.readUint16()
	c.CountKatu = r.readUint16()
	c.CountMiss = r.readUint16()
	c.TotalScore = r.readInt32()
	c.MaxCombo = r.readUint16()
	c.Perfect = r.readByte()
	c.Mods = r.readInt32()
	c.LifeGraph = r.readString()
	c.Timestamp = r.readInt64()

	length := r.readInt32()
	if r.err == nil && (length < 0 || int(length) > len(r.buf)-r.off) {
		r.err = fmt.Errorf("event payload length %d out of range", length)
	}
	c.CompressedRaw = r.readBytes(int(length))

	// Trailing score id is absent in very old containers.
	if r.err == nil && r.off+8 <= len(r.buf) {
		c.ScoreID = r.readInt64()
	}

	if r.err != nil {
		return nil, r.err
	}
	return c, nil
}

// ExtractEvents decompresses the embedded event stream.
func (c *ReplayContainer) ExtractEvents() ([]byte, error) {
	lr, err := lzma.NewReader(bytes.NewReader(c.CompressedRaw))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(lr)
}

// CompressEvents recompresses an event stream for transport.
func CompressEvents(events []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(events); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// replayReader walks the container buffer, latching the first error so the
// field reads above can stay linear.
type replayReader struct {
	buf []byte
	off int
	err error
}

func (r *replayReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.off+n > len(r.buf) {
		r.err = io.ErrUnexpectedEOF
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *replayReader) readByte() byte {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *replayReader) readUint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *replayReader) readInt32() int32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

func (r *replayReader) readInt64() int64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(b))
}

func (r *replayReader) readBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	b := r.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// readString decodes the container string encoding: 0x00 for empty, or
// 0x0b followed by a ULEB128 byte length and UTF-8 bytes.
func (r *replayReader) readString() string {
	marker := r.readByte()
	if r.err != nil {
		return ""
	}
	switch marker {
	case 0x00:
		return ""
	case 0x0b:
		n := r.readULEB128()
		b := r.take(int(n))
		if b == nil {
			return ""
		}
		return string(b)
	default:
		r.err = fmt.Errorf("invalid string marker 0x%02x", marker)
		return ""
	}
}

func (r *replayReader) readULEB128() uint64 {
	var result uint64
	var shift uint
	for {
		b := r.readByte()
		if r.err != nil {
			return 0
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result
		}
		shift += 7
		if shift > 63 {
			r.err = fmt.Errorf("uleb128 overflow")
			return 0
		}
	}
}

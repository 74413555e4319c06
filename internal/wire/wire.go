package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"time"
)

const (
	version   byte = 1
	kindEntry byte = 1
	headerLen      = 4 + 1 + 1 + 8 + 4
)

var (
	// errBadEnvelope stays inside this package; the store reports it to
	// callers as primstore.ErrCorrupt.
	errBadEnvelope = errors.New("wire: bad envelope")
	magic4         = [...]byte{'P', 'R', 'I', 'M'}

	// Deadlines are stored as int64 unix nanos, which cover 1677..2262.
	maxDeadline = time.Unix(0, math.MaxInt64)
	minDeadline = time.Unix(0, math.MinInt64)
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | kind(1=entry) | deadline(i64 be, unix nanos, 0=never) | vlen(u32 be) | payload(vlen)
func EncodeEntry(deadline time.Time, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(headerLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindEntry)

	var u8 [8]byte
	var u4 [4]byte

	binary.BigEndian.PutUint64(u8[:], uint64(deadlineNanos(deadline)))
	buf.Write(u8[:])

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// deadlineNanos saturates deadlines outside the int64 nanosecond range
// instead of letting UnixNano wrap. 0 is reserved for "never".
func deadlineNanos(deadline time.Time) int64 {
	switch {
	case deadline.IsZero():
		return 0
	case deadline.After(maxDeadline):
		return math.MaxInt64
	case deadline.Before(minDeadline):
		return math.MinInt64
	}
	if dl := deadline.UnixNano(); dl != 0 {
		return dl
	}
	return 1 // the epoch itself; still long past
}

// DecodeEntry returns the deadline (zero => never) and a payload slice that
// aliases b.
func DecodeEntry(b []byte) (deadline time.Time, payload []byte, err error) {
	if len(b) < headerLen || !hasMagic(b) || b[4] != version || b[5] != kindEntry {
		return time.Time{}, nil, errBadEnvelope
	}

	off := 6

	dl := int64(binary.BigEndian.Uint64(b[off : off+8]))
	off += 8

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // exact: no truncation, no trailing bytes
		return time.Time{}, nil, errBadEnvelope
	}

	if dl != 0 {
		deadline = time.Unix(0, dl)
	}
	return deadline, b[off : off+vlen], nil
}

// Deadline decodes only the header; used by sweeps that don't need the payload.
func Deadline(b []byte) (time.Time, error) {
	dl, _, err := DecodeEntry(b)
	return dl, err
}

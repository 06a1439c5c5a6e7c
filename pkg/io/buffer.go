package io

import (
	"encoding/binary"
)

// Buffer is a fixed-width, big-endian byte stream. Reads consume from the
// front of the buffer.
type Buffer []byte

func (b *Buffer) PutByte(v byte) {
	*b = append(*b, v)
}

func (b *Buffer) PutInt16(v int16) {
	*b = binary.BigEndian.AppendUint16(*b, uint16(v))
}

func (b *Buffer) PutUint16(v uint16) {
	*b = binary.BigEndian.AppendUint16(*b, v)
}

func (b *Buffer) PutInt32(v int32) {
	*b = binary.BigEndian.AppendUint32(*b, uint32(v))
}

func (b *Buffer) PutUint32(v uint32) {
	*b = binary.BigEndian.AppendUint32(*b, v)
}

func (b *Buffer) PutInt64(v int64) {
	*b = binary.BigEndian.AppendUint64(*b, uint64(v))
}

func (b *Buffer) PutUint64(v uint64) {
	*b = binary.BigEndian.AppendUint64(*b, v)
}

func (b *Buffer) take(n int) ([]byte, bool) {
	if len(*b) < n {
		return nil, false
	}
	v := (*b)[:n]
	*b = (*b)[n:]
	return v, true
}

func (b *Buffer) GetByte() (byte, bool) {
	v, ok := b.take(1)
	if !ok {
		return 0, false
	}
	return v[0], true
}

func (b *Buffer) GetUint16() (uint16, bool) {
	v, ok := b.take(2)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint16(v), true
}

func (b *Buffer) GetInt16() (int16, bool) {
	v, ok := b.GetUint16()
	return int16(v), ok
}

func (b *Buffer) GetUint32() (uint32, bool) {
	v, ok := b.take(4)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint32(v), true
}

func (b *Buffer) GetInt32() (int32, bool) {
	v, ok := b.GetUint32()
	return int32(v), ok
}

func (b *Buffer) GetUint64() (uint64, bool) {
	v, ok := b.take(8)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint64(v), true
}

func (b *Buffer) GetInt64() (int64, bool) {
	v, ok := b.GetUint64()
	return int64(v), ok
}

// Put marshals each value onto the end of the buffer.
func (b *Buffer) Put(pieces ...interface{}) error {
	return Marshal(b, pieces...)
}

// Get unmarshals into each pointer in order.
func (b *Buffer) Get(pieces ...interface{}) error {
	return Unmarshal(b, pieces...)
}

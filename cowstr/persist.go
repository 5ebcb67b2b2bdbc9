package cowstr

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = (*String[byte])(nil)
	_ msgpack.CustomDecoder = (*String[byte])(nil)
)

// BinaryStoreSize returns the number of bytes [String.SaveOn]
// writes for s.
func (s *String[E]) BinaryStoreSize() int {
	n := s.Len() * elemSize[E]()
	switch {
	case n <= 0xff:
		return 2 + n
	case n <= 0xffff:
		return 3 + n
	}
	return 5 + n
}

// SaveOn writes s to w as a msgpack bin value holding the
// little-endian encoding of its elements.
func (s *String[E]) SaveOn(w io.Writer) error {
	return errors.Wrap(s.EncodeMsgpack(msgpack.NewEncoder(w)), "cowstr: save")
}

// RestoreFrom replaces the content of s with a value written by
// [String.SaveOn]. If r is not an io.ByteScanner it is buffered, so
// it may be read past the end of the value.
func (s *String[E]) RestoreFrom(r io.Reader) error {
	return errors.Wrap(s.DecodeMsgpack(msgpack.NewDecoder(r)), "cowstr: restore")
}

// EncodeMsgpack implements [msgpack.CustomEncoder].
func (s *String[E]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(appendLE(make([]byte, 0, s.Len()*elemSize[E]()), s.Data()))
}

// DecodeMsgpack implements [msgpack.CustomDecoder].
func (s *String[E]) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return errors.WithStack(err)
	}
	if size := elemSize[E](); len(b)%size != 0 {
		return errors.Errorf("%d bytes is not a whole number of %d-byte elements", len(b), size)
	}
	s.replace("RestoreFrom", 0, s.Len(), fromLE[E](b))
	return nil
}

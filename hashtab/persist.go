package hashtab

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// EncodeMsgpack implements [msgpack.CustomEncoder]. A table is
// encoded as a two-element array: the bucket count, then the
// array of values in iteration order.
func (t *Table[V, K, H, D, KP]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(t.Capacity())); err != nil {
		return err
	}
	if err := enc.EncodeArrayLen(t.Len()); err != nil {
		return err
	}
	for v := range t.All() {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// maxBucketsPerValue bounds the bucket count accepted by
// DecodeMsgpack relative to the number of values decoded.
const maxBucketsPerValue = 64

// DecodeMsgpack implements [msgpack.CustomDecoder]. It replaces the
// contents of t, which must have been created by [New], and inserts
// each decoded value with [Table.Insert], so t's own policies decide
// what is kept.
//
// All values are decoded before t is touched, so on error t is
// unchanged.
func (t *Table[V, K, H, D, KP]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return errors.Errorf("hashtab: got %d-element array, want 2", n)
	}
	buckets, err := dec.DecodeInt()
	if err != nil {
		return err
	}
	count, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if buckets <= 0 || buckets > max(count, DefaultBuckets)*maxBucketsPerValue {
		return errors.Errorf("hashtab: implausible bucket count %d for %d values", buckets, count)
	}
	vals := make([]V, 0, min(max(count, 0), DefaultBuckets))
	for i := 0; i < count; i++ {
		var v V
		if err := dec.Decode(&v); err != nil {
			return errors.Wrapf(err, "value %d", i)
		}
		vals = append(vals, v)
	}
	t.Clear()
	t.Resize(buckets)
	for _, v := range vals {
		t.Insert(v)
	}
	return nil
}

// SaveOn writes t to w in msgpack form.
func (t *Table[V, K, H, D, KP]) SaveOn(w io.Writer) error {
	return errors.Wrap(t.EncodeMsgpack(msgpack.NewEncoder(w)), "hashtab: save")
}

// RestoreFrom replaces the contents of t with a table
// written by [Table.SaveOn].
func (t *Table[V, K, H, D, KP]) RestoreFrom(r io.Reader) error {
	return errors.Wrap(t.DecodeMsgpack(msgpack.NewDecoder(r)), "hashtab: restore")
}

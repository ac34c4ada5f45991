// Package codec provides the value serializers used by rediskv.
//
// The facade stores every value as its encoded byte form; a Codec is
// responsible for the round trip. For any value v a codec can encode,
// Decode(Encode(v)) must yield a structurally equal value. Encode fails
// only when the value itself is not serializable (e.g. contains a cycle).
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

package suffix

import (
	"bytes"

	"github.com/zeebo/errs"

	"github.com/qantal/qnum/qigit"
)

// MaxPayload is the longest payload one suffix block can carry.
const MaxPayload = 250

// Assigned type codes.
const (
	TypeListing   byte = 0x1D // 'ID' in 1337
	TypeImaginary byte = 0x69 // 'i' in ASCII
	TypeTest      byte = 0x7E // arbitrary payload, for tests
)

// Error classes for the distinct suffix failure kinds.
var (
	ErrPayload    = errs.Class("suffix payload")
	ErrMalformed  = errs.Class("malformed suffix")
	ErrNoSuchType = errs.Class("no such suffix type")
	ErrNaNRoot    = errs.Class("suffixed nan")
)

// Suffix is one typed payload block. The zero value is the empty suffix
// (Typed false), which carries no type code and no payload.
type Suffix struct {
	Type    byte
	Typed   bool
	Payload []byte
}

// New returns a typed suffix, copying the payload.
func New(typ byte, payload []byte) (Suffix, error) {
	if len(payload) > MaxPayload {
		return Suffix{}, ErrPayload.New("payload is %d bytes too long", len(payload)-MaxPayload)
	}

	return Suffix{
		Type:    typ,
		Typed:   true,
		Payload: append([]byte(nil), payload...),
	}, nil
}

// Empty returns the empty suffix.
func Empty() Suffix {
	return Suffix{}
}

// Raw returns the encoded block: payload, type, length, NUL. The empty
// suffix encodes as two NUL bytes.
func (s Suffix) Raw() []byte {
	if !s.Typed {
		return []byte{0x00, 0x00}
	}

	raw := make([]byte, 0, len(s.Payload)+3)
	raw = append(raw, s.Payload...)
	raw = append(raw, s.Type, byte(len(s.Payload)+1), 0x00)

	return raw
}

// Qstring renders the block as uppercase hex, with an underscore between
// the payload and the trailing type-length-NUL when there is a payload.
func (s Suffix) Qstring() string {
	h := qigit.HexEncode(s.Raw())
	if s.Typed && len(s.Payload) > 0 {
		return h[:len(h)-6] + "_" + h[len(h)-6:]
	}

	return h
}

// Equal reports whether two suffixes have the same type and payload.
func (s Suffix) Equal(o Suffix) bool {
	if s.Typed != o.Typed {
		return false
	}
	if s.Typed && s.Type != o.Type {
		return false
	}

	return bytes.Equal(s.Payload, o.Payload)
}

// Append adds one suffix block to the end of raw. An empty (NaN) root
// cannot carry suffixes.
func Append(raw []byte, s Suffix) (out []byte, err error) {
	if len(raw) == 0 {
		return nil, ErrNaNRoot.New("cannot suffix an empty raw value")
	}
	if len(s.Payload) > MaxPayload {
		return nil, ErrPayload.New("payload is %d bytes too long", len(s.Payload)-MaxPayload)
	}

	out = make([]byte, 0, len(raw)+len(s.Payload)+3)
	out = append(out, raw...)
	out = append(out, s.Raw()...)

	return out, nil
}

// Parse splits raw into its root and its suffixes, scanning blocks off the
// right end. The suffixes come back in their original (left to right)
// order. Payload bytes are copies, independent of raw.
func Parse(raw []byte) (root []byte, sfxs []Suffix, err error) {
	rest := raw
	for len(rest) > 0 && rest[len(rest)-1] == 0x00 {
		if len(rest) < 2 {
			return nil, nil, ErrMalformed.New("truncated suffix, or unstripped 00s")
		}

		n := int(rest[len(rest)-2])

		// A suffix may neither be larger than raw nor consume all of it.
		if n >= len(rest)-2 {
			return nil, nil, ErrMalformed.New("suffix length %d overflows %d raw bytes", n, len(rest))
		}

		if n == 0 {
			sfxs = append(sfxs, Suffix{})
			rest = rest[:len(rest)-2]

			continue
		}

		sfxs = append(sfxs, Suffix{
			Type:    rest[len(rest)-3],
			Typed:   true,
			Payload: append([]byte(nil), rest[len(rest)-2-n:len(rest)-3]...),
		})
		rest = rest[:len(rest)-2-n]
	}

	for i, j := 0, len(sfxs)-1; i < j; i, j = i+1, j-1 {
		sfxs[i], sfxs[j] = sfxs[j], sfxs[i]
	}

	root = append([]byte(nil), rest...)

	return root, sfxs, nil
}

// Find returns the first suffix of the given type.
func Find(raw []byte, typ byte) (s Suffix, err error) {
	_, sfxs, err := Parse(raw)
	if err != nil {
		return Suffix{}, err
	}

	for _, s := range sfxs {
		if s.Typed && s.Type == typ {
			return s, nil
		}
	}

	return Suffix{}, ErrNoSuchType.New("0x%02X", typ)
}

// Remove strips all suffixes of the given type, rebuilding the chain from
// the remaining suffixes in their original order. It fails if none match.
func Remove(raw []byte, typ byte) (out []byte, err error) {
	root, sfxs, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	removed := false
	out = root
	for _, s := range sfxs {
		if s.Typed && s.Type == typ {
			removed = true

			continue
		}

		out = append(out, s.Raw()...)
	}
	if !removed {
		return nil, ErrNoSuchType.New("0x%02X", typ)
	}

	return out, nil
}

package qnum

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/qantal/qnum/qigit"
	"github.com/qantal/qnum/suffix"
)

// Parse constructs a Number from text: either a q-string ("0q" plus hex
// with optional underscores) or ordinary numeric text (decimal, 0x/0o/0b
// integer forms, floats, inf and nan tokens, surrounding space).
func Parse(s string) (n Number, err error) {
	t := strings.TrimSpace(s)

	if strings.HasPrefix(t, "0q") {
		return ParseQstring(t)
	}

	if i, ok := new(big.Int).SetString(t, 10); ok {
		return FromBigInt(i)
	}
	if i, ok := new(big.Int).SetString(t, 0); ok {
		return FromBigInt(i)
	}
	if f, ferr := strconv.ParseFloat(t, 64); ferr == nil {
		return FromFloat(f), nil
	}

	return Number{}, ErrConstruct.New("not an int, float, or q-string: %q", s)
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

// ParseQstring constructs a Number from its q-string form alone.
// Underscores are ignored; odd-length hex gains a trailing zero nibble.
func ParseQstring(s string) (n Number, err error) {
	if !strings.HasPrefix(s, "0q") {
		return Number{}, ErrConstruct.New("a q-string must begin with 0q: %q", s)
	}

	digits := strings.ReplaceAll(s[2:], "_", "")
	if len(digits)%2 != 0 {
		digits += "0"
	}

	raw, err := qigit.HexDecode(digits)
	if err != nil {
		return Number{}, ErrConstruct.New("a q-string must use hexadecimal digits or underscore: %q", s)
	}

	return fromRaw(raw), nil
}

// Qstring renders the value in its delimited text form: "0q", the qex in
// hex, an underscore, the qan in hex, then each suffix after a double
// underscore. Parsing a q-string and re-rendering reproduces the original
// bytes exactly.
func (n Number) Qstring() string {
	root, sfxs, err := suffix.Parse(n.raw)
	if err != nil {
		// An unparseable chain still renders, just undelimited.
		return "0q" + n.Hex()
	}

	var offset int
	switch {
	case len(root) == 0:
		offset = 0
	case n.raw[0] >= 0x7E && n.raw[0] <= 0x81:
		offset = 2
	default:
		offset = 1
	}

	h := qigit.HexEncode(root)

	var b strings.Builder
	b.WriteString("0q")
	if len(root) <= offset {
		b.WriteString(h)
	} else {
		b.WriteString(h[:2*offset])
		b.WriteString("_")
		b.WriteString(h[2*offset:])
	}

	for _, s := range sfxs {
		b.WriteString("__")
		b.WriteString(s.Qstring())
	}

	return b.String()
}

// String renders the q-string form.
func (n Number) String() string {
	return n.Qstring()
}

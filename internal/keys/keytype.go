package keys

import "unicode"

// KeyTypeSize is the length of a key-type tag in bytes.
const KeyTypeSize = 4

// ValidateKeyType checks a key-type tag (e.g. "gran", "babe", "imon")
// and returns it as a fixed 4-byte array. The tag must be exactly four
// ASCII bytes.
func ValidateKeyType(s string) ([KeyTypeSize]byte, error) {
	var kt [KeyTypeSize]byte
	if len(s) != KeyTypeSize {
		return kt, errBadKeyType()
	}
	for i := 0; i < KeyTypeSize; i++ {
		if s[i] > unicode.MaxASCII {
			return kt, errBadKeyType()
		}
	}
	copy(kt[:], s)
	return kt, nil
}

func errBadKeyType() error {
	return &ArgumentError{msg: "Cannot convert argument to keytype: argument should be 4-character string"}
}

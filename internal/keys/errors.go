package keys

// ArgumentError reports a malformed command-line argument.
type ArgumentError struct {
	msg string
}

func (e *ArgumentError) Error() string {
	return "invalid argument: " + e.msg
}

// CryptoError reports a secret URI that could not be resolved to a key:
// malformed syntax, an unknown derivation operator, a bad seed, or a
// seed-phrase checksum mismatch.
type CryptoError struct {
	msg string
}

func (e *CryptoError) Error() string {
	return "crypto error: " + e.msg
}

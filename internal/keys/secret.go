package keys

import "encoding/json"

// Secret wraps a sensitive string (a secret URI or keystore password) so
// that it cannot leak through incidental display. Formatting, %v-style
// printing and JSON marshaling all yield "<redacted>"; reading the real
// value requires an explicit Expose call.
type Secret struct {
	b []byte
}

// NewSecret wraps s. The wrapper owns its own copy of the bytes.
func NewSecret(s string) *Secret {
	return &Secret{b: []byte(s)}
}

// Expose returns the underlying text.
func (s *Secret) Expose() string {
	return string(s.b)
}

// Zero overwrites the underlying bytes.
func (s *Secret) Zero() {
	for i := range s.b {
		s.b[i] = 0
	}
}

func (s *Secret) String() string {
	return "<redacted>"
}

func (s *Secret) GoString() string {
	return "<redacted>"
}

// MarshalJSON keeps the secret out of any accidentally serialized payload.
// RPC parameters that legitimately carry the secret must pass Expose()
// output instead of the wrapper.
func (s *Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal("<redacted>")
}

// Package keys derives node session keys from secret URIs.
//
// A secret URI is a seed phrase or hex seed followed by an optional
// hierarchical derivation path ("//hard" and "/soft" junctions) and an
// optional "///password" suffix. The node's keystore re-derives the same
// key server-side from the URI, so the client only ever needs the public
// half.
package keys

// Scheme selects the signing algorithm a key is derived for.
type Scheme int

const (
	// Sr25519 is schnorrkel/ristretto255 — the default session key scheme.
	Sr25519 Scheme = iota
	// Ed25519 is used by the finality gadget.
	Ed25519
	// Ecdsa is secp256k1 with SEC1-compressed public keys.
	Ecdsa
)

// ParseScheme converts the CLI spelling of a scheme.
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case "sr25519":
		return Sr25519, nil
	case "ed25519":
		return Ed25519, nil
	case "ecdsa":
		return Ecdsa, nil
	default:
		return 0, &ArgumentError{msg: "unknown scheme: " + s + " (expected sr25519, ed25519 or ecdsa)"}
	}
}

func (s Scheme) String() string {
	switch s {
	case Sr25519:
		return "sr25519"
	case Ed25519:
		return "ed25519"
	case Ecdsa:
		return "ecdsa"
	default:
		return "unknown"
	}
}

// PublicKeySize returns the fixed length of a compressed public key.
func (s Scheme) PublicKeySize() int {
	if s == Ecdsa {
		return 33
	}
	return 32
}

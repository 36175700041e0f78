package keys

import "crypto/ed25519"

const ed25519HDKDTag = "Ed25519HDKD"

func ed25519Public(seed [SeedSize]byte, path []junction) ([]byte, error) {
	for _, j := range path {
		if !j.hard {
			return nil, &CryptoError{msg: "soft key derivation is not supported for ed25519"}
		}
		seed = hardJunctionSeed(ed25519HDKDTag, seed, j.chainCode)
	}
	priv := ed25519.NewKeyFromSeed(seed[:])
	return []byte(priv.Public().(ed25519.PublicKey)), nil
}

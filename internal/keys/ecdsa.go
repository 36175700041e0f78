package keys

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const ecdsaHDKDTag = "Secp256k1HDKD"

func ecdsaPublic(seed [SeedSize]byte, path []junction) ([]byte, error) {
	for _, j := range path {
		if !j.hard {
			return nil, &CryptoError{msg: "soft key derivation is not supported for ecdsa"}
		}
		seed = hardJunctionSeed(ecdsaHDKDTag, seed, j.chainCode)
	}
	priv := secp256k1.PrivKeyFromBytes(seed[:])
	defer priv.Zero()
	return priv.PubKey().SerializeCompressed(), nil
}

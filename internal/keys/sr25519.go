package keys

import (
	schnorrkel "github.com/ChainSafe/go-schnorrkel"
)

// sr25519Public walks the derivation path over schnorrkel keys. Hard
// junctions collapse the key back to a mini secret before expanding
// again; soft junctions use the simple HDKD transcript so the public
// half stays derivable without the secret.
func sr25519Public(seed [SeedSize]byte, path []junction) ([]byte, error) {
	mini, err := schnorrkel.NewMiniSecretKeyFromRaw(seed)
	if err != nil {
		return nil, &CryptoError{msg: "invalid sr25519 seed: " + err.Error()}
	}
	secret := mini.ExpandEd25519()

	for _, j := range path {
		if j.hard {
			m, _, err := secret.HardDeriveMiniSecretKey([]byte{}, j.chainCode)
			if err != nil {
				return nil, &CryptoError{msg: "hard derivation failed: " + err.Error()}
			}
			secret = m.ExpandEd25519()
			continue
		}
		ext, err := schnorrkel.DeriveKeySimple(secret, []byte{}, j.chainCode)
		if err != nil {
			return nil, &CryptoError{msg: "soft derivation failed: " + err.Error()}
		}
		secret, err = ext.Secret()
		if err != nil {
			return nil, &CryptoError{msg: "soft derivation failed: " + err.Error()}
		}
	}

	public, err := secret.Public()
	if err != nil {
		return nil, &CryptoError{msg: "derive public key: " + err.Error()}
	}
	enc := public.Encode()
	return enc[:], nil
}

package keys

import (
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/pbkdf2"
)

// DevPhrase is the well-known development seed phrase used when a URI
// omits the phrase entirely (e.g. "//Alice").
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

// SeedSize is the scheme seed length in bytes.
const SeedSize = 32

var (
	suriRe     = regexp.MustCompile(`^(?P<phrase>[\d\w ]+)?(?P<path>(//?[^/]+)*)(///(?P<password>.*))?$`)
	junctionRe = regexp.MustCompile(`/(/?[^/]+)`)
)

// junction is a single derivation step. The chain code is the 32-byte
// encoding of the junction index or name.
type junction struct {
	chainCode [32]byte
	hard      bool
}

// secretURI is the parsed form of a secret URI.
type secretURI struct {
	phrase    string
	password  string // inline ///password suffix
	junctions []junction
}

func parseSecretURI(suri string) (*secretURI, error) {
	m := suriRe.FindStringSubmatch(suri)
	if m == nil {
		return nil, &CryptoError{msg: "malformed secret URI"}
	}

	u := &secretURI{
		phrase:   strings.TrimSpace(m[suriRe.SubexpIndex("phrase")]),
		password: m[suriRe.SubexpIndex("password")],
	}
	for _, jm := range junctionRe.FindAllStringSubmatch(m[suriRe.SubexpIndex("path")], -1) {
		u.junctions = append(u.junctions, newJunction(jm[1]))
	}
	return u, nil
}

// newJunction parses one path segment. A leading slash (i.e. "//" in the
// URI) marks hard derivation.
func newJunction(s string) junction {
	var j junction
	if strings.HasPrefix(s, "/") {
		j.hard = true
		s = s[1:]
	}
	j.chainCode = chainCode(s)
	return j
}

// chainCode encodes a junction component into 32 bytes: decimal indices
// become a little-endian u64, anything else is the length-prefixed byte
// string, blake2b-256-hashed when it does not fit.
func chainCode(s string) [32]byte {
	var cc [32]byte
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		binary.LittleEndian.PutUint64(cc[:], n)
		return cc
	}
	enc := append(compactLen(len(s)), s...)
	if len(enc) > len(cc) {
		return blake2b.Sum256(enc)
	}
	copy(cc[:], enc)
	return cc
}

// compactLen is the variable-width length prefix used by the node's
// codec: two low mode bits, then the value.
func compactLen(n int) []byte {
	switch {
	case n < 1<<6:
		return []byte{byte(n) << 2}
	case n < 1<<14:
		v := uint16(n)<<2 | 0b01
		return []byte{byte(v), byte(v >> 8)}
	default:
		v := uint32(n)<<2 | 0b10
		return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	}
}

// seedFromPhrase stretches a seed phrase into a 32-byte scheme seed:
// PBKDF2-SHA512 over the phrase's entropy with a password-salted
// "mnemonic" salt, 2048 rounds, truncated to 32 bytes. This matches the
// node keystore's derivation, which operates on the entropy rather than
// the plain BIP-39 seed.
func seedFromPhrase(phrase, password string) ([SeedSize]byte, error) {
	var seed [SeedSize]byte
	entropy, err := bip39.EntropyFromMnemonic(phrase)
	if err != nil {
		return seed, &CryptoError{msg: "invalid seed phrase: " + err.Error()}
	}
	stretched := pbkdf2.Key(entropy, []byte("mnemonic"+password), 2048, 64, sha512.New)
	copy(seed[:], stretched[:SeedSize])
	return seed, nil
}

// DerivePublic resolves a secret URI under the given scheme and returns
// the raw compressed public key. An inline "///password" is combined
// with the keystore password (inline first) before seed stretching.
// keystorePassword may be nil.
func DerivePublic(scheme Scheme, suri, keystorePassword *Secret) ([]byte, error) {
	u, err := parseSecretURI(suri.Expose())
	if err != nil {
		return nil, err
	}

	password := u.password
	if keystorePassword != nil {
		password += keystorePassword.Expose()
	}

	phrase := u.phrase
	if phrase == "" {
		phrase = DevPhrase
	}

	var seed [SeedSize]byte
	if strings.HasPrefix(phrase, "0x") {
		raw, err := hex.DecodeString(phrase[2:])
		if err != nil {
			return nil, &CryptoError{msg: "invalid hex seed"}
		}
		if len(raw) != SeedSize {
			return nil, &CryptoError{msg: "hex seed must be " + strconv.Itoa(SeedSize) + " bytes"}
		}
		copy(seed[:], raw)
	} else {
		seed, err = seedFromPhrase(phrase, password)
		if err != nil {
			return nil, err
		}
	}

	switch scheme {
	case Sr25519:
		return sr25519Public(seed, u.junctions)
	case Ed25519:
		return ed25519Public(seed, u.junctions)
	case Ecdsa:
		return ecdsaPublic(seed, u.junctions)
	default:
		return nil, &ArgumentError{msg: "unknown scheme"}
	}
}

// hardJunctionSeed derives the next seed for schemes without native
// hierarchical keys: blake2b-256 of the length-prefixed (tag, seed,
// chain code) tuple.
func hardJunctionSeed(tag string, seed, cc [32]byte) [32]byte {
	buf := make([]byte, 0, len(tag)+1+2*len(seed))
	buf = append(buf, compactLen(len(tag))...)
	buf = append(buf, tag...)
	buf = append(buf, seed[:]...)
	buf = append(buf, cc[:]...)
	return blake2b.Sum256(buf)
}

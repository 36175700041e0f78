// aurora-keys manages session keys of a running aurora node.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aurora-net/aurora-keytool/internal/input"
	"github.com/aurora-net/aurora-keytool/internal/keys"
	"github.com/aurora-net/aurora-keytool/internal/log"
	"github.com/aurora-net/aurora-keytool/internal/rpcclient"

	"github.com/tyler-smith/go-bip39"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Scan for --log-level before the subcommand.
	logLevel := "warn"
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--log-level" && len(args) > 1:
			logLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			logLevel = args[0][len("--log-level="):]
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	log.Init(logLevel)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "insert":
		cmdInsert(cmdArgs)
	case "inspect":
		cmdInspect(cmdArgs)
	case "generate":
		cmdGenerate(cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: aurora-keys [global flags] <command> [flags]

Global flags:
  --log-level <level>   debug, info, warn (default) or error

Commands:
  insert --key-type <type> [flags]   Insert a key into the keystore of a node
  inspect [flags]                    Show the public key a secret URI resolves to
  generate [flags]                   Generate a new seed phrase and show its public key

insert flags:
  --suri <uri>                Secret key URI, or a path to a file containing one
                              (prompted for when omitted)
  --key-type <type>           4-character key type, e.g. "gran" or "imon" (required)
  --scheme <scheme>           sr25519 (default), ed25519 or ecdsa
  --node-url <url>            Node JSON-RPC endpoint (default %s)
  --password <password>       Keystore password
  --password-interactive      Prompt for the keystore password
  --password-filename <path>  Read the keystore password from a file

The keystore password may also be supplied via the %s
environment variable.
`, rpcclient.DefaultEndpoint, input.PasswordEnv)
}

// passwordFlags registers the keystore password flag family on fs.
func passwordFlags(fs *flag.FlagSet) *input.PasswordOptions {
	opts := &input.PasswordOptions{}
	fs.StringVar(&opts.Password, "password", "", "Keystore password")
	fs.BoolVar(&opts.Interactive, "password-interactive", false, "Prompt for the keystore password")
	fs.StringVar(&opts.Filename, "password-filename", "", "Read the keystore password from a file")
	return opts
}

// resolvePublic runs the shared reader/derivation sequence: read the
// URI, read the password, derive the public key under the scheme.
func resolvePublic(schemeArg, suriArg string, pwOpts *input.PasswordOptions) (keys.Scheme, *keys.Secret, []byte) {
	scheme, err := keys.ParseScheme(schemeArg)
	if err != nil {
		fatal("%v", err)
	}

	suri, err := input.ReadURI(suriArg)
	if err != nil {
		fatal("%v", err)
	}

	password, err := pwOpts.Read()
	if err != nil {
		fatal("%v", err)
	}

	public, err := keys.DerivePublic(scheme, suri, password)
	if password != nil {
		password.Zero()
	}
	if err != nil {
		fatal("%v", err)
	}

	log.Keys.Debug().
		Str("scheme", scheme.String()).
		Int("public_bytes", len(public)).
		Msg("derived public key")

	return scheme, suri, public
}

// ── insert ──────────────────────────────────────────────────────────────

func cmdInsert(args []string) {
	fs := flag.NewFlagSet("insert", flag.ExitOnError)
	suriArg := fs.String("suri", "", "Secret key URI, or a path to a file containing one")
	keyType := fs.String("key-type", "", "4-character key type, e.g. \"gran\" or \"imon\"")
	schemeArg := fs.String("scheme", "sr25519", "Crypto scheme: sr25519, ed25519 or ecdsa")
	nodeURL := fs.String("node-url", rpcclient.DefaultEndpoint, "Node JSON-RPC endpoint")
	pwOpts := passwordFlags(fs)
	fs.Parse(args)

	if *keyType == "" {
		fatal("Usage: aurora-keys insert --key-type <type> [--suri <uri>] [--scheme <scheme>] [--node-url <url>]")
	}

	_, suri, public := resolvePublic(*schemeArg, *suriArg, pwOpts)

	if _, err := keys.ValidateKeyType(*keyType); err != nil {
		fatal("%v", err)
	}

	client := rpcclient.New(*nodeURL)
	err := client.InsertKey(*keyType, suri, public)
	suri.Zero()
	if err != nil {
		fatal("%v", err)
	}
}

// ── inspect ─────────────────────────────────────────────────────────────

func cmdInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	suriArg := fs.String("suri", "", "Secret key URI, or a path to a file containing one")
	schemeArg := fs.String("scheme", "sr25519", "Crypto scheme: sr25519, ed25519 or ecdsa")
	pwOpts := passwordFlags(fs)
	fs.Parse(args)

	scheme, suri, public := resolvePublic(*schemeArg, *suriArg, pwOpts)
	suri.Zero()

	fmt.Printf("Scheme:     %s\n", scheme)
	fmt.Printf("Public key: 0x%s\n", hex.EncodeToString(public))
}

// ── generate ────────────────────────────────────────────────────────────

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	schemeArg := fs.String("scheme", "sr25519", "Crypto scheme: sr25519, ed25519 or ecdsa")
	words := fs.Int("words", 12, "Seed phrase length: 12, 15, 18, 21 or 24 words")
	pwOpts := passwordFlags(fs)
	fs.Parse(args)

	scheme, err := keys.ParseScheme(*schemeArg)
	if err != nil {
		fatal("%v", err)
	}

	switch *words {
	case 12, 15, 18, 21, 24:
	default:
		fatal("invalid argument: --words must be 12, 15, 18, 21 or 24")
	}

	// Each 3 words encode 32 bits of entropy.
	entropy, err := bip39.NewEntropy(*words / 3 * 32)
	if err != nil {
		fatal("generate entropy: %v", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		fatal("generate seed phrase: %v", err)
	}

	password, err := pwOpts.Read()
	if err != nil {
		fatal("%v", err)
	}

	suri := keys.NewSecret(mnemonic)
	public, err := keys.DerivePublic(scheme, suri, password)
	suri.Zero()
	if password != nil {
		password.Zero()
	}
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println("Seed phrase (write this down!):")
	fmt.Printf("  %s\n\n", mnemonic)
	fmt.Printf("Scheme:     %s\n", scheme)
	fmt.Printf("Public key: 0x%s\n", hex.EncodeToString(public))
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

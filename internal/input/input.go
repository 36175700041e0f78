// Package input gathers secrets from the places a CLI invocation can
// carry them: arguments, files, environment, or an interactive prompt.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/aurora-net/aurora-keytool/internal/keys"
)

// PasswordEnv is the environment variable consulted when no --password
// flag is given.
const PasswordEnv = "AURORA_KEYSTORE_PASSWORD"

// InputError reports a missing or unreadable input source.
type InputError struct {
	msg string
}

func (e *InputError) Error() string {
	return "input error: " + e.msg
}

// Seams for tests; prompts and terminal detection cannot run under
// `go test`.
var (
	stdin           io.Reader = os.Stdin
	stdinIsTerminal           = func() bool { return term.IsTerminal(int(syscall.Stdin)) }
	promptSecret              = readSecretLine
)

// readSecretLine prompts on stderr and reads a line with echo suppressed.
func readSecretLine(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	return line, err
}

// ReadURI resolves the --suri argument into a secret URI.
//
// A non-empty arg naming a readable file yields the file's trimmed
// contents; any other non-empty arg is the URI itself. An empty arg
// prompts on a terminal (echo suppressed) or reads one line from piped
// standard input.
func ReadURI(arg string) (*keys.Secret, error) {
	if arg != "" {
		st, err := os.Stat(arg)
		if err != nil || st.IsDir() {
			return keys.NewSecret(arg), nil
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, &InputError{msg: fmt.Sprintf("cannot read URI file %s: %v", arg, err)}
		}
		return keys.NewSecret(strings.TrimSpace(string(data))), nil
	}

	if stdinIsTerminal() {
		line, err := promptSecret("URI: ")
		if err != nil {
			return nil, &InputError{msg: "cannot prompt for URI: " + err.Error()}
		}
		return keys.NewSecret(strings.TrimSpace(string(line))), nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && line == "" {
		return nil, &InputError{msg: "no URI provided on standard input"}
	}
	return keys.NewSecret(strings.TrimSpace(line)), nil
}

// PasswordOptions mirrors the keystore password flags.
type PasswordOptions struct {
	Password    string // --password
	Interactive bool   // --password-interactive
	Filename    string // --password-filename
}

// Read resolves the keystore password. Sources in priority order: the
// flag value, the PasswordEnv environment variable, the password file,
// and finally an interactive double prompt when Interactive is set.
// Returns nil when no source is configured (unencrypted keystore).
func (o PasswordOptions) Read() (*keys.Secret, error) {
	if o.Password != "" {
		return keys.NewSecret(o.Password), nil
	}
	if v, ok := os.LookupEnv(PasswordEnv); ok && v != "" {
		return keys.NewSecret(v), nil
	}
	if o.Filename != "" {
		data, err := os.ReadFile(o.Filename)
		if err != nil {
			return nil, &InputError{msg: fmt.Sprintf("cannot read password file %s: %v", o.Filename, err)}
		}
		return keys.NewSecret(strings.TrimSpace(string(data))), nil
	}
	if o.Interactive {
		first, err := promptSecret("Password: ")
		if err != nil {
			return nil, &InputError{msg: "cannot prompt for password: " + err.Error()}
		}
		second, err := promptSecret("Confirm password: ")
		if err != nil {
			return nil, &InputError{msg: "cannot prompt for password: " + err.Error()}
		}
		if string(first) != string(second) {
			return nil, &InputError{msg: "password entries do not match"}
		}
		secret := keys.NewSecret(string(first))
		for i := range first {
			first[i] = 0
		}
		for i := range second {
			second[i] = 0
		}
		return secret, nil
	}
	return nil, nil
}

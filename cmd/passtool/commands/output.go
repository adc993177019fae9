package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// stdinArg in place of a secret argument means "read it from stdin".
const stdinArg = "-"

var errNoInput = errors.New("no password on stdin")

// Test seams for the terminal.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// readSecret reads one line from in. A terminal is read without echo, with a
// prompt on prompt. Only the line ending is stripped.
func readSecret(in io.Reader, prompt io.Writer) ([]byte, error) {
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(prompt, "Password: ")
		pw, err := readPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(prompt)
		return pw, err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line == "" {
			return nil, errNoInput
		}
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeLine(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

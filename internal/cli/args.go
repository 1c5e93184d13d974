package cli

import (
	"flag"
	"fmt"
	"strings"
)

// ParseInput returns the single positional input path, reparsing flags that
// follow it so `tool input.pdf -o out.json` works with the stdlib flag
// package. Any positional left over after the reparse is an error rather
// than silently dropped.
func ParseInput(fs *flag.FlagSet, args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}

	input := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return "", err
	}
	if fs.NArg() > 0 {
		return "", fmt.Errorf("unexpected extra arguments: %s", strings.Join(fs.Args(), " "))
	}
	return input, nil
}

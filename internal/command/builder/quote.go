package command

import (
	"regexp"
	"strings"
)

var safeShellToken = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// ShellQuote quotes s for a POSIX shell if it contains anything but safe characters.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if safeShellToken.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// ShellJoin quotes and joins an argument list into one command line.
func ShellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = ShellQuote(a)
	}
	return strings.Join(quoted, " ")
}

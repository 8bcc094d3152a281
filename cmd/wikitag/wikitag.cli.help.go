package main

import (
	"fmt"
	"io"
	"strings"
)

func runHelp(args []string, _ io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stdout, mainUsage())
		return ExitCodeSuccess
	}

	cmd, ok := lookupCommand(args[0])
	if !ok {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgUnknownCommand, args[0])
		fmt.Fprint(stdout, mainUsage())
		return ExitCodeUsageError
	}
	fmt.Fprintln(stdout, cmd.usage)
	return ExitCodeSuccess
}

// mainUsage lists every command from the command table
func mainUsage() string {
	var sb strings.Builder
	sb.WriteString(HelpMainHeader)
	for _, cmd := range commands() {
		fmt.Fprintf(&sb, FmtHelpCommandLine, cmd.name, cmd.summary)
	}
	sb.WriteString(HelpMainFooter)
	return sb.String()
}

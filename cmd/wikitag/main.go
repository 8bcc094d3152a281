package main

import (
	"fmt"
	"io"
	"os"
)

// command is one wikitag subcommand. Help output is generated from this table.
type command struct {
	name    string
	summary string
	usage   string
	run     func(args []string, stdin io.Reader, stdout, stderr io.Writer) int
}

// commands returns the subcommands in the order help lists them
func commands() []command {
	return []command{
		{name: CmdNameRender, summary: CmdSummaryRender, usage: HelpRenderUsage, run: runRender},
		{name: CmdNameValidate, summary: CmdSummaryValidate, usage: HelpValidateUsage, run: runValidate},
		{name: CmdNameVersion, summary: CmdSummaryVersion, usage: HelpVersionUsage, run: runVersion},
		{name: CmdNameHelp, summary: CmdSummaryHelp, usage: HelpHelpUsage, run: runHelp},
	}
}

func lookupCommand(name string) (command, bool) {
	for _, cmd := range commands() {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches args to a subcommand and returns the exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return runHelp(nil, stdin, stdout, stderr)
	}

	cmd, ok := lookupCommand(args[0])
	if !ok {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgUnknownCommand, args[0])
		fmt.Fprint(stdout, mainUsage())
		return ExitCodeUsageError
	}
	return cmd.run(args[1:], stdin, stdout, stderr)
}

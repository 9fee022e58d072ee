package main

import (
	"fmt"
	"io"
	"os"
)

// Created: Sat Mar  8 11:42:17 2025

const (
	dfltBaseDir = "."
	dfltSrcRoot = "Core/Src"
	dfltIncRoot = "Core/Inc"
	dfltSrcExt  = ".c"
	dfltIncExt  = ".h"

	dfltDirPerms = 0o755

	keyIndent = 8
)

// the available actions
const (
	listAction   = "list"
	searchAction = "search"
	moveAction   = "move"
	deleteAction = "delete"
	createAction = "create"
)

func main() {
	prog := newProg()
	ps := makeParamSet(prog)

	args, err := normalizeArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	ps.Parse(args)

	prog.run()
}

// run performs the chosen action. With no action chosen it prints the
// command summary.
func (prog *prog) run() {
	switch prog.action {
	case listAction:
		prog.listKeys()
	case searchAction:
		prog.searchKeys()
	case moveAction:
		prog.moveKeys()
	case deleteAction:
		prog.deleteKeys()
	case createAction:
		prog.createKey()
	default:
		printUsage(os.Stdout)
	}
}

// printUsage shows the commands the program offers. The full set of
// parameters is available through the standard help parameter.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: chpair <command> [parameters]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "    list                        show every key")
	fmt.Fprintln(w, "    search <pattern>            show keys matching the pattern")
	fmt.Fprintln(w, "    move -from <key> -to <key>  move the files of a key")
	fmt.Fprintln(w, "    delete <key>                delete the files of a key")
	fmt.Fprintln(w, "    create <key>                create a source/header pair")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "run 'chpair -help' for the full list of parameters")
}

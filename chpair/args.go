package main

import (
	"fmt"
	"strings"
)

// cmdPosParam maps each command word to the parameter its positional
// value, if it takes one, is translated into.
var cmdPosParam = map[string]string{
	listAction:   "",
	searchAction: paramNamePattern,
	moveAction:   "",
	deleteAction: paramNameKey,
	createAction: paramNameKey,
}

// paramsTakingValue lists the parameters, alternative names included,
// which consume the following argument as their value when given in the
// '-name value' form. Boolean parameters never consume the following
// argument.
var paramsTakingValue = map[string]bool{
	paramNameAction:  true,
	"a":              true,
	paramNamePattern: true,
	"p":              true,
	paramNameKey:     true,
	"k":              true,
	paramNameFrom:    true,
	paramNameTo:      true,
	paramNameBaseDir: true,
	paramNameSrcRoot: true,
	paramNameIncRoot: true,
	paramNameSrcExt:  true,
	paramNameIncExt:  true,
}

// normalizeArgs translates the command form of the command line into
// plain parameters. If the first argument is a command word it becomes
// the action parameter and the command's positional value, if it has one,
// becomes the corresponding named parameter. A double dash introducing a
// parameter name is reduced to the single dash form. Anything else passes
// through unchanged, as does the whole command line when it doesn't start
// with a command word.
func normalizeArgs(args []string) ([]string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return args, nil
	}

	cmd := args[0]

	posParam, ok := cmdPosParam[cmd]
	if !ok {
		return nil, fmt.Errorf("unknown command: %q", cmd)
	}

	out := []string{"-" + paramNameAction, cmd}
	havePos := false

	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]

		if arg == "--" {
			out = append(out, rest[i:]...)
			break
		}

		if strings.HasPrefix(arg, "--") {
			arg = arg[1:]
		}

		if strings.HasPrefix(arg, "-") {
			out = append(out, arg)

			name, _, hasVal := strings.Cut(strings.TrimPrefix(arg, "-"), "=")
			if !hasVal && paramsTakingValue[name] && i+1 < len(rest) {
				i++
				out = append(out, rest[i])
			}

			continue
		}

		if posParam != "" && !havePos {
			out = append(out, "-"+posParam, arg)
			havePos = true

			continue
		}

		return nil, fmt.Errorf(
			"unexpected argument %q following the %s command", arg, cmd)
	}

	return out, nil
}

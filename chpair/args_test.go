package main

import (
	"testing"

	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

func TestNormalizeArgs(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		args    []string
		expArgs []string
		testhelper.ExpErr
	}{
		{
			ID: testhelper.MkID("no args"),
		},
		{
			ID:      testhelper.MkID("parameter form passes through"),
			args:    []string{"-action", "list"},
			expArgs: []string{"-action", "list"},
		},
		{
			ID:      testhelper.MkID("list"),
			args:    []string{"list"},
			expArgs: []string{"-action", "list"},
		},
		{
			ID:      testhelper.MkID("list with a following param"),
			args:    []string{"list", "-table"},
			expArgs: []string{"-action", "list", "-table"},
		},
		{
			ID:      testhelper.MkID("double dash param is reduced"),
			args:    []string{"list", "--table"},
			expArgs: []string{"-action", "list", "-table"},
		},
		{
			ID:      testhelper.MkID("search with a pattern"),
			args:    []string{"search", "uart"},
			expArgs: []string{"-action", "search", "-pattern", "uart"},
		},
		{
			ID:   testhelper.MkID("search with the pattern after a param"),
			args: []string{"search", "-table", "uart"},
			expArgs: []string{
				"-action", "search", "-table", "-pattern", "uart",
			},
		},
		{
			ID:      testhelper.MkID("search with an explicit pattern param"),
			args:    []string{"search", "-pattern", "uart"},
			expArgs: []string{"-action", "search", "-pattern", "uart"},
		},
		{
			ID:      testhelper.MkID("short name takes its value"),
			args:    []string{"search", "-p", "uart"},
			expArgs: []string{"-action", "search", "-p", "uart"},
		},
		{
			ID:   testhelper.MkID("param values are not positionals"),
			args: []string{"move", "-from", "list", "-to", "delete"},
			expArgs: []string{
				"-action", "move", "-from", "list", "-to", "delete",
			},
		},
		{
			ID:      testhelper.MkID("delete with a key"),
			args:    []string{"delete", "uart"},
			expArgs: []string{"-action", "delete", "-key", "uart"},
		},
		{
			ID:   testhelper.MkID("delete with the key after a param"),
			args: []string{"delete", "-fuzzy", "uart"},
			expArgs: []string{
				"-action", "delete", "-fuzzy", "-key", "uart",
			},
		},
		{
			ID:      testhelper.MkID("create with a path key"),
			args:    []string{"create", "foo/bar"},
			expArgs: []string{"-action", "create", "-key", "foo/bar"},
		},
		{
			ID:      testhelper.MkID("equals form does not consume"),
			args:    []string{"search", "-pattern=uart"},
			expArgs: []string{"-action", "search", "-pattern=uart"},
		},
		{
			ID:      testhelper.MkID("terminator passes the rest through"),
			args:    []string{"list", "--", "-x", "y"},
			expArgs: []string{"-action", "list", "--", "-x", "y"},
		},
		{
			ID:     testhelper.MkID("unknown command"),
			args:   []string{"frobnicate"},
			ExpErr: testhelper.MkExpErr(`unknown command: "frobnicate"`),
		},
		{
			ID:   testhelper.MkID("extra positional"),
			args: []string{"search", "a", "b"},
			ExpErr: testhelper.MkExpErr(
				`unexpected argument "b" following the search command`),
		},
		{
			ID:   testhelper.MkID("positional for a command without one"),
			args: []string{"list", "x"},
			ExpErr: testhelper.MkExpErr(
				`unexpected argument "x" following the list command`),
		},
	}

	for _, tc := range testCases {
		args, err := normalizeArgs(tc.args)
		testhelper.CheckExpErr(t, err, tc)
		testhelper.DiffStringSlice(t, tc.IDStr(), "args", args, tc.expArgs)
	}
}

package main

import (
	"github.com/nickwells/cli.mod/cli/responder"
	"github.com/nickwells/twrap.mod/twrap"
	"github.com/nickwells/verbose.mod/verbose"
)

// prog holds program parameters and status
type prog struct {
	// the action to perform
	action string

	// the pattern to search for
	pattern string
	// the key to delete or create
	key string

	// the directory holding the two roots and the roots themselves
	baseDir string
	srcRoot string
	incRoot string

	// move parameters
	fromKey string
	toKey   string
	dirMode bool
	noName  bool

	// fuzzy makes the move and delete actions treat their key as a
	// pattern and operate on every matching key
	fuzzy bool

	// confirm makes the delete action ask before deleting a key's files
	confirm bool

	// asTable makes the list and search actions show a columnar report
	asTable bool

	// the extensions used when creating a new pair
	srcExt string
	incExt string

	deleteR responder.Responder

	twc      *twrap.TWConf
	dbgStack *verbose.Stack

	status counts
}

// newProg returns a properly initialised prog value
func newProg() *prog {
	return &prog{
		baseDir: dfltBaseDir,
		srcRoot: dfltSrcRoot,
		incRoot: dfltIncRoot,
		srcExt:  dfltSrcExt,
		incExt:  dfltIncExt,

		deleteR: responder.NewOrPanic(
			"Delete the files",
			map[rune]string{
				'y': "delete the files of this key",
				'n': "keep the files of this key",
			},
			responder.SetDefault('n')),

		twc:      twrap.NewTWConfOrPanic(),
		dbgStack: &verbose.Stack{},
	}
}

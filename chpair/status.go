package main

import (
	"fmt"
	"strings"

	"github.com/nickwells/english.mod/english"
)

// counts records what a mutating action did with the files it visited
type counts struct {
	moved   int
	deleted int
	created int
	skipped int
	failed  int
}

// total returns the number of files the action did anything with
func (c counts) total() int {
	return c.moved + c.deleted + c.created + c.skipped + c.failed
}

// reportVal reports the value if it is greater than zero
func reportVal(n int, name string, indent int) {
	if n <= 0 {
		return
	}

	fmt.Printf("%s%3d %s\n", strings.Repeat(" ", indent), n, name)
}

// report summarises what the action did. A run with nothing to report
// prints nothing, so an action which found no files stays quiet.
func (c counts) report() {
	if c.total() == 0 {
		return
	}

	fmt.Println("Summary")
	reportVal(c.moved, "moved", 4)
	reportVal(c.deleted, "deleted", 4)
	reportVal(c.created, "created", 4)
	reportVal(c.skipped, "skipped", 4)
	reportVal(c.failed, english.Plural("failure", c.failed), 4)
}

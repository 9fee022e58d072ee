package main

import (
	"fmt"
	"os"

	"github.com/nickwells/english.mod/english"
)

// deleteKeys removes every file of the chosen keys
func (prog *prog) deleteKeys() {
	defer prog.dbgStack.Start("deleteKeys", "deleting the files")()

	idx := prog.buildIndex()

	keys, ok := prog.chooseKeys(idx, prog.key)
	if !ok {
		return
	}

	for _, key := range keys {
		entries := idx[key]

		if prog.confirm && !prog.confirmDelete(key, len(entries)) {
			prog.status.skipped += len(entries)
			continue
		}

		for _, fe := range entries {
			prog.deleteFile(fe)
		}
	}

	prog.status.report()
}

// confirmDelete asks whether the files of the key should be deleted
func (prog *prog) confirmDelete(key string, n int) bool {
	fmt.Printf("key %q has %d %s\n", key, n, english.Plural("file", n))

	response := prog.deleteR.GetResponseOrDie()
	fmt.Println()

	return response == 'y'
}

// deleteFile removes the file, reporting what happened. Failures are
// reported and the batch carries on.
func (prog *prog) deleteFile(fe fileEntry) {
	if err := os.Remove(fe.path); err != nil {
		prog.twc.Wrap("couldn't delete the file: "+err.Error(), 0)
		prog.status.failed++

		return
	}

	fmt.Println("deleted " + fe.path)
	prog.status.deleted++
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/mathutil.mod/v2/mathutil"
)

// checkMoveFlags checks that the move flags make sense together. Moving
// several keys to a single target name would make the moved files
// overwrite one another so fuzzy matching needs the no-name form.
func checkMoveFlags(fuzzy, noName bool) error {
	if fuzzy && !noName {
		return errors.New("the -" + paramNameFuzzy +
			" parameter can only be given with -" + paramNameNoName)
	}

	return nil
}

// moveKeys moves every file of the chosen keys to the target
func (prog *prog) moveKeys() {
	if err := checkMoveFlags(prog.fuzzy, prog.noName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr,
			"usage: chpair move -from <key> -to <key>"+
				" [-dir] [-no-name] [-fuzzy]")
		os.Exit(1)
	}

	defer prog.dbgStack.Start("moveKeys", "moving the files")()

	idx := prog.buildIndex()

	keys, ok := prog.chooseKeys(idx, prog.fromKey)
	if !ok {
		return
	}

	total := 0
	for _, key := range keys {
		total += len(idx[key])
	}

	digits := mathutil.Digits(int64(total))
	nFormat := fmt.Sprintf("(%%%dd / %%d) ", digits)

	n := 0

	for _, key := range keys {
		for _, fe := range idx[key] {
			n++
			prog.moveFile(fe, key, fmt.Sprintf(nFormat, n, total))
		}
	}

	prog.status.report()
}

// moveFile moves a single file to its destination for the target key. A
// file already at the destination is never overwritten; the move is
// reported and skipped. Failures are reported and the batch carries on.
func (prog *prog) moveFile(fe fileEntry, key, prefix string) {
	dest := prog.destPath(fe, key)

	if filecheck.FileExists().StatusCheck(dest) == nil {
		prog.twc.Wrap(
			"skipping \""+fe.path+"\": \""+dest+"\" already exists", 0)
		prog.status.skipped++

		return
	}

	if err := os.MkdirAll(filepath.Dir(dest), dfltDirPerms); err != nil {
		prog.twc.Wrap("couldn't make the target directory: "+err.Error(), 0)
		prog.status.failed++

		return
	}

	if err := os.Rename(fe.path, dest); err != nil {
		prog.twc.Wrap("couldn't move the file: "+err.Error(), 0)
		prog.status.failed++

		return
	}

	fmt.Printf("%smoved %s -> %s\n", prefix, fe.path, dest)
	prog.status.moved++
}

// destPath computes where the file should move to for the target key.
// The file always stays under its own root. By default the file is
// renamed to the target key keeping its extension. With no-name the
// target is a directory and the file moves into it under its own name.
// With dir the target is a directory and the key's occurrence in the
// file's relative path is replaced, re-rooting the whole key path under
// the target.
func (prog *prog) destPath(fe fileEntry, key string) string {
	root := prog.rootPath(fe.root)

	switch {
	case prog.dirMode:
		rel := strings.Replace(fe.rel, key,
			filepath.Join(prog.toKey, key), 1)
		return filepath.Join(root, rel)
	case prog.noName:
		return filepath.Join(root, prog.toKey, filepath.Base(fe.path))
	}

	return filepath.Join(root, prog.toKey+fe.ext)
}

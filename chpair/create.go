package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nickwells/filecheck.mod/filecheck"
)

// createKey creates a stub source/header pair for the key
func (prog *prog) createKey() {
	defer prog.dbgStack.Start("createKey", "creating the file pair")()

	srcFile := filepath.Join(prog.srcPath(), prog.key+prog.srcExt)
	incFile := filepath.Join(prog.incPath(), prog.key+prog.incExt)

	prog.makeStub(srcFile, prog.srcStub())
	prog.makeStub(incFile, prog.incStub())

	prog.status.report()
}

// makeStub writes the content into the named file, creating any missing
// directories on the way. A file that already exists is reported and
// left alone.
func (prog *prog) makeStub(name, content string) {
	if filecheck.IsNew().StatusCheck(name) != nil {
		prog.twc.Wrap("skipping \""+name+"\": it already exists", 0)
		prog.status.skipped++

		return
	}

	if err := os.MkdirAll(filepath.Dir(name), dfltDirPerms); err != nil {
		prog.twc.Wrap("couldn't make the directory: "+err.Error(), 0)
		prog.status.failed++

		return
	}

	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		prog.twc.Wrap("couldn't create the file: "+err.Error(), 0)
		prog.status.failed++

		return
	}

	fmt.Println("created " + name)
	prog.status.created++
}

// srcStub returns the content of a new source file. It includes the
// header by its base name and carries a boilerplate entry point.
func (prog *prog) srcStub() string {
	return fmt.Sprintf(`#include "%s%s"

int main(void)
{
	return 0;
}
`, filepath.Base(prog.key), prog.incExt)
}

// incStub returns the content of a new header file, guarded
func (prog *prog) incStub() string {
	g := guardName(prog.key, prog.incExt)

	return fmt.Sprintf(`#ifndef %s
#define %s

#endif /* %s */
`, g, g, g)
}

// guardName derives the include-guard symbol from the key and the header
// extension: every character that cannot appear in a C identifier,
// path separators included, becomes an underscore and the result is
// upper-cased. A key of foo/bar with the default header extension gives
// FOO_BAR_H.
func guardName(key, incExt string) string {
	g := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9':
			return r
		}

		return '_'
	}, key+incExt)

	return strings.ToUpper(g)
}

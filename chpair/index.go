package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/dirsearch.mod/v2/dirsearch"
	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/verbose.mod/verbose"
)

// the names of the two roots
const (
	srcRootName = "Src"
	incRootName = "Inc"
)

// fileEntry records a single file found under one of the two roots
type fileEntry struct {
	// the path of the file including the base directory
	path string
	// the path of the file relative to its root
	rel string
	// the file's extension including the leading dot, possibly empty
	ext string
	// the name of the root the file was found under
	root string
}

// keyIndex maps each key to the files it refers to. A key is the path of
// a file relative to its root with the extension removed; a key can have
// files under both roots and with several extensions under one root.
type keyIndex map[string][]fileEntry

// srcPath returns the directory holding the source files
func (prog *prog) srcPath() string {
	return filepath.Join(prog.baseDir, prog.srcRoot)
}

// incPath returns the directory holding the header files
func (prog *prog) incPath() string {
	return filepath.Join(prog.baseDir, prog.incRoot)
}

// rootPath returns the directory the named root refers to
func (prog *prog) rootPath(rootName string) string {
	if rootName == srcRootName {
		return prog.srcPath()
	}

	return prog.incPath()
}

// buildIndex scans the two roots and builds the index afresh. Problems
// found while scanning are reported and are fatal.
func (prog *prog) buildIndex() keyIndex {
	defer prog.dbgStack.Start("buildIndex", "scanning the file trees")()

	idx := keyIndex{}

	errMap := errutil.NewErrMap()
	scanRoot(idx, srcRootName, prog.srcPath(), errMap)
	scanRoot(idx, incRootName, prog.incPath(), errMap)

	if errMap.HasErrors() {
		errMap.Report(os.Stderr, "chpair")
		os.Exit(1)
	}

	idx.sortEntries()

	verbose.Println("indexed ", prog.baseDir)

	return idx
}

// scanRoot walks the tree under dir adding an entry for every regular
// file found. Problems are recorded in the error map.
func scanRoot(idx keyIndex, rootName, dir string, errMap *errutil.ErrMap) {
	entries, errs := dirsearch.FindRecurse(dir, check.FileInfoIsRegular)
	for _, err := range errs {
		errMap.AddError(rootName+" root: "+dir, err)
	}

	prefix := dir + string(os.PathSeparator)

	for path := range entries {
		rel := strings.TrimPrefix(path, prefix)
		key, ext := splitKey(rel)
		idx[key] = append(idx[key],
			fileEntry{path: path, rel: rel, ext: ext, root: rootName})
	}
}

// splitKey splits a root-relative path into the key and the extension. A
// leading dot on a filename does not start an extension.
func splitKey(rel string) (key, ext string) {
	ext = filepath.Ext(rel)
	if ext == filepath.Base(rel) {
		ext = ""
	}

	return strings.TrimSuffix(rel, ext), ext
}

// sortEntries puts the files of each key into a fixed order: source
// entries before header entries, then by path
func (idx keyIndex) sortEntries() {
	for _, entries := range idx {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].root != entries[j].root {
				return entries[i].root == srcRootName
			}

			return entries[i].path < entries[j].path
		})
	}
}

// keys returns the keys of the index, sorted
func (idx keyIndex) keys() []string {
	keys := make([]string, 0, len(idx))
	for key := range idx {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// partition classifies the keys of the index by the roots their files
// appear under. The returned slices are sorted.
func (idx keyIndex) partition() (paired, srcOnly, incOnly []string) {
	for key, entries := range idx {
		var hasSrc, hasInc bool

		for _, fe := range entries {
			switch fe.root {
			case srcRootName:
				hasSrc = true
			case incRootName:
				hasInc = true
			}
		}

		switch {
		case hasSrc && hasInc:
			paired = append(paired, key)
		case hasSrc:
			srcOnly = append(srcOnly, key)
		default:
			incOnly = append(incOnly, key)
		}
	}

	sort.Strings(paired)
	sort.Strings(srcOnly)
	sort.Strings(incOnly)

	return paired, srcOnly, incOnly
}

package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/nickwells/col.mod/v4/col"
	"github.com/nickwells/col.mod/v4/colfmt"
	"github.com/nickwells/english.mod/english"
)

// noExts is shown in the table for a key with no files under a root
const noExts = "-"

// listKeys shows every key found under the two roots
func (prog *prog) listKeys() {
	idx := prog.buildIndex()
	prog.showPartitions(idx, "")
}

// searchKeys shows the keys matching the search pattern
func (prog *prog) searchKeys() {
	idx := prog.buildIndex()
	prog.showPartitions(idx, prog.pattern)
}

// showPartitions classifies the keys, keeps only those matching the
// pattern, if one is given, and shows the three sections
func (prog *prog) showPartitions(idx keyIndex, pattern string) {
	paired, srcOnly, incOnly := idx.partition()

	if pattern != "" {
		paired = filterKeys(paired, pattern)
		srcOnly = filterKeys(srcOnly, pattern)
		incOnly = filterKeys(incOnly, pattern)
	}

	if prog.asTable {
		prog.showKeyTable(idx, paired, srcOnly, incOnly)
		return
	}

	showKeys("paired", paired)
	showKeys(srcRootName+"-only", srcOnly)
	showKeys(incRootName+"-only", incOnly)
}

// showKeys prints a section header giving the number of keys and then
// the keys themselves, one per line
func showKeys(desc string, keys []string) {
	fmt.Printf("%d %s %s\n",
		len(keys), desc, english.Plural("key", len(keys)))

	for _, key := range keys {
		fmt.Printf("%s- %s\n", strings.Repeat(" ", keyIndent), key)
	}
}

// showKeyTable renders the keys as a table with a column for each root
// showing the extensions the key has there
func (prog *prog) showKeyTable(idx keyIndex,
	paired, srcOnly, incOnly []string,
) {
	keys := make([]string, 0, len(paired)+len(srcOnly)+len(incOnly))
	keys = append(keys, paired...)
	keys = append(keys, srcOnly...)
	keys = append(keys, incOnly...)
	sort.Strings(keys)

	type tableRow struct {
		key, srcExts, incExts string
	}

	keyW, extW := len("Key"), len(noExts)

	rows := make([]tableRow, 0, len(keys))

	for _, key := range keys {
		r := tableRow{
			key:     key,
			srcExts: extList(idx[key], srcRootName),
			incExts: extList(idx[key], incRootName),
		}
		keyW = max(keyW, len(r.key))
		extW = max(extW, len(r.srcExts), len(r.incExts))
		rows = append(rows, r)
	}

	h, err := col.NewHeader()
	if err != nil {
		log.Fatal("couldn't create the table header: ", err)
	}

	rpt := col.NewReportOrPanic(h, os.Stdout,
		col.New(colfmt.String{W: uint(keyW)}, "Key"),
		col.New(colfmt.String{W: uint(extW)}, srcRootName),
		col.New(colfmt.String{W: uint(extW)}, incRootName))

	for _, r := range rows {
		err := rpt.PrintRow(r.key, r.srcExts, r.incExts)
		if err != nil {
			log.Fatal("couldn't print the table row: ", err)
		}
	}
}

// extList returns a comma-separated list of the extensions the key has
// under the named root
func extList(entries []fileEntry, rootName string) string {
	var exts []string

	for _, fe := range entries {
		if fe.root == rootName {
			exts = append(exts, fe.ext)
		}
	}

	if len(exts) == 0 {
		return noExts
	}

	return strings.Join(exts, ",")
}

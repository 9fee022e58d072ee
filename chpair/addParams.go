package main

import (
	"errors"
	"slices"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

const (
	paramNameAction  = "action"
	paramNamePattern = "pattern"
	paramNameKey     = "key"
	paramNameTable   = "table"

	paramNameFrom   = "from"
	paramNameTo     = "to"
	paramNameDir    = "dir"
	paramNameNoName = "no-name"
	paramNameFuzzy  = "fuzzy"

	paramNameConfirm = "confirm"

	paramNameSrcExt = "src-ext"
	paramNameIncExt = "inc-ext"

	paramNameBaseDir = "base-dir"
	paramNameSrcRoot = "src-root"
	paramNameIncRoot = "inc-root"
)

const (
	paramGroupMove   = "cmd-move"
	paramGroupDelete = "cmd-delete"
	paramGroupCreate = "cmd-create"
	paramGroupDirs   = "cmd-dirs"
)

// addParams adds the action parameters to the passed ParamSet
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.Add(paramNameAction,
			psetter.Enum[string]{
				Value: &prog.action,
				AllowedVals: psetter.AllowedVals[string]{
					listAction:   "show every key",
					searchAction: "show the keys matching the pattern",
					moveAction:   "move the files of a key to a new key",
					deleteAction: "delete the files of a key",
					createAction: "create a stub source/header pair",
				},
				AllowInvalidInitialValue: true,
			},
			"the action to perform",
			param.AltNames("a"),
			param.Attrs(param.CommandLineOnly),
		)

		ps.Add(paramNamePattern,
			psetter.String[string]{
				Value: &prog.pattern,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the pattern to search for. Any key containing the pattern,"+
				" ignoring case, is shown.",
			param.AltNames("p"),
			param.Attrs(param.CommandLineOnly),
		)

		ps.Add(paramNameKey,
			psetter.String[string]{
				Value: &prog.key,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the key to operate on",
			param.AltNames("k"),
			param.Attrs(param.CommandLineOnly),
		)

		ps.Add(paramNameTable, psetter.Bool{Value: &prog.asTable},
			"show the keys in a table with a column for each root"+
				" giving the extensions the key has there",
			param.Attrs(param.CommandLineOnly),
			param.SeeAlso(paramNameAction),
		)

		return nil
	}
}

// addMoveParams adds the parameters of the move action
func addMoveParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(paramGroupMove, "parameters of the move action")

		ps.Add(paramNameFrom,
			psetter.String[string]{
				Value: &prog.fromKey,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the key to move the files from",
			param.GroupName(paramGroupMove),
			param.Attrs(param.CommandLineOnly),
		)

		ps.Add(paramNameTo,
			psetter.String[string]{
				Value: &prog.toKey,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the key or directory to move the files to",
			param.GroupName(paramGroupMove),
			param.Attrs(param.CommandLineOnly),
		)

		ps.Add(paramNameDir, psetter.Bool{Value: &prog.dirMode},
			"treat the target as a directory and move each file's whole"+
				" key path under it",
			param.GroupName(paramGroupMove),
			param.Attrs(param.CommandLineOnly),
			param.SeeAlso(paramNameNoName),
		)

		ps.Add(paramNameNoName, psetter.Bool{Value: &prog.noName},
			"treat the target as a directory and move the files into it"+
				" keeping their own names",
			param.GroupName(paramGroupMove),
			param.Attrs(param.CommandLineOnly),
			param.SeeAlso(paramNameDir),
		)

		ps.Add(paramNameFuzzy, psetter.Bool{Value: &prog.fuzzy},
			"treat the key as a pattern and operate on every key"+
				" containing it, ignoring case. When moving, the"+
				" "+paramNameNoName+" parameter must also be given;"+
				" moving several keys to a single name would make the"+
				" moved files overwrite one another.",
			param.GroupName(paramGroupMove),
			param.Attrs(param.CommandLineOnly),
			param.SeeAlso(paramNameNoName),
		)

		return nil
	}
}

// addDeleteParams adds the parameters of the delete action
func addDeleteParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(paramGroupDelete, "parameters of the delete action")

		ps.Add(paramNameConfirm, psetter.Bool{Value: &prog.confirm},
			"ask before deleting the files of each key",
			param.GroupName(paramGroupDelete),
			param.Attrs(param.CommandLineOnly),
		)

		return nil
	}
}

// addCreateParams adds the parameters of the create action
func addCreateParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(paramGroupCreate, "parameters of the create action")

		ps.Add(paramNameSrcExt,
			psetter.String[string]{
				Value: &prog.srcExt,
				Checks: []check.String{
					check.StringHasPrefix[string]("."),
					check.StringLength[string](check.ValGT(1)),
				},
			},
			"the extension of the source file to create",
			param.GroupName(paramGroupCreate),
		)

		ps.Add(paramNameIncExt,
			psetter.String[string]{
				Value: &prog.incExt,
				Checks: []check.String{
					check.StringHasPrefix[string]("."),
					check.StringLength[string](check.ValGT(1)),
				},
			},
			"the extension of the header file to create",
			param.GroupName(paramGroupCreate),
		)

		return nil
	}
}

// addDirParams adds the parameters giving the directories to work in
func addDirParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(paramGroupDirs, "parameters giving the directories"+
			" holding the files")

		ps.Add(paramNameBaseDir,
			psetter.Pathname{
				Value:       &prog.baseDir,
				Expectation: filecheck.DirExists(),
			},
			"the directory holding the two file trees",
			param.GroupName(paramGroupDirs),
		)

		ps.Add(paramNameSrcRoot,
			psetter.String[string]{
				Value: &prog.srcRoot,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the tree holding the source files, relative to the base"+
				" directory",
			param.GroupName(paramGroupDirs),
			param.Attrs(param.DontShowInStdUsage),
		)

		ps.Add(paramNameIncRoot,
			psetter.String[string]{
				Value: &prog.incRoot,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the tree holding the header files, relative to the base"+
				" directory",
			param.GroupName(paramGroupDirs),
			param.Attrs(param.DontShowInStdUsage),
		)

		return nil
	}
}

// addFinalChecks adds the checks to be made after parsing is complete
func addFinalChecks(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddFinalCheck(prog.checkParams)
		return nil
	}
}

// checkParams checks that the action has the parameters it needs and that
// no parameter has been given which its action doesn't use
func (prog *prog) checkParams() error {
	switch prog.action {
	case searchAction:
		if prog.pattern == "" {
			return errors.New("the search action needs a pattern")
		}
	case moveAction:
		if prog.fromKey == "" || prog.toKey == "" {
			return errors.New("the move action needs both the " +
				paramNameFrom + " and " + paramNameTo + " parameters")
		}
	case deleteAction, createAction:
		if prog.key == "" {
			return errors.New(
				"the " + prog.action + " action needs a key")
		}
	}

	return prog.checkParamUse()
}

// checkParamUse reports parameters given for actions that don't use them
func (prog *prog) checkParamUse() error {
	var badParams []string

	forActions := func(given bool, name string, actions ...string) {
		if given && !slices.Contains(actions, prog.action) {
			badParams = append(badParams, "-"+name)
		}
	}

	forActions(prog.pattern != "", paramNamePattern, searchAction)
	forActions(prog.key != "", paramNameKey, deleteAction, createAction)
	forActions(prog.fromKey != "", paramNameFrom, moveAction)
	forActions(prog.toKey != "", paramNameTo, moveAction)
	forActions(prog.dirMode, paramNameDir, moveAction)
	forActions(prog.noName, paramNameNoName, moveAction)
	forActions(prog.fuzzy, paramNameFuzzy, moveAction, deleteAction)
	forActions(prog.confirm, paramNameConfirm, deleteAction)
	forActions(prog.asTable, paramNameTable, listAction, searchAction)

	if len(badParams) == 0 {
		return nil
	}

	badParamList := english.Join(badParams, ", ", " and ")

	if prog.action == "" {
		return errors.New("no action has been chosen: " +
			badParamList + " cannot be used without one")
	}

	return errors.New(badParamList + " cannot be used with the " +
		prog.action + " action")
}

package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// paramOptFuncs returns the param-set option functions used to populate
// the parameter set
func paramOptFuncs(prog *prog) []param.PSetOptFunc {
	return []param.PSetOptFunc{
		verbose.AddParams,
		verbose.AddTimingParams(prog.dbgStack),
		versionparams.AddParams,

		addParams(prog),
		addMoveParams(prog),
		addDeleteParams(prog),
		addCreateParams(prog),
		addDirParams(prog),
		addFinalChecks(prog),

		addExamples,

		SetGlobalConfigFile,
		SetConfigFile,

		param.SetProgramDescription(
			"This manages paired source and header files kept in two" +
				" parallel directory trees (by default: " + dfltSrcRoot +
				" and " + dfltIncRoot + "). Files are identified by" +
				" their key: the path relative to the tree root with" +
				" the extension removed. A key with files under both" +
				" roots is a pair and the files of a key are moved," +
				" deleted and created together, keeping the source and" +
				" its header in step. The command to perform can be" +
				" given as the first argument."),
	}
}

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(paramOptFuncs(prog)...)
}

package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples adds some examples of how the program might be used
func addExamples(ps *param.PSet) error {
	ps.AddExample("chpair list",
		"This will show every key found under the two roots, grouped"+
			" into paired, source-only and header-only keys.")
	ps.AddExample("chpair search uart",
		"This will show the keys containing 'uart', ignoring case.")
	ps.AddExample("chpair move -from uart -to drivers/uart",
		"This will move Core/Src/uart.c to Core/Src/drivers/uart.c and"+
			" Core/Inc/uart.h to Core/Inc/drivers/uart.h.")
	ps.AddExample("chpair move -from drivers -to legacy -fuzzy -no-name",
		"This will move the files of every key containing 'drivers'"+
			" into the legacy directory under their own names.")
	ps.AddExample("chpair delete uart -confirm",
		"This will delete the source and header files of the uart key,"+
			" asking first.")
	ps.AddExample("chpair create foo/bar",
		"This will create a stub Core/Src/foo/bar.c and a stub"+
			" Core/Inc/foo/bar.h with an include guard of FOO_BAR_H.")

	return nil
}

/*
The chpair command manages paired source and header files kept in two
parallel directory trees, such as the Core/Src and Core/Inc trees of an
STM32CubeMX project. Each file is identified by its key: the path of the
file relative to its tree root with the extension removed. A key with
files under both roots is a pair and all the files of a key are listed,
moved, deleted and created together, so renaming a module keeps its source
and header in step.

The command to run is given as the first argument:

	list              show every key, grouped by where its files were found
	search <pattern>  show keys containing the pattern (ignoring case)
	move              move the files of a key to a new key
	delete <key>      delete the files of a key
	create <key>      create a stub source/header pair

With no command a summary of the commands is printed. Each command can be
followed by parameters; see the help for the full list.

The file index is rebuilt from the trees on every run; nothing is cached
between runs.
*/
package main

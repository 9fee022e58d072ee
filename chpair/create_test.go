package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

func TestGuardName(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		key      string
		incExt   string
		expGuard string
	}{
		{
			ID:       testhelper.MkID("plain name"),
			key:      "uart",
			incExt:   ".h",
			expGuard: "UART_H",
		},
		{
			ID:       testhelper.MkID("name with a directory"),
			key:      "foo/bar",
			incExt:   ".h",
			expGuard: "FOO_BAR_H",
		},
		{
			ID:       testhelper.MkID("punctuation and spaces"),
			key:      "drv-io/a b",
			incExt:   ".h",
			expGuard: "DRV_IO_A_B_H",
		},
		{
			ID:       testhelper.MkID("backslash separators"),
			key:      `win\path`,
			incExt:   ".h",
			expGuard: "WIN_PATH_H",
		},
		{
			ID:       testhelper.MkID("digits survive"),
			key:      "tim2",
			incExt:   ".h",
			expGuard: "TIM2_H",
		},
		{
			ID:       testhelper.MkID("other extension"),
			key:      "uart",
			incExt:   ".hpp",
			expGuard: "UART_HPP",
		},
	}

	for _, tc := range testCases {
		testhelper.DiffString(t, tc.IDStr(), "guard",
			guardName(tc.key, tc.incExt), tc.expGuard)
	}
}

func TestCreateKey(t *testing.T) {
	srcDir := filepath.Join("testdata", "crSrc")
	incDir := filepath.Join("testdata", "crInc")

	testCases := []struct {
		testhelper.ID
		srcFiles    []string
		incFiles    []string
		setProg     func(*prog)
		pre, post   func() error
		expStdout   string
		expContents map[string]string
	}{
		{
			ID: testhelper.MkID("new pair"),
			setProg: func(prog *prog) {
				prog.key = filepath.Join("foo", "bar")
			},
			expStdout: "created " +
				filepath.Join(srcDir, "foo", "bar.c") + "\n" +
				"created " +
				filepath.Join(incDir, "foo", "bar.h") + "\n" +
				"Summary\n" +
				"      2 created\n",
			expContents: map[string]string{
				filepath.Join(srcDir, "foo", "bar.c"): "#include \"bar.h\"\n" +
					"\n" +
					"int main(void)\n" +
					"{\n" +
					"\treturn 0;\n" +
					"}\n",
				filepath.Join(incDir, "foo", "bar.h"): "#ifndef FOO_BAR_H\n" +
					"#define FOO_BAR_H\n" +
					"\n" +
					"#endif /* FOO_BAR_H */\n",
			},
		},
		{
			ID:       testhelper.MkID("existing source is kept"),
			srcFiles: []string{filepath.Join("foo", "bar.c")},
			setProg: func(prog *prog) {
				prog.key = filepath.Join("foo", "bar")
			},
			expStdout: "skipping \"" +
				filepath.Join(srcDir, "foo", "bar.c") +
				"\": it already exists\n" +
				"created " +
				filepath.Join(incDir, "foo", "bar.h") + "\n" +
				"Summary\n" +
				"      1 created\n" +
				"      1 skipped\n",
			expContents: map[string]string{
				filepath.Join(srcDir, "foo", "bar.c"): "x\n",
				filepath.Join(incDir, "foo", "bar.h"): "#ifndef FOO_BAR_H\n" +
					"#define FOO_BAR_H\n" +
					"\n" +
					"#endif /* FOO_BAR_H */\n",
			},
		},
		{
			ID: testhelper.MkID("custom extensions"),
			setProg: func(prog *prog) {
				prog.key = "uart"
				prog.srcExt = ".cpp"
				prog.incExt = ".hpp"
			},
			expStdout: "created " +
				filepath.Join(srcDir, "uart.cpp") + "\n" +
				"created " +
				filepath.Join(incDir, "uart.hpp") + "\n" +
				"Summary\n" +
				"      2 created\n",
			expContents: map[string]string{
				filepath.Join(srcDir, "uart.cpp"): "#include \"uart.hpp\"\n" +
					"\n" +
					"int main(void)\n" +
					"{\n" +
					"\treturn 0;\n" +
					"}\n",
				filepath.Join(incDir, "uart.hpp"): "#ifndef UART_HPP\n" +
					"#define UART_HPP\n" +
					"\n" +
					"#endif /* UART_HPP */\n",
			},
		},
		{
			ID: testhelper.MkID("unwritable source root"),
			setProg: func(prog *prog) {
				prog.key = "x"
			},
			pre: func() error {
				return os.Chmod(srcDir, 0o500)
			},
			post: func() error {
				return os.Chmod(srcDir, 0o700)
			},
			expStdout: "couldn't create the file:" +
				" open " + filepath.Join(srcDir, "x.c") +
				": permission denied\n" +
				"created " + filepath.Join(incDir, "x.h") + "\n" +
				"Summary\n" +
				"      1 created\n" +
				"      1 failure\n",
			expContents: map[string]string{
				filepath.Join(incDir, "x.h"): "#ifndef X_H\n" +
					"#define X_H\n" +
					"\n" +
					"#endif /* X_H */\n",
			},
		},
	}

	for _, tc := range testCases {
		if err := mkTestFiles(srcDir, tc.srcFiles...); err != nil {
			t.Log(tc.IDStr())
			t.Fatal("\t: cannot make the source tree: ", err)
		}

		if err := mkTestFiles(incDir, tc.incFiles...); err != nil {
			t.Log(tc.IDStr())
			t.Fatal("\t: cannot make the header tree: ", err)
		}

		if tc.pre != nil {
			if err := tc.pre(); err != nil {
				t.Log(tc.IDStr())
				t.Fatal("\t: test setup failed: ", err)
			}
		}

		prog := testProg("crSrc", "crInc")
		tc.setProg(prog)

		fakeIO := setupFakeIO(t, prog, tc.IDStr(), "")

		prog.createKey()

		stdout, stderr := getFakeIO(t, tc.IDStr(), fakeIO)

		testhelper.DiffString(t, tc.IDStr(), "stdout", stdout, tc.expStdout)
		testhelper.DiffString(t, tc.IDStr(), "stderr", stderr, "")

		if tc.post != nil {
			if err := tc.post(); err != nil {
				t.Log(tc.IDStr())
				t.Fatal("\t: test cleanup failed: ", err)
			}
		}

		for name, expContent := range tc.expContents {
			content, err := os.ReadFile(name)
			if err != nil {
				t.Log(tc.IDStr())
				t.Fatal("\t: cannot read ", name, ": ", err)
			}

			testhelper.DiffString(t, tc.IDStr(), "content of "+name,
				string(content), expContent)
		}

		rmTestTrees(t, tc.IDStr(), srcDir, incDir)
	}
}

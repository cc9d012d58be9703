// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"dwarf/internal/compiler"
	"dwarf/internal/types"
)

const PROMPT = ">> "

// Start reads one item per line from in, and writes its canonical form,
// any diagnostics, and the lowered IR when model is non-nil. It returns
// when in is exhausted.
func Start(in io.Reader, out io.Writer, model types.Catalog) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		unit := compiler.Check("repl", line, model)
		fmt.Fprint(out, unit.Report())
		if unit.Failed() || unit.Result.File == nil {
			continue
		}

		fmt.Fprint(out, unit.Result.File.String())
		fmt.Fprint(out, unit.Program())
	}
}

package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	runArgs  = cmds.Var[string]("run")
	evalArgs = cmds.Var[string]("-e")
	tapFlag  = cmds.Switch("-tap")
	dumpFlag = cmds.Switch("-dump-tape")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		tapeLength configs.TapeLength,
		tap debugs.Tap,
	) {

		ctx, _ := newSpan(ctx, "")

		source, name := getSource()
		logger.DebugContext(ctx, "source",
			"name", name,
			"len", len(source),
		)

		program := bflang.Parse(bflang.Lex(source))

		vm := bflang.NewVM(program, &bflang.Options{
			TapeLength: int(tapeLength),
		})

		t0 := time.Now()
		if err := vm.Run(); err != nil {
			ce(logs.WrapSpan(ctx, err))
		}

		logger.InfoContext(ctx, "run completed",
			"name", name,
			"duration", time.Since(t0),
		)

		if *dumpFlag {
			type cellValue struct {
				Index int
				Value byte
			}
			var nonZero []cellValue
			for i, cell := range vm.Tape() {
				if cell != 0 {
					nonZero = append(nonZero, cellValue{
						Index: i,
						Value: cell,
					})
				}
			}
			logger.InfoContext(ctx, "tape",
				"pointer", vm.Pointer(),
				"cells", nonZero,
			)
		}

		if *tapFlag {
			tap(ctx, "final state", map[string]any{
				"tape":    vm.Tape(),
				"pointer": vm.Pointer(),
				"program": program,
				"source":  source,
			})
		}

	})

}

func getSource() (source string, name string) {
	if *runArgs != "" {
		content, err := os.ReadFile(*runArgs)
		ce(err)
		return string(content), *runArgs
	}

	if *evalArgs != "" {
		return *evalArgs, "-e"
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		content, err := io.ReadAll(os.Stdin)
		ce(err)
		return string(content), "stdin"
	}

	os.Stderr.WriteString("no program: use run <path>, -e <code>, or pipe source to stdin\n")
	os.Exit(-1)
	return
}

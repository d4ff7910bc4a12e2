package configs

import (
	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/vars"
)

// TapeLength is the number of cells given to each program run. The
// flag wins over the config file; the default is the interpreter's
// standard 30000.
type TapeLength int

var tapeLengthFlag = cmds.Var[int]("-tape-length")

func (Module) TapeLength(
	loader Loader,
) TapeLength {
	if n := vars.FirstNonZero(
		*tapeLengthFlag,
		First[int](loader, "tape_length"),
	); n > 0 {
		return TapeLength(n)
	}
	return TapeLength(bflang.DefaultTapeLength)
}

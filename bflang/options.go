package bflang

import "io"

type Options struct {
	Input      io.Reader // if nil, default to os.Stdin
	Output     io.Writer // if nil, default to os.Stdout
	TapeLength int       // if zero, default to DefaultTapeLength
}

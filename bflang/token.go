package bflang

type Token uint8

const (
	TokenInvalid Token = iota
	TokenIncrement
	TokenDecrement
	TokenMoveRight
	TokenMoveLeft
	TokenOutput
	TokenInput
	TokenLoopBegin
	TokenLoopEnd
)

func (t Token) String() string {
	switch t {
	case TokenIncrement:
		return "+"
	case TokenDecrement:
		return "-"
	case TokenMoveRight:
		return ">"
	case TokenMoveLeft:
		return "<"
	case TokenOutput:
		return "."
	case TokenInput:
		return ","
	case TokenLoopBegin:
		return "["
	case TokenLoopEnd:
		return "]"
	}
	return "?"
}

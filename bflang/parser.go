package bflang

// Parse builds the instruction tree from tokens. Adjacent increment and
// decrement tokens fold into a single OpAdd, adjacent move tokens into
// a single OpShift. Folding is local and greedy: an I/O token, a loop
// boundary, or a token of another class always starts a new
// instruction.
//
// Bracket mismatches are not errors. A loop-end with no open
// loop-begin terminates the current region, an unterminated loop-begin
// consumes the rest of the tokens into its body.
func Parse(tokens []Token) []Instruction {
	instructions, _ := parseRegion(tokens)
	return instructions
}

func parseRegion(tokens []Token) (instructions []Instruction, consumed int) {
	index := 0
	for index < len(tokens) {
		switch token := tokens[index]; token {

		case TokenIncrement, TokenDecrement:
			delta := 1
			if token == TokenDecrement {
				delta = -1
			}
			if n := len(instructions); n > 0 && instructions[n-1].Op == OpAdd {
				instructions[n-1].Arg += delta
			} else {
				instructions = append(instructions, Instruction{
					Op:  OpAdd,
					Arg: delta,
				})
			}

		case TokenMoveRight, TokenMoveLeft:
			offset := 1
			if token == TokenMoveLeft {
				offset = -1
			}
			if n := len(instructions); n > 0 && instructions[n-1].Op == OpShift {
				instructions[n-1].Arg += offset
			} else {
				instructions = append(instructions, Instruction{
					Op:  OpShift,
					Arg: offset,
				})
			}

		case TokenOutput:
			instructions = append(instructions, Instruction{
				Op: OpOutput,
			})

		case TokenInput:
			instructions = append(instructions, Instruction{
				Op: OpInput,
			})

		case TokenLoopBegin:
			body, n := parseRegion(tokens[index+1:])
			instructions = append(instructions, Instruction{
				Op:   OpLoop,
				Body: body,
			})
			index += n

		case TokenLoopEnd:
			// consumed count includes the closing token
			return instructions, index + 1

		}
		index++
	}
	return instructions, index
}

package bfcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type position struct {
	line   int
	column int
}

// Compile reads the whole source from r and returns its instructions.
// name is only used in error messages.
func Compile(name string, r io.Reader) ([]Instruction, error) {
	br, ok := r.(io.RuneReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var code []Instruction
	var opens []int
	var openPositions []position
	pos := position{line: 1}

	for {
		c, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		if c == '\n' {
			pos.line++
			pos.column = 0
			continue
		}
		pos.column++

		kind, ok := KindOf(c)
		if !ok {
			continue
		}

		switch kind {

		case LoopStart:
			opens = append(opens, len(code))
			openPositions = append(openPositions, pos)
			code = append(code, Instruction{
				Kind:   LoopStart,
				Repeat: 1,
			})

		case LoopEnd:
			if len(opens) == 0 {
				return nil, &SyntaxError{
					Name:   name,
					Line:   pos.line,
					Column: pos.column,
					Err:    ErrUnmatchedClose,
				}
			}
			start := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			openPositions = openPositions[:len(openPositions)-1]
			end := len(code)
			code[start].Target = end + 1
			code = append(code, Instruction{
				Kind:   LoopEnd,
				Repeat: 1,
				Target: start + 1,
			})

		default:
			if n := len(code); n > 0 && code[n-1].Kind == kind {
				code[n-1].Repeat++
				continue
			}
			code = append(code, Instruction{
				Kind:   kind,
				Repeat: 1,
			})

		}
	}

	if len(opens) > 0 {
		p := openPositions[len(openPositions)-1]
		return nil, &SyntaxError{
			Name:   name,
			Line:   p.line,
			Column: p.column,
			Err:    ErrUnmatchedOpen,
		}
	}

	return code, nil
}

func CompileString(src string) ([]Instruction, error) {
	return Compile("", strings.NewReader(src))
}

package bfcode

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes one line per instruction: index, kind, repeat count, and the jump target of loop markers.
func Dump(w io.Writer, code []Instruction) error {
	bw := bufio.NewWriter(w)
	for i, inst := range code {
		var err error
		switch inst.Kind {
		case LoopStart, LoopEnd:
			_, err = fmt.Fprintf(bw, "%6d  %c  %-16s x%-6d -> %d\n", i, inst.Kind.Symbol(), inst.Kind, inst.Repeat, inst.Target)
		default:
			_, err = fmt.Fprintf(bw, "%6d  %c  %-16s x%d\n", i, inst.Kind.Symbol(), inst.Kind, inst.Repeat)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

package bfcode

import "fmt"

// Instruction is one compiled operation.
//
// Repeat is how many times the primitive effect applies; it is always 1 for loop markers.
// For LoopStart, Target is the index just past the matching LoopEnd.
// For LoopEnd, Target is the index just past the matching LoopStart.
type Instruction struct {
	Kind   Kind
	Repeat int
	Target int
}

func (i Instruction) String() string {
	switch i.Kind {
	case LoopStart, LoopEnd:
		return fmt.Sprintf("%s -> %d", i.Kind, i.Target)
	}
	return fmt.Sprintf("%s x%d", i.Kind, i.Repeat)
}

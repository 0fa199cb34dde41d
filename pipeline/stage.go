package pipeline

// Stage is a pipeline stage.
type Stage int

//go:generate go tool stringer -linecomment -type=Stage
const (
	STAGE_FETCH_INSTRUCTION   = Stage(0) // FI
	STAGE_DECODE_INSTRUCTION  = Stage(1) // DI
	STAGE_CALC_OPERANDS       = Stage(2) // CO
	STAGE_FETCH_OPERANDS      = Stage(3) // FO
	STAGE_EXECUTE_INSTRUCTION = Stage(4) // EI
	STAGE_WRITE_OPERANDS      = Stage(5) // WO
)

const (
	STAGE_COUNT = 6  // Number of pipeline stages.
	SLOT_EMPTY  = -1 // Snapshot marker for an unoccupied stage.
)

// Stages returns all of the stages, in pipeline order.
func Stages() (stages [STAGE_COUNT]Stage) {
	for n := range stages {
		stages[n] = Stage(n)
	}
	return
}

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/pipesim/cpu"
	"github.com/ezrec/pipesim/pipeline"
)

func TestPipeline(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}

	snap := pipeline.EmptySnapshot()
	snap[pipeline.STAGE_FETCH_INSTRUCTION] = 1
	snap[pipeline.STAGE_DECODE_INSTRUCTION] = 0

	err := Pipeline(buf, []pipeline.Snapshot{pipeline.EmptySnapshot(), snap})
	assert.NoError(err)

	expected := []string{
		"      FI     DI     CO     FO     EI     WO",
		"                                           ",
		"       1      0                            ",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), buf.String())
}

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}

	regs := cpu.NewRegisters(64)
	regs.Value[cpu.REG_CMP] = -2

	err := Registers(buf, regs.All())
	assert.NoError(err)

	expected := []string{
		"",
		"+--------------------------------------------+",
		"|    ebp    eax   temp  temp2    esp    cmp  |",
		"|      0      0      0      0     64     -2  |",
		"+--------------------------------------------+",
		"",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), buf.String())
}

func TestJump(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}

	assert.NoError(Jump(buf, 3))
	assert.Equal("==> Go to line: 3\n", buf.String())
}

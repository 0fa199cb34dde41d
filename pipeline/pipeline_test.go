package pipeline_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/pipesim/cpu"
	"github.com/ezrec/pipesim/pipeline"
)

func program(mnemonics ...string) (insts []cpu.Instruction) {
	for n, text := range mnemonics {
		inst := cpu.Instruction{Id: n, LineNo: n + 1}
		switch text {
		case "incl":
			inst.Mnemonic = "incl"
			inst.Operands = []string{"eax"}
		case "jmp":
			inst.Mnemonic = "jmp"
			inst.Operands = []string{"top"}
		default:
			inst.Mnemonic = text
		}
		insts = append(insts, inst)
	}
	return
}

var _ = Describe("Pipeline", func() {
	var (
		regs *cpu.Registers
		pipe *pipeline.Pipeline
	)

	BeforeEach(func() {
		regs = cpu.NewRegisters(0)
		pipe = pipeline.NewPipeline()
	})

	Describe("NewPipeline", func() {
		It("should create an empty pipeline", func() {
			Expect(pipe.Len()).To(Equal(0))
			Expect(pipe.Cycles()).To(Equal(0))
			Expect(pipe.Snapshot()).To(Equal(pipeline.EmptySnapshot()))
		})
	})

	Describe("Stage", func() {
		It("should name the stages in pipeline order", func() {
			var names []string
			for _, stage := range pipeline.Stages() {
				names = append(names, stage.String())
			}
			Expect(names).To(Equal([]string{"FI", "DI", "CO", "FO", "EI", "WO"}))
		})
	})

	Describe("Advance", func() {
		Context("straight line program", func() {
			var insts []cpu.Instruction

			BeforeEach(func() {
				insts = program("incl", "incl", "incl", "incl")
			})

			run := func(check func(cycle int)) {
				for cycle := range len(insts) + pipeline.STAGE_COUNT - 1 {
					if cycle < len(insts) {
						pipe.Admit(&insts[cycle])
					}
					sig, err := pipe.Advance(regs)
					Expect(err).NotTo(HaveOccurred())
					Expect(sig.Kind).To(Equal(cpu.SIGNAL_NONE))
					if check != nil {
						check(cycle)
					}
				}
			}

			It("should place instruction i in stage s on cycle i+s", func() {
				run(nil)

				history := pipe.History()
				Expect(history).To(HaveLen(len(insts) + 5))
				for cycle, snap := range history {
					for stage, id := range snap {
						expected := cycle - stage
						if expected < 0 || expected >= len(insts) {
							expected = pipeline.SLOT_EMPTY
						}
						Expect(id).To(Equal(expected), "cycle %d stage %d", cycle, stage)
					}
				}
			})

			It("should execute instruction i on cycle i+4", func() {
				run(func(cycle int) {
					executed := cycle - 3
					if executed < 0 {
						executed = 0
					}
					if executed > len(insts) {
						executed = len(insts)
					}
					Expect(regs.Value[cpu.REG_EAX]).To(Equal(executed), "cycle %d", cycle)
				})
			})

			It("should retire instruction i on cycle i+5, in order", func() {
				run(func(cycle int) {
					retired := cycle - 4
					if retired < 0 {
						retired = 0
					}
					Expect(pipe.Retired).To(Equal(retired), "cycle %d", cycle)
					slots := pipe.Slots()
					if len(slots) > 0 {
						Expect(slots[0].Instruction.Id).To(Equal(retired))
					}
				})
				Expect(pipe.Len()).To(Equal(0))
				Expect(pipe.Cycles()).To(Equal(len(insts) + 5))
			})

			It("should advance every slot exactly one stage per cycle", func() {
				last := map[int]pipeline.Stage{}
				run(func(cycle int) {
					fetching := 0
					for _, slot := range pipe.Slots() {
						id := slot.Instruction.Id
						prev, ok := last[id]
						if ok {
							Expect(slot.Stage).To(Equal(prev + 1))
						} else {
							Expect(slot.Stage).To(Equal(pipeline.STAGE_DECODE_INSTRUCTION))
						}
						last[id] = slot.Stage
						if slot.Stage == pipeline.STAGE_DECODE_INSTRUCTION {
							fetching++
						}
					}
					Expect(fetching).To(BeNumerically("<=", 1))
					Expect(pipe.Len()).To(BeNumerically("<=", pipeline.STAGE_COUNT))
				})
			})
		})

		It("should return the signal of the executed instruction", func() {
			insts := program("nop", "jmp")
			var sigs []cpu.Signal
			for cycle := range 6 {
				if cycle < len(insts) {
					pipe.Admit(&insts[cycle])
				}
				sig, err := pipe.Advance(regs)
				Expect(err).NotTo(HaveOccurred())
				sigs = append(sigs, sig)
			}

			Expect(sigs[4]).To(Equal(cpu.Signal{}))
			Expect(sigs[5]).To(Equal(cpu.Jump("top")))
		})

		It("should return execution errors", func() {
			inst := cpu.Instruction{Mnemonic: "incl", Operands: []string{"rax"}}
			pipe.Admit(&inst)

			var err error
			for range 5 {
				_, err = pipe.Advance(regs)
			}

			Expect(err).To(Equal(cpu.ErrRegisterUnknown("rax")))
		})
	})

	Describe("Flush", func() {
		It("should do nothing on an empty pipeline", func() {
			Expect(pipe.Flush()).To(Equal(0))
			Expect(pipe.Flushed).To(Equal(0))
		})

		It("should discard every slot below the write stage", func() {
			insts := program("incl", "jmp", "incl", "incl", "incl", "incl")
			var sig cpu.Signal
			for cycle := range 6 {
				pipe.Admit(&insts[cycle])
				var err error
				sig, err = pipe.Advance(regs)
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(sig).To(Equal(cpu.Jump("top")))
			Expect(pipe.Len()).To(Equal(5))

			Expect(pipe.Flush()).To(Equal(4))
			Expect(pipe.Flushed).To(Equal(4))

			slots := pipe.Slots()
			Expect(slots).To(HaveLen(1))
			Expect(slots[0].Instruction.Id).To(Equal(1))
			Expect(slots[0].Stage).To(Equal(pipeline.STAGE_WRITE_OPERANDS))

			_, err := pipe.Advance(regs)
			Expect(err).NotTo(HaveOccurred())
			Expect(pipe.Len()).To(Equal(0))
			Expect(pipe.Retired).To(Equal(2))
			Expect(regs.Value[cpu.REG_EAX]).To(Equal(1))
		})
	})

	Describe("Reset", func() {
		It("should clear slots, history and statistics", func() {
			insts := program("incl", "incl")
			pipe.Admit(&insts[0])
			_, _ = pipe.Advance(regs)
			pipe.Admit(&insts[1])
			_, _ = pipe.Advance(regs)
			pipe.Flush()

			pipe.Reset()

			Expect(pipe.Len()).To(Equal(0))
			Expect(pipe.History()).To(BeEmpty())
			Expect(pipe.Flushed).To(Equal(0))
			Expect(pipe.Snapshot()).To(Equal(pipeline.EmptySnapshot()))
		})
	})
})

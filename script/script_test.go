package script

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/apbrom/rom"
)

var _ = Describe("Script", func() {
	var s *Script

	BeforeEach(func() {
		s = &Script{}
	})

	Describe("Run", func() {
		It("should compile the UART transmit program", func() {
			comps, err := s.Run("testdata/apb_uart_tx.star", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(comps).To(HaveLen(1))

			comp := comps[0]
			Expect(comp.Image.Words).To(Equal([]rom.Word{
				0x1000000004,
				0x1100040004,
				0x21000000a2,
				0x1100040008,
				0x1200000040,
				0x22000000a2,
				0x3000000001,
				0x4001000000,
				0x5000000005,
				0x0000000000,
			}))
			Expect(comp.Symbols).To(Equal([]rom.Symbol{{Name: "loop", Address: 5}}))
			Expect(comp.Warnings).To(BeEmpty())
		})

		It("should accept a bare code list and top level builtins", func() {
			comps, err := s.Run("bare.star", `
mif_of_compilation(compile_program([
    (op_wait(3), "top:"),
    (op_branch("loop", 2), ("top",)),
    (op_finish(),),
]))
`)
			Expect(err).NotTo(HaveOccurred())
			Expect(comps).To(HaveLen(1))
			Expect(comps[0].Image.Words).To(Equal([]rom.Word{
				0x4000000003,
				0x5300020000,
				0x0000000000,
			}))
		})

		It("should expose the compilation to the script", func() {
			comps, err := s.Run("inspect.star", `
c = compile_program({"code": [(op_wait(1), ("start:",)), (op_finish(),)]})

def check():
    if len(c) != 2:
        fail("len", len(c))
    if c.depth != 2:
        fail("depth", c.depth)
    if c.width != 40:
        fail("width", c.width)
    if c[0] != 0x4000000001:
        fail("word", c[0])
    if c.symbols != {"start": 0}:
        fail("symbols", c.symbols)

check()
`)
			Expect(err).NotTo(HaveOccurred())
			Expect(comps).To(BeEmpty())
		})

		It("should return compilations in call order", func() {
			comps, err := s.Run("order.star", `
a = compile_program([(op_wait(1),), (op_finish(),)])
b = compile_program([(op_finish(),)])
mif_of_compilation(b)
mif_of_compilation(a)
`)
			Expect(err).NotTo(HaveOccurred())
			Expect(comps).To(HaveLen(2))
			Expect(comps[0].Image.Depth()).To(Equal(1))
			Expect(comps[1].Image.Depth()).To(Equal(2))
		})

		It("should record a missing finish as a warning", func() {
			comps, err := s.Run("nofinish.star", `mif_of_compilation(compile_program([(op_wait(1),)]))`)
			Expect(err).NotTo(HaveOccurred())
			Expect(comps).To(HaveLen(1))
			Expect(comps[0].Warnings).To(HaveLen(1))
			Expect(comps[0].Warnings[0]).To(MatchError(rom.ErrMissingFinish))
		})

		It("should predeclare defined integers", func() {
			Expect(s.Predefine("DELAY", 100)).To(Succeed())
			comps, err := s.Run("define.star", `mif_of_compilation(compile_program([(op_wait(DELAY),), (op_finish(),)]))`)
			Expect(err).NotTo(HaveOccurred())
			Expect(comps[0].Image.Words[0]).To(Equal(rom.Word(0x4000000064)))
		})

		It("should refuse a predefine that shadows a builtin", func() {
			Expect(s.Predefine("op_wait", 1)).To(MatchError(ErrPredefineShadow))
			Expect(s.Predefine("apb_rom", 1)).To(MatchError(ErrPredefineShadow))
		})

		It("should honor the assembler depth limit", func() {
			s.Assembler.MaxDepth = 1
			_, err := s.Run("deep.star", `compile_program([(op_wait(1),), (op_finish(),)])`)
			Expect(err).To(MatchError(rom.ErrDepthExceeded))
		})
	})

	DescribeTable("script errors",
		func(src string, expected error) {
			_, err := s.Run("bad.star", src)
			Expect(err).To(MatchError(expected))

			var es ErrScript
			Expect(errors.As(err, &es)).To(BeTrue())
			Expect(es.Filename).To(Equal("bad.star"))
		},
		Entry("unknown register", `op_set("flags", 1)`, rom.ErrUnknownKind),
		Entry("unknown request", `op_req("poke", 1)`, rom.ErrUnknownKind),
		Entry("unknown alu op", `op_alu("mul", 1)`, rom.ErrUnknownKind),
		Entry("unknown branch", `op_branch("bgt", 0)`, rom.ErrUnknownKind),
		Entry("immediate overflow", `op_set("address", 1 << 32)`, rom.ErrOperandOverflow),
		Entry("huge immediate", `op_req("read", 1 << 80)`, rom.ErrOperandOverflow),
		Entry("cycles overflow", `op_wait(1 << 32)`, rom.ErrOperandOverflow),
		Entry("branch operand overflow", `op_branch("bne", 1 << 16)`, rom.ErrOperandOverflow),
		Entry("negative value", `op_wait(-1)`, ErrNegative),
		Entry("non-integer value", `op_alu("add", "1")`, ErrNotInteger),
		Entry("missing code", `compile_program({"text": []})`, ErrCodeMissing),
		Entry("not iterable", `compile_program(3)`, ErrCodeMissing),
		Entry("bare instruction", `compile_program([op_finish()])`, ErrEntryInvalid),
		Entry("long entry", `compile_program([(op_finish(), (), ())])`, ErrEntryInvalid),
		Entry("non-string label", `compile_program([(op_finish(), (1,))])`, ErrEntryInvalid),
		Entry("not an instruction", `compile_program([(1,)])`, ErrNotInstruction),
		Entry("empty definition", `compile_program([(op_wait(1), (":",)), (op_finish(),)])`, rom.ErrLabelInvalid),
		Entry("empty reference", `compile_program([(op_branch("branch"), ("",)), (op_finish(),)])`, rom.ErrLabelInvalid),
		Entry("bare empty definition", `compile_program([(op_finish(), ":")])`, rom.ErrLabelInvalid),
		Entry("label with spaces", `compile_program([(op_finish(), ("a b:",))])`, rom.ErrLabelInvalid),
		Entry("empty then named definition", `compile_program([(op_finish(), (":", "a:"))])`, rom.ErrLabelInvalid),
		Entry("two definitions", `compile_program([(op_finish(), ("a:", "b:"))])`, ErrLabelMultiple),
		Entry("undefined label", `compile_program([(op_branch("branch"), ("nowhere",)), (op_finish(),)])`, rom.ErrUndefinedLabel),
		Entry("duplicate label", `compile_program([(op_wait(1), ("a:",)), (op_finish(), ("a:",))])`, rom.ErrDuplicateLabel),
		Entry("branch without target", `compile_program([(op_branch("branch"),)])`, rom.ErrTargetMissing),
		Entry("target on non-branch", `compile_program([(op_wait(1), ("a",))])`, rom.ErrTargetInvalid),
		Entry("emit a non-compilation", `mif_of_compilation(1)`, ErrNotCompilation),
	)

	Describe("Compile", func() {
		It("should return the single emitted compilation", func() {
			comp, err := s.Compile("testdata/apb_uart_tx.star", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(comp.Image.Depth()).To(Equal(10))
		})

		It("should fail when nothing is emitted", func() {
			_, err := s.Compile("none.star", `x = 1`)
			Expect(err).To(MatchError(ErrNoImage))
		})

		It("should fail when more than one image is emitted", func() {
			_, err := s.Compile("two.star", `
c = compile_program([(op_finish(),)])
mif_of_compilation(c)
mif_of_compilation(c)
`)
			Expect(err).To(MatchError(ErrMultipleImages))
		})
	})
})

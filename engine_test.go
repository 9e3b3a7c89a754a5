package trac

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interpTestCase is a chainable test builder, adapted from the teacher's
// vmTestCase idiom: a program/input feeds an *Interpreter, Run drives it to
// completion, and expectations assert on the captured sink output.
type interpTestCase struct {
	name    string
	opts    []Option
	timeout time.Duration
}

func interpTest(name string) interpTestCase {
	return interpTestCase{name: name}
}

// withProgram sets the initial program directly, bypassing rs — used for
// scenarios that hand the engine a whole program text to scan, the way
// spec.md §8's concrete scenarios are phrased.
func (it interpTestCase) withProgram(program string) interpTestCase {
	it.opts = append(it.opts, WithInitialProgram(program))
	return it
}

// withSource feeds s to the character source for rc/rs to read, leaving the
// default initial program (print the result of reading one record) in
// place.
func (it interpTestCase) withSource(s string) interpTestCase {
	it.opts = append(it.opts, WithInput(strings.NewReader(s)))
	return it
}

func (it interpTestCase) withOptions(opts ...Option) interpTestCase {
	it.opts = append(it.opts, opts...)
	return it
}

func (it interpTestCase) withTimeout(d time.Duration) interpTestCase {
	it.timeout = d
	return it
}

// run builds the interpreter, runs it to completion, and returns it plus
// the captured sink text for the caller to assert on.
func (it interpTestCase) run(t *testing.T) (*Interpreter, string) {
	t.Helper()

	var out strings.Builder
	opts := append([]Option{WithOutput(&out)}, it.opts...)
	interp := New(opts...)

	timeout := it.timeout
	if timeout == 0 {
		timeout = time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	require.NoError(t, interp.Run(ctx))
	return interp, out.String()
}

func (it interpTestCase) expectOutput(t *testing.T, want string) {
	t.Helper()
	_, got := it.run(t)
	assert.Equal(t, want, got, "case %q", it.name)
}

// --- spec.md §8 universal properties ---

// Text outside any call is copied into the neutral buffer and reaches the
// sink only as an argument of ps, so these two cases inspect that buffer.
func TestLiteralProgramIsCopiedVerbatim(t *testing.T) {
	interp, _ := interpTest("no calls, no controls").
		withProgram("hello, world").
		run(t)
	assert.Equal(t, "hello, world", string(interp.neutral))
}

func TestControlCharactersAreDeleted(t *testing.T) {
	interp, _ := interpTest("tabs/newlines/meta dropped").
		withProgram("a\tb\nc\rd'e").
		run(t)
	assert.Equal(t, "abcde", string(interp.neutral))
}

func TestDefineThenCallLiteral(t *testing.T) {
	interpTest("ds then cl round-trips a body with no calls").
		withProgram("#(ps,#(ds,N,hello))#(ps,#(cl,N))").
		expectOutput(t, "hello")
}

func TestSegmentThenCallSubstitutes(t *testing.T) {
	interpTest("ss then cl substitutes every occurrence of a pattern with the same marker").
		withProgram("#(ds,N,aXbXc)#(ss,N,X)#(ps,#(cl,N,1,2))").
		expectOutput(t, "a1b1c")
}

func TestArithmeticIdentity(t *testing.T) {
	interpTest("ad A (su 0 A) is 0").
		withProgram("#(ps,#(ad,42,#(su,0,42)))").
		expectOutput(t, "0")
}

func TestBooleanComplementIsInvolution(t *testing.T) {
	interpTest("bc bc S is the boolean suffix of S").
		withProgram("#(ps,#(bc,#(bc,abc0110)))").
		expectOutput(t, "0110")
}

func TestRotationComposesAdditively(t *testing.T) {
	interpTest("br a (br b S) == br (a+b) S").
		withProgram("#(ps,#(br,1,#(br,2,0110)))").
		expectOutput(t, "0011")
	interpTest("direct br (a+b) S").
		withProgram("#(ps,#(br,3,0110))").
		expectOutput(t, "0011")
}

func TestRadixRoundTrip(t *testing.T) {
	interpTest("cr to base16 then back to base10").
		withProgram("#(ps,##(cr,F,9,##(cr,9,F,255)))").
		expectOutput(t, "255")
}

// --- spec.md §8 concrete end-to-end scenarios ---

func TestScenario1DefaultProgramReadsOneRecord(t *testing.T) {
	_, out := interpTest("abc'xyz via default initial program").
		withSource("abc'xyz").
		run(t)
	assert.Equal(t, "abc", out)
}

func TestScenario2ProtectiveParens(t *testing.T) {
	interpTest("protective parens pass through verbatim").
		withProgram("#(ps,(ABC))'").
		expectOutput(t, "ABC")
}

func TestScenario3ActiveRSIsRescanned(t *testing.T) {
	_, out := interpTest("rs delivered active re-enters the scanner").
		withProgram("#(ps,] )#(ps,#(rs))").
		withSource("XYZ'").
		run(t)
	assert.Equal(t, "] XYZ", out)
}

func TestScenario4FactorialViaRecursiveForm(t *testing.T) {
	program := "#(ds,Factorial,(#(eq,X,1,1,(#(ml,X,#(cl,Factorial,#(su,X,1)))))))" +
		"#(ss,Factorial,X)" +
		"#(ps,#(cl,Factorial,50))"
	interpTest("50! via cl recursion").
		withProgram(program).
		expectOutput(t, "30414093201713378043612608166064768844377641568960512000000000000")
}

func TestScenario5NavigationOverflowDeliversActive(t *testing.T) {
	program := "#(ds,F,abXcdYef)#(ss,F,X,Y)" +
		"#(ps,#(cn,F,3,ZZ))#(ps,#(cn,F,2,ZZ))##(cn,F,10,ZZ)"
	interpTest("cn overflow fallback is delivered active, not printed").
		withProgram(program).
		expectOutput(t, "abcde")
}

func TestScenario6FormShadowsPrimitive(t *testing.T) {
	interpTest("a form named eq shadows the eq primitive").
		withProgram("#(ds,eq,FORM)'#(ps,#(eq))'").
		expectOutput(t, "FORM")
}

func TestScenario7RadixConvert(t *testing.T) {
	interpTest("decimal 1025 in hex").
		withProgram("##(cr,9,F,1025)").
		withProgram("#(ps,##(cr,9,F,1025))").
		expectOutput(t, "401")
}

func TestScenario8BooleanOps(t *testing.T) {
	interpTest("bu").
		withProgram("#(ps,##(bu,abc0100,11))").
		expectOutput(t, "0111")
	interpTest("bs negative shifts right").
		withProgram("#(ps,##(bs,-1,abc0100))").
		expectOutput(t, "0010")
	interpTest("br rotates").
		withProgram("#(ps,##(br,1,abc0100))").
		expectOutput(t, "1000")
}

// --- dispatcher and delivery edge cases ---

func TestUnknownCalleeIsEmpty(t *testing.T) {
	interpTest("no form, no primitive").
		withProgram("#(ps,(before)#(nope)(after))").
		expectOutput(t, "beforeafter")
}

func TestRecordAbandonmentOnUnbalancedParen(t *testing.T) {
	interp, out := interpTest("unbalanced protective paren abandons").
		withProgram("#(ps,(unterminated").
		run(t)
	assert.Equal(t, "", out)
	assert.Empty(t, interp.frames)
	assert.Empty(t, interp.neutral)
}

func TestRecordAbandonmentOnStrayCloseParen(t *testing.T) {
	interp, out := interpTest("stray close paren abandons").
		withProgram(")#(ps,(unreached))").
		run(t)
	assert.Equal(t, "", out)
	assert.Empty(t, interp.frames)
}

func TestHaltPrimitiveStopsCleanly(t *testing.T) {
	interpTest("hl halts without error").
		withProgram("#(ps,(before))#(hl)#(ps,(after))").
		expectOutput(t, "before")
}

func TestMetaCharacterChangeAffectsRS(t *testing.T) {
	_, out := interpTest("cm changes the record terminator used by rs").
		withProgram("#(cm,;)#(ps,##(rs))").
		withSource("one;two'").
		run(t)
	assert.Equal(t, "one", out)
}

func TestMetaCharacterEmptyArgumentLeavesItUnchanged(t *testing.T) {
	_, out := interpTest("cm with no argument does not set meta to an error rune").
		withProgram("#(cm)#(ps,##(rs))").
		withSource("abc'xyz").
		run(t)
	assert.Equal(t, "abc", out)
}

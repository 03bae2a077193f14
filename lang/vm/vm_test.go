package vm_test

import (
	"bytes"
	"testing"

	"github.com/mna/lumen/lang/value"
	"github.com/mna/lumen/lang/vm"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, source string) (stdout, stderr string, result vm.Result) {
	t.Helper()
	var out, errBuf bytes.Buffer
	m := vm.New(vm.DefaultConfig(), value.NewHeap(), &out, &errBuf)
	result = m.Interpret(source)
	return out.String(), errBuf.String(), result
}

func TestArithmeticPrecedence(t *testing.T) {
	out, _, result := run(t, "print 1 + 2 * 3;")
	require.Equal(t, vm.OK, result)
	require.Equal(t, "7\n", out)
}

func TestStringInterningEquality(t *testing.T) {
	out, _, result := run(t, `var a = "hi"; var b = "hi"; print a == b;`)
	require.Equal(t, vm.OK, result)
	require.Equal(t, "true\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, _, result := run(t, "var n = 0; while (n < 3) { print n; n = n + 1; }")
	require.Equal(t, vm.OK, result)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestRecursiveFibonacci(t *testing.T) {
	out, _, result := run(t, "fun fib(n) { if (n < 2) return n; return fib(n-1) + fib(n-2); } print fib(10);")
	require.Equal(t, vm.OK, result)
	require.Equal(t, "55\n", out)
}

func TestOrShortCircuitReturnsTruthyOperand(t *testing.T) {
	out, _, result := run(t, `if (false or "x") print "ok"; else print "no";`)
	require.Equal(t, vm.OK, result)
	require.Equal(t, "ok\n", out)
}

func TestUndefinedGlobalIsRuntimeError(t *testing.T) {
	out, errOut, result := run(t, "print undefined;")
	require.Equal(t, vm.RuntimeError, result)
	require.Equal(t, "", out)
	require.Equal(t, "Undefined variable undefined\n[line 1] in script\n", errOut)
}

func TestCompileErrorNeverReachesDispatchLoop(t *testing.T) {
	_, errOut, result := run(t, "var = 1;")
	require.Equal(t, vm.CompileError, result)
	require.NotEmpty(t, errOut)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, errOut, result := run(t, "fun f(a, b) { return a + b; } f(1);")
	require.Equal(t, vm.RuntimeError, result)
	require.Contains(t, errOut, "Expected 2 arguments but got 1.")
}

func TestSelfInitializationInLocalScopeIsCompileError(t *testing.T) {
	_, errOut, result := run(t, "{ var a = a; }")
	require.Equal(t, vm.CompileError, result)
	require.Contains(t, errOut, "Can't read local variable in it's own initializer.")
}

func TestDoubleNegationIsTruthiness(t *testing.T) {
	out, _, result := run(t, `print !!0; print !!""; print !!nil; print !!false;`)
	require.Equal(t, vm.OK, result)
	require.Equal(t, "true\ntrue\nfalse\nfalse\n", out)
}

func TestSelfEqualityForNonNaNValues(t *testing.T) {
	out, _, result := run(t, `var x = 5; print x == x; print "s" == "s";`)
	require.Equal(t, vm.OK, result)
	require.Equal(t, "true\ntrue\n", out)
}

func TestCompilingSameSourceTwiceIsIdempotent(t *testing.T) {
	source := "print 1 + 2 * 3;"
	out1, _, result1 := run(t, source)
	out2, _, result2 := run(t, source)
	require.Equal(t, result1, result2)
	require.Equal(t, out1, out2)
}

func TestStringConcatenation(t *testing.T) {
	out, _, result := run(t, `print "foo" + "bar";`)
	require.Equal(t, vm.OK, result)
	require.Equal(t, "foobar\n", out)
}

func TestCallingNonFunctionIsRuntimeError(t *testing.T) {
	_, errOut, result := run(t, "var x = 1; x();")
	require.Equal(t, vm.RuntimeError, result)
	require.Contains(t, errOut, "Can only call functions and classes.")
}

func TestNativeClockIsCallable(t *testing.T) {
	var out, errBuf bytes.Buffer
	m := vm.New(vm.DefaultConfig(), value.NewHeap(), &out, &errBuf)
	m.DefineClock()
	result := m.Interpret("print clock() > 0;")
	require.Equal(t, vm.OK, result)
	require.Equal(t, "true\n", out.String())
}

package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.Define("-n", Func(func(int) {}).Arg("count").Alias("-count").Desc("N"))
	executor.DefinePositional(Func(func(string) {}).Arg("file").Desc("source"))
	executor.Define("-m", Func(func(string) {}).Arg("mode"))
	executor.Describe("-m", "M")

	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	usage := buf.String()

	for _, expected := range []string{
		"-h, help, -help, --help\tprint this usage",
		"foo\tFOO",
		"  bar\tBAR",
		"  baz\tBAZ",
		"    qux\tQUX",
		"-n, -count <count>\tN",
		"<file>\tsource",
		"-m <mode>\tM",
	} {
		if !strings.Contains(usage, expected+"\n") {
			t.Fatalf("missing %q in:\n%s", expected, usage)
		}
	}
	if strings.Count(usage, "print this usage") != 1 {
		t.Fatalf("aliases printed twice:\n%s", usage)
	}
}

// internal/cliutil/cliutil_test.go
package cliutil

import (
	"flag"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.Bool("flag", false, "")
	fs.String("name", "", "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := newFS()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"a.csv", "--name", "x", "b.csv", "--flag", "-"})
	if !reflect.DeepEqual(flags, []string{"--name", "x", "--flag"}) {
		t.Errorf("flags: %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"a.csv", "b.csv", "-"}) {
		t.Errorf("positionals: %v", pos)
	}
}

func TestDoubleDashEndsFlags(t *testing.T) {
	fs := newFS()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"--flag", "--", "--name", "x"})
	if !reflect.DeepEqual(flags, []string{"--flag"}) {
		t.Errorf("flags: %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"--name", "x"}) {
		t.Errorf("positionals: %v", pos)
	}
}

func TestEqualsFormNeedsNoLookahead(t *testing.T) {
	fs := newFS()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"--name=x", "a.csv"})
	if !reflect.DeepEqual(flags, []string{"--name=x"}) {
		t.Errorf("flags: %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"a.csv"}) {
		t.Errorf("positionals: %v", pos)
	}
}

func TestExpandPositionals(t *testing.T) {
	out, err := ExpandPositionals([]string{"-", "plain.csv"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, []string{"-", "plain.csv"}) {
		t.Errorf("got %v", out)
	}
	if _, err := ExpandPositionals([]string{"nope-*.csv"}); err == nil {
		t.Error("unmatched glob should error")
	}
}

package main

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/zehlchen/zigma/internal/registry"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		s, t string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"same", "same", 0},
		{"kitten", "sitting", 3},
		{"encode", "decode", 2},
		{"help", "hlep", 2},
	}

	for _, tc := range testCases {
		qt.Assert(t, qt.Equals(levenshtein(tc.s, tc.t), tc.want),
			qt.Commentf("levenshtein(%q, %q)", tc.s, tc.t))
	}
}

func TestResolveCommand(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		want  string
	}{
		{"encode", "encode"},
		{"decode", "decode"},
		{"enc", "encode"},
		{"e", "encode"},
		{"d", "decode"},
		{"c", "check"},
		{"v", "version"},
		{"h", "help"},
		{"encodr", "encode"},
		{"chekc", "check"},
		{"hlep", "help"},
	}

	cmds := commandTable()
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := resolveCommand(cmds, tc.input)
			qt.Assert(t, qt.IsNotNil(got))
			qt.Assert(t, qt.Equals(got.name, tc.want))
		})
	}
}

func TestParseOperands(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	parseOperands(reg, []string{"in=plain.txt", "in.fmt=64", "bare", "in=other.txt"})

	var got [][2]string
	reg.ForEach(func(k, v string) { got = append(got, [2]string{k, v}) })

	want := [][2]string{
		{"in", "other.txt"},
		{"in.fmt", "64"},
		{"bare", ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parsed operands (-want +got):\n%s", diff)
	}
}

func TestCommandDefaults(t *testing.T) {
	t.Parallel()

	cmds := commandTable()

	defaults := func(name string) map[string]string {
		for _, c := range cmds {
			if c.name == name {
				m := make(map[string]string)
				for _, kv := range c.defaults {
					m[kv[0]] = kv[1]
				}
				return m
			}
		}
		t.Fatalf("no command %q", name)
		return nil
	}

	enc := defaults("encode")
	qt.Assert(t, qt.Equals(enc["in.fmt"], "256"))
	qt.Assert(t, qt.Equals(enc["out.fmt"], "64"))
	qt.Assert(t, qt.Equals(enc["key.fmt"], "256"))

	dec := defaults("decode")
	qt.Assert(t, qt.Equals(dec["in.fmt"], "64"))
	qt.Assert(t, qt.Equals(dec["out.fmt"], "256"))

	chk := defaults("check")
	qt.Assert(t, qt.Equals(chk["in.fmt"], "256"))
	qt.Assert(t, qt.Equals(chk["out.fmt"], "16"))
}

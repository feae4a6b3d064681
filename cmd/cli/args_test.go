package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeArgs(t *testing.T) {
	flags := newRootCmd(io.Discard, io.Discard).Flags()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"NoArgs", nil, nil},
		{"Unchanged", []string{"5", "out.txt", "-q"}, []string{"5", "out.txt", "-q"}},
		{"LeadingNegative", []string{"-5", "out.txt", "-q"}, []string{"-q", "--", "-5", "out.txt"}},
		{"FlagValueKept", []string{"--progress", "none", "-2"}, []string{"--progress", "none", "--", "-2"}},
		{"NegativeFlagValue", []string{"--progress-every", "-3", "out.txt"}, []string{"--progress-every", "-3", "out.txt"}},
		{"ShorthandValue", []string{"-c", "cfg.yaml", "-1"}, []string{"-c", "cfg.yaml", "--", "-1"}},
		{"InlineValue", []string{"--seed=4", "-1", "out.txt"}, []string{"--seed=4", "--", "-1", "out.txt"}},
		{"ExistingTerminator", []string{"-1", "--", "-q"}, []string{"--", "-1", "-q"}},
		{"NotANumber", []string{"-5K", "out.txt"}, []string{"-5K", "out.txt"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, normalizeArgs(flags, tc.args))
		})
	}
}

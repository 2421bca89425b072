package node

import (
	"errors"
	"slices"
	"testing"

	"github.com/kayabaNerve/zephyr-verify-bulletproofs/consensus"
)

func TestFormatOutcome(t *testing.T) {
	cases := []struct {
		name string
		in   Outcome
		want []string
	}{
		{
			name: "valid",
			in:   Outcome{TxHash: "aa", Valid: true},
			want: []string{"aa has valid Bulletproofs: true"},
		},
		{
			name: "invalid_no_fix",
			in: Outcome{TxHash: "bb", Perturbations: []consensus.Perturbation{
				{OutputIndex: 0}, {OutputIndex: 1},
			}},
			want: []string{"bb has valid Bulletproofs: false"},
		},
		{
			name: "invalid_second_output",
			in: Outcome{TxHash: "cc", Perturbations: []consensus.Perturbation{
				{OutputIndex: 0}, {OutputIndex: 1, Valid: true},
			}},
			want: []string{
				"cc has valid Bulletproofs: false",
				"cc with an additional 7 added to output 1 has valid Bulletproofs: true",
			},
		},
		{
			name: "error",
			in:   Outcome{TxHash: "dd", Err: errors.New("boom")},
			want: []string{"dd could not be analysed: boom"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatOutcome(tc.in, 7); !slices.Equal(got, tc.want) {
				t.Fatalf("got=%q want=%q", got, tc.want)
			}
		})
	}
}

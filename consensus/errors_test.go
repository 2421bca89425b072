package consensus

import (
	"errors"
	"testing"
)

func TestTxError_ErrorFormatting(t *testing.T) {
	var e *TxError
	if got := e.Error(); got != "<nil>" {
		t.Fatalf("nil receiver: %q", got)
	}

	cases := []struct {
		err  *TxError
		want string
	}{
		{&TxError{Code: TX_ERR_TRUNCATED}, "TX_ERR_TRUNCATED"},
		{&TxError{Code: TX_ERR_TRUNCATED, Msg: "bad"}, "TX_ERR_TRUNCATED: bad"},
		{&TxError{Code: TX_ERR_TRUNCATED, Field: "version"}, "TX_ERR_TRUNCATED: version"},
		{&TxError{Code: TX_ERR_STRUCTURAL_MISMATCH, Field: "version", Msg: "expected 3, got 4"}, "TX_ERR_STRUCTURAL_MISMATCH: version: expected 3, got 4"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}

func TestMismatchCarriesField(t *testing.T) {
	err := mismatch("rct.type", RCT_TYPE_BULLETPROOF_PLUS, 7)
	var te *TxError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TxError, got %T", err)
	}
	if te.Code != TX_ERR_STRUCTURAL_MISMATCH || te.Field != "rct.type" || te.Msg != "expected 6, got 7" {
		t.Fatalf("unexpected fields: %#v", te)
	}
}

func TestWithFieldKeepsExistingField(t *testing.T) {
	err := withField(fielderr(TX_ERR_INVALID_POINT, "inner", "x"), "outer")
	if te := err.(*TxError); te.Field != "inner" {
		t.Fatalf("field=%q, want inner", te.Field)
	}
	err = withField(txerr(TX_ERR_TRUNCATED, "eof"), "outer")
	if te := err.(*TxError); te.Field != "outer" || te.Code != TX_ERR_TRUNCATED {
		t.Fatalf("unexpected: %#v", te)
	}
	plain := errors.New("plain")
	if withField(plain, "x") != plain {
		t.Fatalf("non-TxError should pass through")
	}
}

package consensus

import "fmt"

type ErrorCode string

const (
	TX_ERR_TRUNCATED             ErrorCode = "TX_ERR_TRUNCATED"
	TX_ERR_MALFORMED_VARINT      ErrorCode = "TX_ERR_MALFORMED_VARINT"
	TX_ERR_INVALID_POINT         ErrorCode = "TX_ERR_INVALID_POINT"
	TX_ERR_INVALID_SCALAR        ErrorCode = "TX_ERR_INVALID_SCALAR"
	TX_ERR_STRUCTURAL_MISMATCH   ErrorCode = "TX_ERR_STRUCTURAL_MISMATCH"
	TX_ERR_TRAILING_BYTES        ErrorCode = "TX_ERR_TRAILING_BYTES"
	TX_ERR_UNSUPPORTED_FORMAT    ErrorCode = "TX_ERR_UNSUPPORTED_FORMAT"
	TX_ERR_COMMITMENT_ARITHMETIC ErrorCode = "TX_ERR_COMMITMENT_ARITHMETIC"
)

// TxError is the single error type produced while decoding or analysing a
// transaction. Field names the wire field that failed, when known.
type TxError struct {
	Code  ErrorCode
	Field string
	Msg   string
}

func (e *TxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Field == "" && e.Msg == "":
		return string(e.Code)
	case e.Field == "":
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	case e.Msg == "":
		return fmt.Sprintf("%s: %s", e.Code, e.Field)
	default:
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Msg)
	}
}

func txerr(code ErrorCode, msg string) error {
	return &TxError{Code: code, Msg: msg}
}

func fielderr(code ErrorCode, field string, msg string) error {
	return &TxError{Code: code, Field: field, Msg: msg}
}

func mismatch(field string, expected, actual any) error {
	return &TxError{
		Code:  TX_ERR_STRUCTURAL_MISMATCH,
		Field: field,
		Msg:   fmt.Sprintf("expected %v, got %v", expected, actual),
	}
}

// withField annotates a primitive read error with the field being decoded.
func withField(err error, field string) error {
	if te, ok := err.(*TxError); ok && te.Field == "" {
		return &TxError{Code: te.Code, Field: field, Msg: te.Msg}
	}
	return err
}

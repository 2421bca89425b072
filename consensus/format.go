package consensus

import "fmt"

// FormatVersion selects a transaction wire shape. Only the v3 confidential
// transfer without conversion is implemented; new shapes get a new value and
// their own linear parser.
type FormatVersion uint8

const (
	FormatConversionV3 FormatVersion = TX_VERSION_CONVERSION
)

func (f FormatVersion) String() string {
	switch f {
	case FormatConversionV3:
		return "conversion-v3"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// ParseTxFormat decodes b using the parser registered for f.
func ParseTxFormat(b []byte, f FormatVersion) (*Tx, error) {
	switch f {
	case FormatConversionV3:
		return ParseTx(b)
	default:
		return nil, txerr(TX_ERR_UNSUPPORTED_FORMAT, f.String())
	}
}

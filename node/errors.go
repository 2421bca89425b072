package node

type FetchErrorCode string

const (
	FETCH_ERR_INCOMPLETE FetchErrorCode = "FETCH_ERR_INCOMPLETE"
	FETCH_ERR_INTEGRITY  FetchErrorCode = "FETCH_ERR_INTEGRITY"
)

// FetchError fails a whole batch. It is raised before any payload is decoded.
type FetchError struct {
	Code FetchErrorCode
	Msg  string
}

func (e *FetchError) Error() string {
	if e.Msg == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Msg
}

func fetchErr(code FetchErrorCode, msg string) error {
	return &FetchError{Code: code, Msg: msg}
}

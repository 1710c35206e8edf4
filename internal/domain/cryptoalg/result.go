package cryptoalg

// Result is the all-or-nothing outcome of a public operation.
// Callers must check Success before using Data.
type Result struct {
	Data    []byte
	Success bool
	Error   string
}

// NewResult builds a Result from an operation's return values.
// A non-nil err always produces an empty, unsuccessful Result.
func NewResult(data []byte, err error) Result {
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	if data == nil {
		data = []byte{}
	}
	return Result{Data: data, Success: true}
}

// Text returns Data as a string.
func (r Result) Text() string {
	return string(r.Data)
}

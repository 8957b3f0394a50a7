package httperr

import "errors"

// BusinessError is a rule violation the client can act on. Two values with
// the same Code compare equal, so errors.Is works against ErrBusiness(code).
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// CodeOf returns the code of the first BusinessError in err's chain.
func CodeOf(err error) (string, bool) {
	var be BusinessError
	if !errors.As(err, &be) {
		return "", false
	}
	return be.Code, true
}

func IsBusiness(err error, code string) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}

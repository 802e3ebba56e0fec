package utils

import (
	"errors"
	"fmt"
)

var ErrRecovered = errors.New("recovered from panic")

func RecoverWithError(err *error) {
	if rv := recover(); rv != nil {
		*err = fmt.Errorf("%w: %v", ErrRecovered, rv)
	}
}

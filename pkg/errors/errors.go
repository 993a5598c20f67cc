package errors

import (
	"fmt"
	"path"
	"runtime"
)

// WrapPathErr annotates err with the file:line of the caller so a failure
// deep in a job loop can be traced without a stack trace.
func WrapPathErr(err error) error {
	if err == nil {
		return nil
	}

	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return err
	}

	return fmt.Errorf("%s:%d: %w", path.Base(file), line, err)
}

package sync

import "github.com/zwang271/mltl-inference/pkg/safe"

// Go same to safe.Go.
func Go(fn func(), errfns ...func(error)) {
	safe.Go(fn, errfns...)
}

package safe_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/repogw/pkg/utils/safe"
)

type fakeCloser struct {
	err    error
	closed bool
}

func (x *fakeCloser) Close() error {
	x.closed = true
	return x.err
}

func TestClose(t *testing.T) {
	t.Run("closes the resource", func(t *testing.T) {
		c := &fakeCloser{}
		safe.Close(c)
		if !c.closed {
			t.Error("resource was not closed")
		}
	})

	t.Run("close error does not panic", func(t *testing.T) {
		safe.Close(&fakeCloser{err: errors.New("close failed")})
	})

	t.Run("nil closer does not panic", func(t *testing.T) {
		safe.Close(nil)
	})
}

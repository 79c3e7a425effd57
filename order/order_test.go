package order

import (
	"testing"

	"github.com/ericr/stalmarck/tribool"
)

func TestChoose(t *testing.T) {
	assigns := []tribool.Tribool{tribool.Undef, tribool.True, tribool.Undef, tribool.False, tribool.Undef}
	o := New(assigns)

	if v := o.Choose(); v != 2 {
		t.Fatalf("TestChoose() failed, got: %d", v)
	}
	assigns[2] = tribool.False

	if v := o.Choose(); v != 4 {
		t.Fatalf("TestChoose() failed, got: %d", v)
	}
}

func TestChooseExhausted(t *testing.T) {
	assigns := []tribool.Tribool{tribool.Undef, tribool.True, tribool.False}
	o := New(assigns)

	if v := o.Choose(); v != 0 {
		t.Fatalf("TestChooseExhausted() failed, got: %d", v)
	}
}

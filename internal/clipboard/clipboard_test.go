package clipboard

import (
	"errors"
	"testing"
)

func stubClipboard(t *testing.T, initErr error) *[]byte {
	t.Helper()
	var buf []byte
	origWrite, origRead, origInit := writeFn, readFn, initFn
	writeFn = func(b []byte) { buf = append([]byte(nil), b...) }
	readFn = func() []byte { return buf }
	initFn = func() error { return initErr }
	initialized = false
	t.Cleanup(func() {
		writeFn, readFn, initFn = origWrite, origRead, origInit
		initialized = false
	})
	return &buf
}

func TestWriteThenRead(t *testing.T) {
	stubClipboard(t, nil)

	if err := WriteText("last reply"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	got, err := ReadText()
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if got != "last reply" {
		t.Errorf("ReadText() = %q", got)
	}
}

func TestInitFailure(t *testing.T) {
	buf := stubClipboard(t, errors.New("no display"))

	if err := WriteText("x"); err == nil {
		t.Fatal("WriteText() should fail when the clipboard cannot initialize")
	}
	if len(*buf) != 0 {
		t.Error("nothing should be written after a failed init")
	}
}

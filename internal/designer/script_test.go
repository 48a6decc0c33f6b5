package designer

import (
	"errors"
	"io"
	"strings"
	"testing"
)

const script = `
# square, then close
click 100 100
click 300 100   # second vertex

click 300 300
click 102 98
key ctrl+s

click 10 10 right
key space
quit
`

func TestScriptSourceBatches(t *testing.T) {
	src := NewScriptSource(strings.NewReader(script))
	var sizes []int
	var all []Event
	for {
		b, err := src.Poll()
		if len(b) > 0 {
			sizes = append(sizes, len(b))
			all = append(all, b...)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Poll: %v", err)
		}
	}
	if want := []int{2, 3, 3}; len(sizes) != len(want) || sizes[0] != 2 || sizes[1] != 3 || sizes[2] != 3 {
		t.Fatalf("batch sizes = %v, want %v", sizes, want)
	}
	if all[0] != Press(pos(100, 100), ButtonPrimary) {
		t.Errorf("first event = %+v", all[0])
	}
	if all[4] != KeyDown('s', ModCtrl) {
		t.Errorf("save event = %+v", all[4])
	}
	if all[5] != Press(pos(10, 10), ButtonSecondary) {
		t.Errorf("right click = %+v", all[5])
	}
	if all[6] != KeyDown(KeySpace, 0) || all[7] != Quit() {
		t.Errorf("tail = %+v", all[6:])
	}
}

func TestScriptSourceErrors(t *testing.T) {
	for _, in := range []string{
		"click 1",
		"click a 2",
		"click 1 2 thumb",
		"key",
		"key hyper+q",
		"jump 1 2",
	} {
		_, err := NewScriptSource(strings.NewReader(in)).Poll()
		if err == nil || errors.Is(err, io.EOF) {
			t.Errorf("%q: err = %v", in, err)
		}
	}
}

func TestScriptDrivesDesigner(t *testing.T) {
	d, _ := newTestDesigner(t)
	src := NewScriptSource(strings.NewReader("click 100 100\nclick 300 100\nclick 102 98\n\nquit\n\nclick 5 5\n"))
	if err := d.Start(src); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if n := len(d.Lines()); n != 2 {
		t.Errorf("got %d lines, want 2", n)
	}
	if _, _, active := d.Chain(); active {
		t.Error("events after quit were dispatched")
	}
}

// core/rt/windows_test.go
package rt

import "testing"

func TestSlidingWindows(t *testing.T) {
	ws := SlidingWindows(30, 7)
	if len(ws) != 22 {
		t.Fatalf("expected 22 windows, got %d", len(ws))
	}
	if ws[0] != (Window{Start: 2, End: 9}) {
		t.Errorf("first window %+v", ws[0])
	}
	if last := ws[len(ws)-1]; last != (Window{Start: 23, End: 30}) {
		t.Errorf("last window %+v", last)
	}
	for _, w := range ws {
		if w.Width() != 7 {
			t.Fatalf("window %+v has width %d", w, w.Width())
		}
	}
}

func TestSlidingWindowsTooShort(t *testing.T) {
	if ws := SlidingWindows(8, 7); ws != nil {
		t.Errorf("8-day series cannot hold a 7-day window with warm-up, got %v", ws)
	}
	if ws := SlidingWindows(9, 7); len(ws) != 1 {
		t.Errorf("9-day series should yield exactly one window, got %v", ws)
	}
	if ws := SlidingWindows(20, 0); ws != nil {
		t.Errorf("zero width should yield nothing, got %v", ws)
	}
}

func TestValidateWindows(t *testing.T) {
	cases := []struct {
		name string
		ws   []Window
	}{
		{"empty", nil},
		{"inverted", []Window{{Start: 5, End: 5}}},
		{"starts at day zero", []Window{{Start: 0, End: 7}}},
		{"past the end", []Window{{Start: 2, End: 31}}},
	}
	for _, c := range cases {
		if err := validateWindows(c.ws, 30); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
	if err := validateWindows([]Window{{Start: 1, End: 30}}, 30); err != nil {
		t.Errorf("full-span window should be valid: %v", err)
	}
}

package input

import (
	"fmt"
	"image"
	"reflect"
	"testing"

	"github.com/milk9111/tileview/viewport"
)

type recorder struct {
	events []string
}

func (r *recorder) attach(m *Mouse) {
	m.OnPointerDown(func(x, y int) { r.events = append(r.events, fmt.Sprintf("down(%d,%d)", x, y)) })
	m.OnPointerMove(func(x, y int) { r.events = append(r.events, fmt.Sprintf("move(%d,%d)", x, y)) })
	m.OnPointerUp(func() { r.events = append(r.events, "up") })
	m.OnPointerLeave(func() { r.events = append(r.events, "leave") })
}

func in(x, y int, b Button) Snapshot  { return Snapshot{X: x, Y: y, Buttons: b, Inside: true} }
func out(x, y int, b Button) Snapshot { return Snapshot{X: x, Y: y, Buttons: b} }

func TestMouseDispatch(t *testing.T) {
	cases := []struct {
		name  string
		snaps []Snapshot
		want  []string
	}{
		{
			name:  "idle_frames_emit_nothing",
			snaps: []Snapshot{in(5, 5, 0), in(5, 5, 0)},
			want:  nil,
		},
		{
			name:  "press_drag_release",
			snaps: []Snapshot{in(10, 10, 0), in(10, 10, ButtonLeft), in(15, 12, ButtonLeft), in(20, 20, ButtonLeft), in(20, 20, 0)},
			want:  []string{"down(10,10)", "move(15,12)", "move(20,20)", "up"},
		},
		{
			name:  "any_button_starts_drag",
			snaps: []Snapshot{in(1, 1, 0), in(1, 1, ButtonMiddle), in(1, 1, ButtonMiddle|ButtonRight)},
			want:  []string{"down(1,1)", "down(1,1)"},
		},
		{
			name:  "release_and_move_same_frame",
			snaps: []Snapshot{in(0, 0, ButtonLeft), in(4, 4, 0)},
			want:  []string{"down(0,0)", "move(4,4)", "up"},
		},
		{
			name:  "leave_window",
			snaps: []Snapshot{in(0, 0, 0), in(0, 0, ButtonLeft), out(-3, 2, ButtonLeft), out(-9, 2, 0)},
			want:  []string{"down(0,0)", "leave"},
		},
		{
			name:  "reenter_moves",
			snaps: []Snapshot{out(-1, 0, 0), in(0, 0, 0)},
			want:  []string{"move(0,0)"},
		},
		{
			name:  "press_outside_ignored",
			snaps: []Snapshot{out(-5, -5, 0), out(-5, -5, ButtonLeft)},
			want:  nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewMouse(100, 100)
			var r recorder
			r.attach(m)
			for _, s := range c.snaps {
				m.Dispatch(s)
			}
			if !reflect.DeepEqual(r.events, c.want) {
				t.Fatalf("events = %v, want %v", r.events, c.want)
			}
		})
	}
}

func TestMouseContains(t *testing.T) {
	m := NewMouse(640, 480)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{639, 479, true},
		{640, 10, false},
		{10, 480, false},
		{-1, 0, false},
	}
	for _, c := range cases {
		if got := m.contains(c.x, c.y); got != c.want {
			t.Fatalf("contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

type nopSurface struct{}

func (nopSurface) Size() (int, int)                                                 { return 100, 100 }
func (nopSurface) ClearRect(image.Rectangle)                                        {}
func (nopSurface) DrawImageRegion(viewport.Image, image.Rectangle, image.Rectangle) {}

func TestMouseDrivesRenderer(t *testing.T) {
	m := NewMouse(100, 100)
	r := viewport.NewRenderer(nopSurface{}, nil)
	r.Attach(m, nil)

	for _, s := range []Snapshot{
		in(10, 10, 0),
		in(10, 10, ButtonLeft),
		in(15, 12, ButtonLeft),
		in(20, 20, ButtonLeft),
		in(20, 20, 0),
		in(60, 60, 0),
	} {
		m.Dispatch(s)
	}
	if got, want := r.Offset(), (viewport.Offset{X: 10, Y: 10}); got != want {
		t.Fatalf("offset = %+v, want %+v", got, want)
	}
	if r.State() != viewport.Idle {
		t.Fatalf("state = %v, want idle", r.State())
	}
}

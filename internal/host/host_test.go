package host

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type fixedRand struct{ v int }

func (r fixedRand) Intn(int) int { return r.v }

type recordingRenderer struct {
	boards []snake.Board
}

func (r *recordingRenderer) Draw(b snake.Board) {
	r.boards = append(r.boards, b)
}

func newSession() *snake.Session {
	return snake.NewSession(core.NewGrid(40, 30), fixedRand{v: 0})
}

func TestLoopRunsScriptedTicks(t *testing.T) {
	session := newSession()
	input, err := ParseScript("2:up 3:left")
	if err != nil {
		t.Fatal(err)
	}
	rec := &recordingRenderer{}

	loop := &Loop{
		Session:   session,
		Input:     input,
		Renderer:  rec,
		Scheduler: CountScheduler{N: 3},
	}
	if _, err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// (20,15) -> right (21,15) -> up (21,14) -> left (20,14)
	if head := session.Snake().Head(); head != (core.Cell{X: 20, Y: 14}) {
		t.Errorf("head = %v, expected (20,14)", head)
	}
	if len(rec.boards) != 4 {
		t.Errorf("drew %d boards, expected initial + 3", len(rec.boards))
	}
	if rec.boards[0].Body[0] != (core.Cell{X: 20, Y: 15}) {
		t.Errorf("first board should show the starting position, got %v", rec.boards[0].Body)
	}
}

func TestLoopDoesNotReplayEarlierInput(t *testing.T) {
	// A 1x1 board is full from the start, so the session sits in the won
	// phase and every restart action shows up as a restart event.
	session := snake.NewSession(core.NewGrid(1, 1), fixedRand{v: 0})
	input, err := ParseScript("1:restart")
	if err != nil {
		t.Fatal(err)
	}

	restarts := 0
	loop := &Loop{
		Session:   session,
		Input:     input,
		Scheduler: CountScheduler{N: 4},
		OnResult: func(r core.StepResult) {
			if r.Has(core.EventRestarted) {
				restarts++
			}
		},
	}
	if _, err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if restarts != 1 {
		t.Errorf("restarted %d times, expected 1", restarts)
	}
	if session.Phase() != snake.PhaseWon {
		t.Errorf("phase = %v, expected won", session.Phase())
	}
}

func TestLoopStopsOnQuit(t *testing.T) {
	session := newSession()
	input, _ := ParseScript("2:quit")

	var results []core.StepResult
	loop := &Loop{
		Session:   session,
		Input:     input,
		Scheduler: CountScheduler{},
		OnResult: func(r core.StepResult) {
			results = append(results, r)
		},
	}
	last, err := loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !last.Quit {
		t.Error("last result should carry quit")
	}
	if len(results) != 2 {
		t.Errorf("got %d results, expected 2", len(results))
	}
}

func TestLoopMaxTicks(t *testing.T) {
	session := newSession()
	loop := &Loop{
		Session:   session,
		Scheduler: CountScheduler{},
		MaxTicks:  5,
	}
	if _, err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := session.Snapshot().Tick; got != 5 {
		t.Errorf("tick = %d, expected 5", got)
	}
}

func TestLoopCancellationIsNotAnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := &Loop{
		Session:   newSession(),
		Scheduler: CountScheduler{N: 10},
	}
	if _, err := loop.Run(ctx); err != nil {
		t.Errorf("Run on cancelled context: %v", err)
	}
}

func TestTickerScheduler(t *testing.T) {
	s := NewTickerScheduler(200)
	if s.Interval() != 5*time.Millisecond {
		t.Errorf("interval = %v, expected 5ms", s.Interval())
	}
	if NewTickerScheduler(0).Interval() != 100*time.Millisecond {
		t.Error("default rate should be 10 ticks per second")
	}

	count := 0
	err := s.Run(context.Background(), func() bool {
		count++
		return count < 3
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 3 {
		t.Errorf("ticked %d times, expected 3", count)
	}
}

func TestTickerSchedulerStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := NewTickerScheduler(1).Run(ctx, func() bool {
		t.Error("tick should not run before the deadline")
		return true
	})
	if err != context.DeadlineExceeded {
		t.Errorf("err = %v, expected deadline exceeded", err)
	}
}

func TestParseScript(t *testing.T) {
	in, err := ParseScript("1:up;3:LEFT,down\n 7:restart")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	expected := [][]core.Action{
		{core.ActionUp},
		nil,
		{core.ActionLeft, core.ActionDown},
		nil, nil, nil,
		{core.ActionRestart},
	}
	for i, want := range expected {
		got := in.Poll()
		if len(got) != len(want) {
			t.Fatalf("tick %d: got %v, expected %v", i+1, got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("tick %d: got %v, expected %v", i+1, got, want)
			}
		}
	}
	if in.LastTick() != 7 {
		t.Errorf("LastTick() = %d, expected 7", in.LastTick())
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		script string
		errMsg string
	}{
		{"up", "missing ':'"},
		{"x:up", "bad tick"},
		{"0:up", "at least 1"},
		{"2:jump", "unknown action"},
		{"2:", "unknown action"},
	}

	for _, tc := range tests {
		t.Run(tc.script, func(t *testing.T) {
			_, err := ParseScript(tc.script)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("error %q should contain %q", err, tc.errMsg)
			}
		})
	}
}

func TestScreenRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewScreenRenderer(82, 34, 0)
	r.Out = &out

	session := newSession()
	r.Draw(session.Board())
	r.Draw(session.Board())

	if r.Frames() != 2 {
		t.Errorf("frames = %d, expected 2", r.Frames())
	}
	if !strings.Contains(r.Screen().Row(0), "Score: 0") {
		t.Errorf("HUD missing: %q", r.Screen().Row(0))
	}
	if strings.Count(out.String(), "Score: 0") != 2 {
		t.Errorf("expected two frames written, got:\n%s", out.String())
	}
}

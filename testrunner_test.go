package dnd

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 5, "touch": true}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "click" || runner.steps[0].X != 100 || runner.steps[0].Y != 200 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	if st := runner.steps[2]; st.ToY != 4 || !st.Touch {
		t.Error("step 2 mismatch")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRunnerStep_Click(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(s)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(s.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	s.processInjectedInput()
	s.processInjectedInput()
	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "press", "x": 5, "y": 5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	for i := range 3 {
		runner.step(s)
		if len(s.injectQueue) != 0 {
			t.Fatalf("frame %d: press queued during wait", i)
		}
	}
	runner.step(s)
	if len(s.injectQueue) != 1 || !s.injectQueue[0].pressed {
		t.Fatalf("press should be queued after the wait, queue = %+v", s.injectQueue)
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 200, "frames": 4, "touch": true}]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(s)
	if len(s.injectQueue) != 4 {
		t.Fatalf("expected 4 queued events for drag, got %d", len(s.injectQueue))
	}
	if s.injectQueue[0].kind != PointerTouch {
		t.Error("touch step should inject touch events")
	}
}

func TestRunnerWaitsForDeferredEnd(t *testing.T) {
	f := newSceneFixture(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "x": 25, "y": 25},
		{"action": "move", "x": 250, "y": 50},
		{"action": "release", "x": 250, "y": 50}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	f.s.SetTestRunner(runner)

	for i := 0; i < 20 && !runner.Done(); i++ {
		frame(f.s)
	}
	if !runner.Done() {
		t.Fatal("runner should finish")
	}
	if end, ok := f.rec.last(EventDragEnd); !ok || !end.Success {
		t.Error("runner should finish only after the drop")
	}
}

func TestRunnerBlur(t *testing.T) {
	f := newSceneFixture(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "x": 25, "y": 25},
		{"action": "move", "x": 250, "y": 50},
		{"action": "blur"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	f.s.SetTestRunner(runner)
	for i := 0; i < 20 && !runner.Done(); i++ {
		frame(f.s)
	}
	if f.s.InProgress() {
		t.Error("blur step should abort the drag")
	}
	if end, ok := f.rec.last(EventDragEnd); !ok || end.Success {
		t.Error("aborted drag should end unsuccessfully")
	}
}

package pathresolver

import "testing"

func sampleDoc() map[string]any {
	return map[string]any{
		"jobs": []any{
			map[string]any{
				"job_id":   "J1",
				"due_date": 10,
				"tasks": []any{
					map[string]any{"task_id": "cut", "duration": 3},
					map[string]any{"task_id": "weld", "duration": 2.5},
				},
			},
			map[string]any{
				"job_id":   "J2",
				"due_date": 20,
				"tasks":    []any{},
			},
		},
	}
}

func TestResolveNestedBracket(t *testing.T) {
	doc := sampleDoc()
	v, err := Resolve(doc, "jobs[J1].tasks[cut].duration")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 3 {
		t.Errorf("got %v, want 3", v)
	}
}

func TestResolveMissingField(t *testing.T) {
	doc := sampleDoc()
	if _, err := Resolve(doc, "jobs[J9].tasks[cut].duration"); err == nil {
		t.Fatal("expected NotFound error")
	}
}

func TestSetPreservesIntegerType(t *testing.T) {
	doc := sampleDoc()
	if err := Set(doc, "jobs[J1].due_date", 15.7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	jobs := doc["jobs"].([]any)
	j1 := jobs[0].(map[string]any)
	got, ok := j1["due_date"].(int)
	if !ok {
		t.Fatalf("expected integer due_date, got %T", j1["due_date"])
	}
	if got != 16 {
		t.Errorf("expected rounded integer 16, got %v", got)
	}
}

func TestSetFloorsAtZero(t *testing.T) {
	doc := sampleDoc()
	if err := Set(doc, "jobs[J1].tasks[cut].duration", -5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := Resolve(doc, "jobs[J1].tasks[cut].duration")
	if v != 0 {
		t.Errorf("expected floor 0, got %v", v)
	}
}

func TestSetThroughBracketedTerminalErrors(t *testing.T) {
	doc := sampleDoc()
	if err := Set(doc, "jobs[J1]", 5); err == nil {
		t.Fatal("expected error setting through bracketed terminal")
	}
}

func TestDeepCopyIsIndependent(t *testing.T) {
	doc := sampleDoc()
	copyDoc, err := DeepCopy(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Set(copyDoc, "jobs[J1].tasks[cut].duration", 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	original, _ := Resolve(doc, "jobs[J1].tasks[cut].duration")
	if original != 3 {
		t.Errorf("original document was mutated: got %v", original)
	}
}

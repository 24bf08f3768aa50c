package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gymmanagement/gym/internal/cli/api"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	previous := Out
	Out = buf
	t.Cleanup(func() { Out = previous })
	return buf
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{0, "[..........]   0%"},
		{33, "[###.......]  33%"},
		{67, "[######....]  67%"},
		{100, "[##########] 100%"},
		{150, "[##########] 100%"},
		{-5, "[..........]   0%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ProgressBar(tt.percent); got != tt.want {
				t.Errorf("ProgressBar(%d) = %q, want %q", tt.percent, got, tt.want)
			}
		})
	}
}

func TestFormatOptional(t *testing.T) {
	bmi := 22.86
	age := 25
	if got := FormatFloat(&bmi, ""); got != "22.86" {
		t.Errorf("expected 22.86, got %q", got)
	}
	height := 175.0
	if got := FormatFloat(&height, " cm"); got != "175 cm" {
		t.Errorf("expected '175 cm', got %q", got)
	}
	if got := FormatFloat(nil, " kg"); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
	if got := FormatInt(&age); got != "25" {
		t.Errorf("expected 25, got %q", got)
	}
	if got := FormatInt(nil); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
}

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just now", time.Now(), "just now"},
		{"minutes", time.Now().Add(-5 * time.Minute), "5m ago"},
		{"hours", time.Now().Add(-3 * time.Hour), "3h ago"},
		{"days", time.Now().Add(-48 * time.Hour), "2d ago"},
		{"old", time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), "2020-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeTime(tt.at); got != tt.want {
				t.Errorf("RelativeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWorkoutTable(t *testing.T) {
	buf := capture(t)

	WorkoutTable([]api.Workout{
		{ID: "w1", EventTitle: "Squat", Sets: 3, RepsOrSecs: 10, RestTime: 60, IsCompleted: true, CreatedAt: time.Now()},
		{ID: "w2", EventTitle: "Plank", Sets: 2, RepsOrSecs: 45, RestTime: 30, CreatedAt: time.Now()},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "EXERCISE") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "Squat") || !strings.Contains(lines[1], "yes") || !strings.Contains(lines[1], "60s") {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if !strings.Contains(lines[2], "no") {
		t.Errorf("unexpected second row %q", lines[2])
	}
}

func TestEmptyTables(t *testing.T) {
	buf := capture(t)

	WorkoutTable(nil)
	EventTable(nil)
	UserTable(nil)
	ProgressTable(nil)
	SnapshotTable(nil)

	want := "No workouts found.\nNo events found.\nNo users found.\nNo members found.\nNo progress snapshots found.\n"
	if buf.String() != want {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	buf := capture(t)

	JSON(api.WorkoutStats{TotalWorkouts: 3, CompletedWorkouts: 2, CompletionRate: 67})

	want := "{\n  \"totalWorkouts\": 3,\n  \"completedWorkouts\": 2,\n  \"completionRate\": 67\n}\n"
	if buf.String() != want {
		t.Errorf("unexpected JSON %q", buf.String())
	}
}

package risk

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aryanch/projtrack/core/task"
)

var testNow = time.Date(2021, 3, 15, 12, 0, 0, 0, time.UTC)

func fixNow(t *testing.T) {
	nowFunc = func() time.Time { return testNow }
	t.Cleanup(func() { nowFunc = time.Now })
}

func newTask(deadline time.Time, status string, progress int) task.Task {
	return task.Task{
		ID:       primitive.NewObjectID(),
		Title:    "t",
		Deadline: deadline,
		Status:   status,
		Progress: progress,
	}
}

func days(n float64) time.Time {
	return testNow.Add(time.Duration(n * 24 * float64(time.Hour)))
}

func TestScore(t *testing.T) {
	fixNow(t)

	tests := []struct {
		name     string
		deadline time.Time
		status   string
		progress int
		want     int
	}{
		{name: "overdue", deadline: days(-2), status: task.StatusInProgress, progress: 60, want: 90},
		{name: "overdue wins over completed", deadline: days(-2), status: task.StatusCompleted, progress: 100, want: 90},
		{name: "overdue by less than a day is not overdue", deadline: days(-0.5), status: task.StatusNotStarted, progress: 0, want: 75},
		{name: "completed", deadline: days(10), status: task.StatusCompleted, progress: 80, want: 0},
		{name: "progress 100 counts as completed", deadline: days(10), status: task.StatusInProgress, progress: 100, want: 0},
		{name: "low progress, very near deadline", deadline: days(1.5), status: task.StatusInProgress, progress: 30, want: 75},
		{name: "very low progress, approaching deadline", deadline: days(5.5), status: task.StatusInProgress, progress: 10, want: 60},
		{name: "boundary: progress 30 at 6 days falls through to default", deadline: days(5.5), status: task.StatusInProgress, progress: 30, want: 20},
		{name: "moderate progress, near deadline", deadline: days(3.5), status: task.StatusInProgress, progress: 45, want: 50},
		{name: "good progress, imminent deadline", deadline: days(0.5), status: task.StatusInProgress, progress: 70, want: 40},
		{name: "good progress, 2 days out is on track", deadline: days(2), status: task.StatusInProgress, progress: 70, want: 20},
		{name: "on track", deadline: days(14), status: task.StatusNotStarted, progress: 0, want: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(newTask(tt.deadline, tt.status, tt.progress)); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAssessEmpty(t *testing.T) {
	a := Assess(nil)
	if a.OverallRisk != 0 {
		t.Errorf("OverallRisk = %d, want 0", a.OverallRisk)
	}
	if len(a.HighRiskTasks) != 0 {
		t.Errorf("HighRiskTasks = %v, want empty", a.HighRiskTasks)
	}
	if a.Message != MsgNoTasks {
		t.Errorf("Message = %q, want %q", a.Message, MsgNoTasks)
	}
}

func TestAssess(t *testing.T) {
	fixNow(t)

	overdue := newTask(days(-2), task.StatusInProgress, 60)   // 90
	critical := newTask(days(1), task.StatusInProgress, 20)   // 75
	behind := newTask(days(5), task.StatusInProgress, 10)     // 60
	onTrack := newTask(days(14), task.StatusInProgress, 50)   // 20
	completed := newTask(days(5), task.StatusCompleted, 100)  // 0

	a := Assess([]task.Task{onTrack, behind, overdue, completed, critical})

	// round(245 / 5) = 49
	if a.OverallRisk != 49 {
		t.Errorf("OverallRisk = %d, want 49", a.OverallRisk)
	}
	if a.Message != MsgModerate {
		t.Errorf("Message = %q, want %q", a.Message, MsgModerate)
	}

	wantHigh := []primitive.ObjectID{overdue.ID, critical.ID, behind.ID}
	if len(a.HighRiskTasks) != len(wantHigh) {
		t.Fatalf("len(HighRiskTasks) = %d, want %d", len(a.HighRiskTasks), len(wantHigh))
	}
	for i, st := range a.HighRiskTasks {
		if st.Task.ID != wantHigh[i] {
			t.Errorf("HighRiskTasks[%d] = %v, want %v", i, st.Task.ID, wantHigh[i])
		}
		if st.RiskScore < 60 {
			t.Errorf("HighRiskTasks[%d].RiskScore = %d, want >= 60", i, st.RiskScore)
		}
	}
}

func TestAssessTieOrder(t *testing.T) {
	fixNow(t)

	// both score 75; ties keep their input order
	first := newTask(days(1), task.StatusInProgress, 20)
	second := newTask(days(2), task.StatusInProgress, 40)

	a := Assess([]task.Task{first, second})
	if a.HighRiskTasks[0].Task.ID != first.ID || a.HighRiskTasks[1].Task.ID != second.ID {
		t.Errorf("tie order not preserved: %v", a.HighRiskTasks)
	}
}

func TestAssessRounding(t *testing.T) {
	fixNow(t)

	// scores 20 + 75 = 95 -> mean 47.5 -> rounds to 48
	a := Assess([]task.Task{
		newTask(days(14), task.StatusInProgress, 50),
		newTask(days(1), task.StatusInProgress, 20),
	})
	if a.OverallRisk != 48 {
		t.Errorf("OverallRisk = %d, want 48", a.OverallRisk)
	}
}

func TestMessageThresholds(t *testing.T) {
	tests := []struct {
		overall int
		want    string
	}{
		{overall: 90, want: MsgCritical},
		{overall: 70, want: MsgCritical},
		{overall: 69, want: MsgEarly},
		{overall: 50, want: MsgEarly},
		{overall: 49, want: MsgModerate},
		{overall: 30, want: MsgModerate},
		{overall: 29, want: MsgOnTrack},
		{overall: 0, want: MsgOnTrack},
	}
	for _, tt := range tests {
		if got := message(tt.overall); got != tt.want {
			t.Errorf("message(%d) = %q, want %q", tt.overall, got, tt.want)
		}
	}
}

func TestNewLog(t *testing.T) {
	fixNow(t)

	high := newTask(days(-1), task.StatusInProgress, 10)
	a := Assess([]task.Task{high})
	l := NewLog(a)

	if l.OverallRisk != a.OverallRisk {
		t.Errorf("OverallRisk = %d, want %d", l.OverallRisk, a.OverallRisk)
	}
	if len(l.HighRiskTasks) != 1 || l.HighRiskTasks[0] != high.ID {
		t.Errorf("HighRiskTasks = %v, want [%v]", l.HighRiskTasks, high.ID)
	}
	if l.CalculatedAt.IsZero() {
		t.Error("CalculatedAt not set")
	}
}

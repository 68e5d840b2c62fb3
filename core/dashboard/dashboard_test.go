package dashboard

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

func TestBuildEmpty(t *testing.T) {
	stats := Build(nil)
	if stats.TotalTasks != 0 || stats.CompletedTasks != 0 || stats.PendingTasks != 0 {
		t.Errorf("counts = %d/%d/%d, want 0/0/0", stats.TotalTasks, stats.CompletedTasks, stats.PendingTasks)
	}
	if stats.OverallProgress != 0 {
		t.Errorf("OverallProgress = %d, want 0", stats.OverallProgress)
	}
	if len(stats.UpcomingDeadlines) != 0 {
		t.Errorf("UpcomingDeadlines = %v, want empty", stats.UpcomingDeadlines)
	}
	if stats.RiskScore != 0 {
		t.Errorf("RiskScore = %d, want 0", stats.RiskScore)
	}
}

func TestBuildCounts(t *testing.T) {
	fixNow(t)

	stats := Build([]task.Task{
		newTask(days(10), task.StatusCompleted, 100),
		newTask(days(10), task.StatusInProgress, 60),
		newTask(days(10), task.StatusNotStarted, 0),
	})
	if stats.TotalTasks != 3 || stats.CompletedTasks != 1 || stats.PendingTasks != 2 {
		t.Errorf("counts = %d/%d/%d, want 3/1/2", stats.TotalTasks, stats.CompletedTasks, stats.PendingTasks)
	}
	// round((100 + 60 + 0) / 3) = 53
	if stats.OverallProgress != 53 {
		t.Errorf("OverallProgress = %d, want 53", stats.OverallProgress)
	}
}

func TestUpcomingDeadlines(t *testing.T) {
	fixNow(t)

	past := newTask(days(-1), task.StatusInProgress, 50)
	doneSoon := newTask(days(2), task.StatusCompleted, 100)
	farOut := newTask(days(8), task.StatusInProgress, 50)
	within := []task.Task{
		newTask(days(6), task.StatusInProgress, 50),
		newTask(days(1), task.StatusInProgress, 50),
		newTask(days(5), task.StatusNotStarted, 0),
		newTask(days(3), task.StatusInProgress, 50),
		newTask(days(4), task.StatusInProgress, 50),
		newTask(days(2), task.StatusInProgress, 50),
	}

	tasks := append([]task.Task{past, doneSoon, farOut}, within...)
	got := upcomingDeadlines(tasks)

	if len(got) != upcomingLimit {
		t.Fatalf("len = %d, want %d", len(got), upcomingLimit)
	}
	for i, tsk := range got {
		if tsk.IsCompleted() {
			t.Errorf("upcoming[%d] is completed", i)
		}
		if tsk.Deadline.Before(testNow) || tsk.Deadline.After(testNow.Add(upcomingWindow)) {
			t.Errorf("upcoming[%d] deadline %v outside window", i, tsk.Deadline)
		}
		if i > 0 && got[i-1].Deadline.After(tsk.Deadline) {
			t.Errorf("upcoming not sorted ascending at %d", i)
		}
	}
	// the six in-window tasks sorted by deadline start at day 1; day 6 is cut off
	if got[0].Deadline != days(1) {
		t.Errorf("first upcoming = %v, want %v", got[0].Deadline, days(1))
	}
	if got[len(got)-1].Deadline != days(5) {
		t.Errorf("last upcoming = %v, want %v", got[len(got)-1].Deadline, days(5))
	}
}

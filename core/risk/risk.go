// Package risk implements the rule-based early-warning scoring over tasks.
package risk

import (
	"math"
	"sort"
	"time"

	"github.com/aryanch/projtrack/core/task"
)

// Per-task scores, one per rule.
const (
	ScoreOverdue   = 90 // deadline has passed, completed or not
	ScoreNone      = 0  // completed (or at 100%) before the deadline
	ScoreCritical  = 75 // low progress, deadline very near
	ScoreHigh      = 60 // very low progress, deadline approaching
	ScoreMedium    = 50 // moderate progress, deadline near
	ScoreNearDone  = 40 // good progress but deadline imminent
	ScoreOnTrack   = 20 // default
	highRiskCutoff = 60
)

// Advisory messages, selected by thresholding the overall score.
const (
	MsgNoTasks  = "No tasks found"
	MsgCritical = "⚠️ Critical Warning: Project is at high risk of delay!"
	MsgEarly    = "⚠️ Early Warning: Project may be delayed. Take action now."
	MsgModerate = "⚠️ Moderate Risk: Monitor tasks closely."
	MsgOnTrack  = "✅ Project is on track."
)

var nowFunc = time.Now // mockable

// Score computes the risk score for a single task.
//
// The rules are evaluated in order and the first match wins. An overdue task
// scores ScoreOverdue even when completed: the overdue rule deliberately
// precedes the completed rule.
func Score(t task.Task) int {
	days := daysUntilDeadline(t.Deadline)

	if days < 0 {
		return ScoreOverdue
	}
	if t.IsCompleted() || t.Progress == 100 {
		return ScoreNone
	}
	if t.Progress < 50 && days < 3 {
		return ScoreCritical
	}
	if t.Progress < 30 && days < 7 {
		return ScoreHigh
	}
	if t.Progress >= 30 && t.Progress < 50 && days < 5 {
		return ScoreMedium
	}
	if t.Progress >= 50 && days < 2 {
		return ScoreNearDone
	}
	return ScoreOnTrack
}

// daysUntilDeadline counts calendar days from now to the deadline, rounding
// fractional days up. Deadlines within the past 24h therefore still count as
// day 0, not overdue.
func daysUntilDeadline(deadline time.Time) int {
	return int(math.Ceil(deadline.Sub(nowFunc()).Hours() / 24))
}

// ScoredTask is a task annotated with its computed risk score.
type ScoredTask struct {
	task.Task
	RiskScore int `json:"riskScore"`
}

// Assessment is the aggregate risk over a task collection.
type Assessment struct {
	OverallRisk   int          `json:"overallRisk"`
	HighRiskTasks []ScoredTask `json:"highRiskTasks"`
	Message       string       `json:"message"`
}

// Assess reduces a task collection to an overall score, the high-risk subset
// and an advisory message.
func Assess(tasks []task.Task) Assessment {
	if len(tasks) == 0 {
		return Assessment{OverallRisk: 0, HighRiskTasks: []ScoredTask{}, Message: MsgNoTasks}
	}

	var total int
	highRisk := make([]ScoredTask, 0)
	for _, t := range tasks {
		score := Score(t)
		total += score
		if score >= highRiskCutoff {
			highRisk = append(highRisk, ScoredTask{Task: t, RiskScore: score})
		}
	}
	overall := int(math.Round(float64(total) / float64(len(tasks))))

	// highest first; ties keep their original order
	sort.SliceStable(highRisk, func(i, j int) bool { return highRisk[i].RiskScore > highRisk[j].RiskScore })

	return Assessment{
		OverallRisk:   overall,
		HighRiskTasks: highRisk,
		Message:       message(overall),
	}
}

func message(overall int) string {
	switch {
	case overall >= 70:
		return MsgCritical
	case overall >= 50:
		return MsgEarly
	case overall >= 30:
		return MsgModerate
	default:
		return MsgOnTrack
	}
}

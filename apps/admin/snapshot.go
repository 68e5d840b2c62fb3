package main

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/aryanch/projtrack/core"
	"github.com/aryanch/projtrack/core/risk"
)

// snapshot computes the aggregate project risk, persists it as a risk log
// and optionally emails the advisory.
func (cli *commandLine) snapshot(notify bool) error {
	ctx := context.Background()

	tasks, err := cli.taskRepo.QueryAllTasks(ctx)
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}

	assessment := risk.Assess(tasks)
	logRec, err := cli.riskLogRepo.CreateLog(ctx, risk.NewLog(assessment))
	if err != nil {
		return errors.Wrap(err, "saving risk log")
	}

	fmt.Printf("Overall risk: %d\n", assessment.OverallRisk)
	fmt.Printf("High-risk tasks: %d\n", len(assessment.HighRiskTasks))
	fmt.Printf("%s\n", assessment.Message)
	fmt.Printf("Saved risk log %s\n", logRec.ID.Hex())

	if notify {
		if cli.conf.AdvisoryEmail == "" {
			return errors.New("no advisory email configured")
		}
		cli.mailSvc.SendMessages(&core.EmailMessage{
			To:      []mail.Address{{Address: cli.conf.AdvisoryEmail}},
			Subject: "Project risk advisory",
			Body: fmt.Sprintf("Overall risk: %d\nHigh-risk tasks: %d\n\n%s\n",
				assessment.OverallRisk, len(assessment.HighRiskTasks), assessment.Message),
		})
	}
	return nil
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/aryanch/projtrack/core"
	emailsvc "github.com/aryanch/projtrack/services/email"
	logsvc "github.com/aryanch/projtrack/services/logger"
	"github.com/aryanch/projtrack/storage/database"
	"github.com/aryanch/projtrack/storage/database/mongodb"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	ctx := context.Background()
	db, err := database.Open(ctx, conf)
	errAndDie(err)
	defer func() { _ = database.Close(ctx, db) }()
	errAndDie(database.EnsureIndexes(ctx, db))

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		rollbarLogger := logsvc.NewRollbarLogger(logger, conf)
		rollbarLogger.Enable(true)
		mailSvc = emailsvc.NewSendgridService(conf, rollbarLogger)
	}

	// start CLI
	cli := commandLine{
		conf:        conf,
		personRepo:  mongodb.NewPersonRepository(db),
		taskRepo:    mongodb.NewTaskRepository(db),
		riskLogRepo: mongodb.NewRiskLogRepository(db),
		mailSvc:     mailSvc,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

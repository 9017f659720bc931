package main

import (
	"context"
	"log"

	echoapi "github.com/masonbrown9/gradebook/apps/api/echo"
	"github.com/masonbrown9/gradebook/core"
	"github.com/masonbrown9/gradebook/core/course"
	emailsvc "github.com/masonbrown9/gradebook/services/email"
	sendgridmail "github.com/masonbrown9/gradebook/services/email/sendgrid"
	logsvc "github.com/masonbrown9/gradebook/services/logger"
	jsondb "github.com/masonbrown9/gradebook/storage/jsonfile"
)

func main() {
	logger := logsvc.NewKitLogger(core.Conf)

	// set up storage
	db, err := jsondb.Open(core.Conf)
	errAndDie(err)
	repo := jsondb.NewCourseRepository(db)

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = sendgridmail.NewService(logger)
	}
	svc := course.NewService(repo, mailSvc, logger)
	errAndDie(svc.Load(context.Background()))

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:   core.Conf.ServerAddress(),
			CourseSvc: svc,
			Logger:    logger,
		},
	)
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

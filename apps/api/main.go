package main

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/batch"
	"github.com/trezcool/darasa/core/enrollment"
	emailsvc "github.com/trezcool/darasa/services/email"
	sendgridmail "github.com/trezcool/darasa/services/email/sendgrid"
	logsvc "github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
	sqlxrepos "github.com/trezcool/darasa/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	workDir, err := os.Getwd()
	if err != nil {
		std.Fatal(err)
	}
	conf, err := core.NewConfig(workDir)
	if err != nil {
		std.Fatal(err)
	}

	var logger core.Logger
	if conf.Debug || conf.TestMode {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}
	defer func() { _ = db.Close() }()

	// set up services
	var mailSvc core.EmailService
	if conf.Debug || conf.TestMode {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = sendgridmail.NewService(conf, logger)
	}
	batchRepo := sqlxrepos.NewBatchRepository(db)
	batchSvc := batch.NewService(batchRepo)
	enrollSvc := enrollment.NewService(sqlxrepos.NewEnrollmentRepository(db), batchRepo, mailSvc, logger)

	// set up validation
	enLocale := en.New()
	translator, _ := ut.New(enLocale, enLocale).GetTranslator(enLocale.Locale())
	validate := validator.New()
	core.InitValidators(validate, translator)

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Conf:       conf,
		DB:         db,
		BatchSvc:   batchSvc,
		EnrollSvc:  enrollSvc,
		Logger:     logger,
		Validate:   validate,
		Translator: translator,
	})
	logger.Info("server listening on " + conf.Server.Address())
	app.Start()
}

package main

import (
	"os"

	"arkhive.dev/appstub/internal/configloader"
	"arkhive.dev/appstub/internal/database"
	"arkhive.dev/appstub/internal/database/delegate/sqlite"
	"arkhive.dev/appstub/internal/launcher"
	"github.com/sirupsen/logrus"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "appstub"

// The launcher takes no arguments; an explicit configuration file can only
// be selected through the environment.
const CONFIGURATION_FILE_VARIABLE = "APPSTUB_CONFIG"

func main() {
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, os.Getenv(CONFIGURATION_FILE_VARIABLE))
	if err != nil {
		logrus.Fatalf("%+v", err)
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Fatalf("%+v", err)
	}
	logrus.SetLevel(level)

	instance := launcher.NewLauncher(configuration.Interpreter, configuration.Companion)

	if configuration.DatabasePath != "" {
		journal := database.NewDatabase(&sqlite.SQLiteDelegate{Path: configuration.DatabasePath})
		if err = journal.Initialize(); err != nil {
			logrus.Warnf("Handoff journal disabled: %+v", err)
		} else {
			logrus.RegisterExitHandler(journal.Deinitialize)
			instance.HandoffEventEmitter.Subscribe(journal.RecordHandoff)
		}
	}

	if err = instance.Run(); err != nil {
		logrus.Fatalf("%+v", err)
	}
	logrus.Exit(0)
}

package main

import (
	"flag"
	"os"

	"arkhive.dev/appstub/internal/configloader"
	"arkhive.dev/appstub/internal/consent"
	"arkhive.dev/appstub/internal/database"
	"arkhive.dev/appstub/internal/database/delegate/sqlite"
	"github.com/sirupsen/logrus"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "appstub"

type settableStore interface {
	consent.Store
	SetValue(flag string, value string) error
}

func main() {
	configurationFilePath := flag.String("config", "", "Configuration file path")
	setValue := flag.String("set", "", "Store this value in the consent flag before applying it")
	flag.Parse()

	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath)
	if err != nil {
		logrus.Fatalf("%+v", err)
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Fatalf("%+v", err)
	}
	logrus.SetLevel(level)

	var store settableStore
	if configuration.DatabasePath != "" {
		flags := database.NewDatabase(&sqlite.SQLiteDelegate{Path: configuration.DatabasePath})
		if err = flags.Initialize(); err != nil {
			logrus.Fatalf("%+v", err)
		}
		logrus.RegisterExitHandler(flags.Deinitialize)
		store = flags
	} else {
		store = &consent.TOMLStore{Path: configuration.ConsentFile}
	}

	if *setValue != "" {
		if err = store.SetValue(configuration.ConsentFlag, *setValue); err != nil {
			logrus.Fatalf("%+v", err)
		}
	}

	granted, err := consent.Apply(store, consent.NewJSONQueue(os.Stdout), configuration.ConsentFlag)
	if err != nil {
		logrus.Fatalf("%+v", err)
	}
	logrus.Infof("Consent flag %s granted: %t", configuration.ConsentFlag, granted)
	logrus.Exit(0)
}

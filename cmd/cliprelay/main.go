package main

import (
	"flag"

	"arkhive.dev/appstub/internal/cliprelay"
	"arkhive.dev/appstub/internal/configloader"
	"github.com/sirupsen/logrus"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "appstub"

func main() {
	// Parsing the command line argument to change settings file location
	configurationFilePath := flag.String("config", "", "Configuration file path")
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

	activator, err := cliprelay.NewActivator()
	if err != nil {
		logrus.Fatalf("%+v", err)
	}
	if closer, ok := activator.(interface{ Close() }); ok {
		defer closer.Close()
	}

	relay := cliprelay.Relay{
		Window:    configuration.RelayWindow,
		Keys:      configuration.RelayKeys,
		Activator: activator,
	}
	if err = relay.Run(); err != nil {
		logrus.Errorf("%+v", err)
	}
}

package main

import (
	"os"

	"arkhive.dev/appstub/internal/elevate"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := elevate.Run(os.Args[1:], os.Stdout, elevate.System); err != nil {
		logrus.Fatalf("%+v", err)
	}
}

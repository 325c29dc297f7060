package main

import (
	"github.com/sirupsen/logrus"
)

func main() {
	config := parseArgs()

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetLevel(level)

	if err := NewApp(config).Run(); err != nil {
		logrus.Fatal(err)
	}
}

package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/presentation"
	"bikeshare/selection"
	"bikeshare/utils"
)

const logLevelEnvVarName = "LOG_LEVEL"

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("[explorer] error reading .env file: %s", err.Error())
	}

	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[explorer] error loading config: %s", err.Error())
		return
	}

	logLevel := os.Getenv(logLevelEnvVarName)
	if logLevel == "" {
		logLevel = explorerConfig.LogLevel
	}
	if err := InitLogger(logLevel); err != nil {
		log.Fatalf("%s", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopSignals := utils.CancelOnSignal(ctx, cancel)
	defer stopSignals()

	var sink reportSink
	if explorerConfig.ReportSink.Enabled {
		publisher, err := communication.NewReportPublisher(explorerConfig.ReportSink)
		if err != nil {
			log.Errorf("[explorer] error creating report publisher: %s", err.Error())
			return
		}
		defer publisher.Close()
		sink = publisher
	}

	explorer := NewExplorer(
		explorerConfig,
		selection.NewTerminal(os.Stdin, os.Stdout, explorerConfig.Months()),
		loader.NewLoader(&explorerConfig.LoaderConfig),
		presentation.NewRenderer(os.Stdout),
		sink,
	)

	err = explorer.Run(ctx)
	if err != nil {
		log.Errorf("[explorer] error running explorer: %s", err.Error())
		return
	}

	log.Debug("[explorer] Finish main.go")
}

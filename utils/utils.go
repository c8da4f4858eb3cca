package utils

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// ContainsFold returns true if target is one of options, ignoring case
func ContainsFold(target string, options []string) bool {
	for i := range options {
		if strings.EqualFold(options[i], target) {
			return true
		}
	}
	return false
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}

// CancelOnSignal calls cancel when an interrupt or termination signal arrives.
// The returned function stops listening.
func CancelOnSignal(ctx context.Context, cancel context.CancelFunc) func() {
	signalChannel := GetSignalChannel()
	go func() {
		select {
		case sig := <-signalChannel:
			log.Infof("[signal: %s] stopping", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return func() { signal.Stop(signalChannel) }
}

package collector

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// SetupSignalHandler returns a context cancelled on SIGTERM or SIGINT. A
// second signal forces exit.
func SetupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigCh
		logrus.WithField("signal", sig.String()).Info("initiating graceful shutdown")
		cancel()

		sig = <-sigCh
		logrus.WithField("signal", sig.String()).Warn("second signal, forcing exit")
		os.Exit(1)
	}()

	return ctx
}

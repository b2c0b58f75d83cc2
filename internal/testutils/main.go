package testutils

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"mission-control-backend/internal/logger"
)

// RunIntegration runs the package's tests and purges the shared Postgres container
// afterwards, also when the run is interrupted. It returns the exit code for os.Exit.
func RunIntegration(m *testing.M, pkg string) int {
	log := logger.New().WithField("package", pkg)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		sig := <-signals
		log.WithField("signal", sig.String()).Warn("integration tests interrupted")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	log.WithField("exit_code", code).Info("integration tests finished")
	CleanupSharedContainer()
	return code
}

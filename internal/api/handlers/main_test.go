package handlers

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"space-missions-api/internal/testutils"
)

// TestMain makes sure a shared Postgres container (TEST_DATABASE=postgres) is
// purged even when the run is interrupted
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

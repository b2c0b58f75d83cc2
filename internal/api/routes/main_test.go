//go:build integration
// +build integration

package routes

import (
	"os"
	"testing"

	"mission-control-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunIntegration(m, "routes"))
}

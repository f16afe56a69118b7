package server

import (
	"os"
	"testing"

	utils "github.com/minaorangina/warlog/internal"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults the port", func(t *testing.T) {
		os.Unsetenv("WARLOG_PORT")

		cfg, err := ConfigFromEnv()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.Addr(), ":8000")
	})

	t.Run("reads the port from the environment", func(t *testing.T) {
		os.Setenv("WARLOG_PORT", "9999")
		defer os.Unsetenv("WARLOG_PORT")

		cfg, err := ConfigFromEnv()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.Addr(), ":9999")
	})
}

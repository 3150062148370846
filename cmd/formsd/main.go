// @title        Form Builder API
// @version      1.0
// @description  Stores form definitions and their responses.
// @BasePath     /
package main

import (
	"os"

	"formsd/internal/logger"
)

func main() {
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"proxyctl/cmd"
	"proxyctl/logger"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic recovered in main: %v\n", r)
			logger.CloseLogFiles()
			os.Exit(1)
		}
	}()

	code := cmd.Execute()
	logger.CloseLogFiles()
	os.Exit(code)
}

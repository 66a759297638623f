// cmd/playground/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"wx-yz/bfc/debug"
	"wx-yz/bfc/server"

	"github.com/gin-gonic/gin"
)

func main() {
	addr := flag.String("addr", ":8080", "Address to listen on")
	debugAll := flag.Bool("debug", false, "Enable all debug output")
	logFile := flag.String("debug-log", "", "Write debug output to this file")
	flag.Parse()

	if *debugAll {
		debug.SetFlags(false, false, false, true, true)
		debug.PrintActiveFlags()
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if *logFile != "" {
		if err := debug.EnableFileLogging(*logFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer debug.CloseLogFile()
	}

	if err := server.Run(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting playground: %v\n", err)
		os.Exit(1)
	}
}

// debug/debug.go
package debug

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// Debug category constants
const (
	CategoryLexer   = "lexer"
	CategoryParser  = "parser"
	CategoryBackend = "backend"
)

var (
	Lexer   bool
	Parser  bool
	Backend bool
	All     bool
	Verbose bool
)

// Debug log file variables
var (
	debugLogFile   *os.File
	debugLogWriter *bufio.Writer
	loggingEnabled bool
)

// EnableFileLogging sets up a log file for all debug output
func EnableFileLogging(filename string) error {
	if filename == "" {
		now := time.Now()
		filename = fmt.Sprintf("bfc_debug_%s.log", now.Format("20060102_150405"))
	}

	var err error
	debugLogFile, err = os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %v", err)
	}

	debugLogWriter = bufio.NewWriter(debugLogFile)
	loggingEnabled = true

	fmt.Fprintf(debugLogWriter, "bfc Compiler Debug Log\n")
	fmt.Fprintf(debugLogWriter, "Started: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(debugLogWriter, "Command Line: %s\n", strings.Join(os.Args, " "))
	fmt.Fprintf(debugLogWriter, "===========================================\n\n")
	debugLogWriter.Flush()

	return nil
}

// LogToFile writes a message to the debug log file
func LogToFile(format string, args ...interface{}) {
	if !loggingEnabled || debugLogWriter == nil {
		return
	}

	fmt.Fprintf(debugLogWriter, format+"\n", args...)
	debugLogWriter.Flush()
}

// CloseLogFile closes the debug log file
func CloseLogFile() {
	if debugLogFile != nil {
		LogToFile("\nLog closed: %s", time.Now().Format(time.RFC3339))
		debugLogWriter.Flush()
		debugLogFile.Close()
		debugLogFile = nil
		debugLogWriter = nil
		loggingEnabled = false
	}
}

// SetFlags sets the debug flags from an entry point
func SetFlags(lexer, parser, backend, all, verbose bool) {
	Lexer = lexer
	Parser = parser
	Backend = backend
	All = all
	Verbose = verbose
}

// PrintActiveFlags prints which debug flags are currently active
func PrintActiveFlags() {
	if !Verbose && !All {
		return
	}

	active := []string{}
	if Lexer || All {
		active = append(active, CategoryLexer)
	}
	if Parser || All {
		active = append(active, CategoryParser)
	}
	if Backend || All {
		active = append(active, CategoryBackend)
	}
	if Verbose {
		active = append(active, "verbose")
	}
	if All {
		active = append(active, "all")
	}

	if len(active) > 0 {
		PrintInfo("Active debug flags: %s", strings.Join(active, ", "))
	} else {
		PrintInfo("No debug flags active")
	}
}

// PrintLexer prints debug info for the lexer if enabled. All diagnostic
// output goes to stderr; stdout carries the generated module text.
func PrintLexer(format string, args ...interface{}) {
	if Lexer || All {
		message := fmt.Sprintf("[DEBUG:LEXER] "+format+"\n", args...)
		fmt.Fprint(os.Stderr, message)
		LogToFile(message)
	}
}

// PrintParser prints debug info for the parser if enabled
func PrintParser(format string, args ...interface{}) {
	if Parser || All {
		message := fmt.Sprintf("[DEBUG:PARSER] "+format+"\n", args...)
		fmt.Fprint(os.Stderr, message)
		LogToFile(message)
	}
}

// PrintBackend prints debug info for code generation if enabled
func PrintBackend(format string, args ...interface{}) {
	if Backend || All {
		message := fmt.Sprintf("[DEBUG:BACKEND] "+format+"\n", args...)
		fmt.Fprint(os.Stderr, message)
		LogToFile(message)
	}
}

// PrintInfo prints an informational message
func PrintInfo(format string, args ...interface{}) {
	message := fmt.Sprintf("[INFO] "+format+"\n", args...)
	fmt.Fprint(os.Stderr, message)
	LogToFile(message)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	message := fmt.Sprintf("[WARNING] "+format+"\n", args...)
	fmt.Fprint(os.Stderr, message)
	LogToFile(message)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	message := fmt.Sprintf("[ERROR] "+format+"\n", args...)
	fmt.Fprint(os.Stderr, message)
	LogToFile(message)
}

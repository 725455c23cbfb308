// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package app provides the main entry point for the command line tools.
package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/toddobryan/pyracket/core/fault"
	"github.com/toddobryan/pyracket/core/log"
)

var (
	// Name is the full name of the application
	Name string
	// ExitFuncForTesting can be set to change the behaviour when there is a command line parsing failure.
	// It defaults to os.Exit
	ExitFuncForTesting = os.Exit
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// ShortUsage is usage text for the additional non-flag arguments.
	ShortUsage = ""
	// UsageFooter is printed at the bottom of the usage text
	UsageFooter = ""
)

// ExitCode is the type for named return values from the application main entry point.
type ExitCode int

const (
	// SuccessExit is the exit code for succesful exit.
	SuccessExit ExitCode = iota
	// FatalExit is the exit code if something logs at a fatal severity.
	FatalExit
	// UsageExit is the exit code if the usage function was invoked
	UsageExit
)

// Task is the signature of the main function handed to Run.
type Task func(ctx context.Context) error

func init() {
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

// Run performs all the work needed to start up an application.
// It parsers the main command line arguments, builds a primary context that
// will be cancelled on exit, runs the provided task and then waits for the
// cleanups registered with the context to finish before exiting.
func Run(main Task) {
	ExitFuncForTesting(int(run(main, flag.CommandLine, os.Args[1:])))
}

func run(main Task, set *flag.FlagSet, args []string) (code ExitCode) {
	// Defer the panic handling
	defer func() {
		switch cause := recover().(type) {
		case nil:
		case ExitCode:
			code = cause
		default:
			fmt.Fprintf(os.Stderr, "%s crashed: %v\n", Name, fault.From(cause))
			code = FatalExit
		}
	}()

	flags := logDefaults()
	flags.Bind(set)
	set.Usage = func() { usage(set, "") }
	if err := set.Parse(args); err != nil {
		return UsageExit
	}

	ctx, cancel := context.WithCancel(prepareContext(&flags))

	// Defer the shutdown code
	shutdownOnce := sync.Once{}
	shutdown := func() {
		shutdownOnce.Do(func() {
			cancel()
			if !waitForCleanup() {
				fmt.Fprintln(os.Stderr, "Timeout waiting for cleanup")
			}
		})
	}
	defer shutdown()

	handleAbortSignals(cancel)

	// Now we are ready to run the main task
	if err := main(ctx); err != nil {
		if code, ok := errors.Cause(err).(ExitCode); ok {
			return code
		}
		log.F(ctx, false, "Main failed\nError: %v", err)
		return FatalExit
	}
	return SuccessExit
}

func handleAbortSignals(cancel context.CancelFunc) {
	// register a signal handler for exits
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, os.Interrupt)
	go func() {
		<-sigchan
		cancel()
	}()
}

// Error lets an ExitCode be returned from the main task to choose the exit
// status without logging a failure.
func (c ExitCode) Error() string {
	return fmt.Sprintf("exit code %d", int(c))
}

// Usage prints message followed by the usage text to stderr, and then exits
// the application with UsageExit.
func Usage(message string, args ...interface{}) {
	usage(flag.CommandLine, message, args...)
}

func usage(set *flag.FlagSet, message string, args ...interface{}) {
	out := set.Output()
	if message != "" {
		fmt.Fprintf(out, message, args...)
		fmt.Fprintln(out)
		fmt.Fprintln(out)
	}
	if ShortHelp != "" {
		fmt.Fprintf(out, "%s: %s\n", Name, ShortHelp)
	}
	fmt.Fprintf(out, "Usage: %s [flags] %s\n", Name, ShortUsage)
	set.PrintDefaults()
	fmt.Fprint(out, UsageFooter)
	panic(UsageExit)
}

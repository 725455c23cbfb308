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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/toddobryan/pyracket/core/app"
	"github.com/toddobryan/pyracket/core/log"
	"github.com/toddobryan/pyracket/rkt/parser"
)

const kindCommand = ":kind"

// repl reads one literal per line until the input ends or is aborted.
// A line of the form ":kind name" changes the kind of literal read.
func repl(ctx context.Context, historyPath string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.W(ctx, "Reading history %v: %v", historyPath, err)
			}
			f.Close()
		}
		app.AddCleanup(ctx, func(ctx context.Context) { saveHistory(ln, historyPath) })
	}

	k := kind
	for line := 1; ctx.Err() == nil; line++ {
		text, err := ln.Prompt(k.String() + "> ")
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, liner.ErrPromptAborted):
			return nil
		case err != nil:
			return log.Err(ctx, err, "Reading input")
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		ln.AppendHistory(text)
		if next, ok, err := command(text, k); ok {
			if err != nil {
				log.E(ctx, "%v", err)
			}
			k = next
			continue
		}
		read(ctx, fmt.Sprintf("<stdin>:%d", line), text, k)
	}
	return nil
}

// command handles a REPL command line, returning the kind to use from now on
// and whether text was a command.
func command(text string, k parser.Kind) (parser.Kind, bool, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || fields[0] != kindCommand {
		return k, false, nil
	}
	if len(fields) != 2 {
		return k, true, errors.Errorf("usage: %s <kind>", kindCommand)
	}
	next := k
	if err := next.Set(fields[1]); err != nil {
		return k, true, err
	}
	return next, true, nil
}

func saveHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	ln.WriteHistory(f)
}

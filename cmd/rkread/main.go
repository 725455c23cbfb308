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

// The rkread command parses Racket literals and prints their syntax trees.
package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/toddobryan/pyracket/core/app"
	"github.com/toddobryan/pyracket/core/log"
	"github.com/toddobryan/pyracket/core/text/parse"
	"github.com/toddobryan/pyracket/rkt/ast"
	"github.com/toddobryan/pyracket/rkt/parser"
)

var (
	kind    = parser.Literal
	exprs   = flag.Bool("e", false, "parse each argument as a literal, instead of as a file name")
	history = flag.String("history", "", "the file to load and save the interactive history in")
)

func init() {
	names := []string{}
	for _, k := range parser.Kinds() {
		names = append(names, k.String())
	}
	flag.Var(&kind, "kind", "the kind of literal to read, one of "+strings.Join(names, ", "))
}

func main() {
	app.ShortHelp = "rkread parses Racket literals and prints their syntax trees"
	app.Name = "rkread"
	app.ShortUsage = "[-e literal...] | [file...]"
	app.UsageFooter = "\nWith no arguments, literals are read interactively, one per line.\n"
	app.Run(run)
}

func run(ctx context.Context) error {
	args := flag.Args()
	switch {
	case *exprs:
		if len(args) == 0 {
			app.Usage("-e needs at least one literal")
		}
		failed := false
		for i, arg := range args {
			if _, err := read(ctx, argName(i), arg, kind); err != nil {
				failed = true
			}
		}
		if failed {
			return app.FatalExit
		}
		return nil
	case len(args) > 0:
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return log.Errf(ctx, err, "Reading %v", path)
			}
			if _, err := read(ctx, path, string(data), kind); err != nil {
				return app.FatalExit
			}
		}
		return nil
	default:
		return repl(ctx, *history)
	}
}

func argName(i int) string {
	return "arg" + strconv.Itoa(i+1)
}

// read parses text as a single literal of kind k, and logs the result.
// Errors are logged before they are returned.
func read(ctx context.Context, name, text string, k parser.Kind) (ast.Node, error) {
	ctx = log.V{"source": name}.Bind(ctx)
	n, err := parser.Parse(ctx, name, text, k, nil)
	if err != nil {
		report(ctx, err)
		return nil, err
	}
	log.I(ctx, "%v", n)
	return n, nil
}

func report(ctx context.Context, err error) {
	if list, ok := err.(parse.ErrorList); ok {
		for _, e := range list {
			log.E(ctx, "%v", e)
		}
		return
	}
	log.E(ctx, "%v", err)
}

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

package app

import (
	"context"
	"flag"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/toddobryan/pyracket/core/assert"
	"github.com/toddobryan/pyracket/core/log"
)

func testFlags() *flag.FlagSet {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	return set
}

func TestRunExitCodes(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name   string
		args   []string
		result error
		expect ExitCode
	}{
		{"success", nil, nil, SuccessExit},
		{"failure", nil, errors.New("broken"), FatalExit},
		{"exit code", nil, errors.Wrap(UsageExit, "bad input"), UsageExit},
		{"bad flag", []string{"-no-such-flag"}, nil, UsageExit},
		{"log flags", []string{"-log-level", "Error", "-log-style", "raw"}, nil, SuccessExit},
	} {
		task := func(ctx context.Context) error { return test.result }
		got := run(task, testFlags(), test.args)
		assert.For(test.name).That(got).Equals(test.expect)
	}
}

func TestRunLogFlags(t *testing.T) {
	assert := assert.To(t)
	run(func(ctx context.Context) error {
		assert.For("debug").ThatBoolean(log.From(ctx).Active(log.Debug)).IsTrue()
		return nil
	}, testFlags(), []string{"-log-level", "debug"})
	run(func(ctx context.Context) error {
		assert.For("warning").ThatBoolean(log.From(ctx).Active(log.Info)).IsFalse()
		return nil
	}, testFlags(), []string{"-log-level", "w"})
}

func TestRunPanic(t *testing.T) {
	assert := assert.To(t)
	got := run(func(ctx context.Context) error { panic("oops") }, testFlags(), nil)
	assert.For("panic").That(got).Equals(FatalExit)
}

func TestCleanup(t *testing.T) {
	assert := assert.To(t)
	calls := []string{}
	first := Cleanup(func(context.Context) { calls = append(calls, "first") })
	second := Cleanup(func(context.Context) { calls = append(calls, "second") })
	var none Cleanup
	none.Then(first).Then(second).Then(nil).Invoke(context.Background())
	assert.For("calls").ThatSlice(calls).Equals([]string{"first", "second"})

	ran := false
	run(func(ctx context.Context) error {
		AddCleanup(ctx, func(context.Context) { ran = true })
		return nil
	}, testFlags(), nil)
	assert.For("ran at shutdown").ThatBoolean(ran).IsTrue()
}

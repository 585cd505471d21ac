// Copyright 2023 Google LLC.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pika

import "github.com/rs/zerolog"

// Options carries the per-grammar/per-parse toggles that the reference
// implementation kept as global state (spec.md 9, "Re-architect as a
// per-parse options struct passed to parse"). The zero value is a fully
// valid, silent default.
type Options struct {
	// Logger receives structured trace events when Trace is set. A nil
	// Logger (the zero value) disables logging entirely, equivalent to
	// zerolog.Nop() — zerolog.Logger's own zero value is not safe to log
	// through, so the pointer indirection is what makes "no logger
	// configured" a valid default.
	Logger *zerolog.Logger

	// Trace enables structured debug logging of grammar construction
	// passes and the driver loop's sweep. Off by default so the hot path
	// pays nothing when unused.
	Trace bool
}

// logger returns a non-nil, safe-to-use logger regardless of whether the
// caller populated Options.Logger. It is zerolog.Nop() unless Logger is set
// and Trace is on.
func (o Options) logger() zerolog.Logger {
	if o.Logger == nil || !o.Trace {
		return zerolog.Nop()
	}
	return *o.Logger
}

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

import "testing"

func TestCharSetMatches(t *testing.T) {
	cs := NewCharSet().AddRange('a', 'z').AddRune('_')
	for _, c := range []rune{'a', 'm', 'z', '_'} {
		if !cs.Matches(c) {
			t.Errorf("expected %q to match", c)
		}
	}
	for _, c := range []rune{'A', '0', ' ', '-'} {
		if cs.Matches(c) {
			t.Errorf("expected %q not to match", c)
		}
	}
}

func TestCharSetInverted(t *testing.T) {
	cs := NewCharSet().AddInvertedRange('0', '9')
	if cs.Matches('5') {
		t.Error("expected digit not to match inverted digit range")
	}
	if !cs.Matches('x') {
		t.Error("expected non-digit to match inverted digit range")
	}
}

func TestCharSetCanonical(t *testing.T) {
	cs := NewCharSet().AddRange('a', 'z')
	if got, want := cs.canonical(), "[a-z]"; got != want {
		t.Errorf("canonical() = %q, want %q", got, want)
	}
	inv := NewCharSet().AddInvertedRange('0', '9')
	if got, want := inv.canonical(), "[^0-9]"; got != want {
		t.Errorf("canonical() = %q, want %q", got, want)
	}
}

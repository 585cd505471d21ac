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

func TestScanCharASCII(t *testing.T) {
	sc := scanChar("abc", 1)
	if !sc.valid || sc.len != 1 || sc.rune != 'b' {
		t.Errorf("scanChar(\"abc\", 1) = %+v, want rune 'b' len 1", sc)
	}
}

func TestScanCharMultiByte(t *testing.T) {
	// "é" is U+00E9, encoded as 0xC3 0xA9 (2 bytes).
	text := "aéb"
	sc := scanChar(text, 1)
	if !sc.valid || sc.len != 2 || sc.rune != 'é' {
		t.Errorf("scanChar(%q, 1) = %+v, want rune U+00E9 len 2", text, sc)
	}
}

func TestScanCharThreeByte(t *testing.T) {
	// "€" is U+20AC, encoded in 3 bytes.
	text := "€"
	sc := scanChar(text, 0)
	if !sc.valid || sc.len != 3 || sc.rune != '€' {
		t.Errorf("scanChar(%q, 0) = %+v, want rune U+20AC len 3", text, sc)
	}
}

func TestScanCharOverlong(t *testing.T) {
	// 0xC0 0x80 is an overlong two-byte encoding of NUL.
	text := string([]byte{0xc0, 0x80})
	sc := scanChar(text, 0)
	if sc.valid {
		t.Errorf("scanChar(overlong) = %+v, want invalid", sc)
	}
}

func TestScanCharTrojanSource(t *testing.T) {
	// U+202E (RIGHT-TO-LEFT OVERRIDE), 3-byte encoding.
	text := "‮"
	sc := scanChar(text, 0)
	if sc.valid {
		t.Errorf("scanChar(bidi override) = %+v, want invalid", sc)
	}
}

func TestScanCharEndOfInput(t *testing.T) {
	sc := scanChar("abc", 3)
	if sc.len != 0 {
		t.Errorf("scanChar at end of input: len = %d, want 0", sc.len)
	}
}

// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"strings"
	"testing"
)

func TestCondense(t *testing.T) {
	const in = "1000,2,56,0,1.00\n2000,4,56,1,3.00\n3000,0,7,3,2.00\n"
	const want = "timestamp,clients,generations,millis\n1000,3.00,1,2.00\n3000,0.00,2,2.00\n"

	var out strings.Builder
	if err := condense(strings.NewReader(in), &out, 2); err != nil {
		t.Fatal(err)
	}
	if out.String() != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, out.String())
	}
}

func TestCondenseErrors(t *testing.T) {
	var out strings.Builder
	if err := condense(strings.NewReader(""), &out, 0); err == nil {
		t.Error("expected error for group 0")
	}
	if err := condense(strings.NewReader("1,2,3\n"), &out, 1); err == nil {
		t.Error("expected error for short row")
	}
	if err := condense(strings.NewReader("1,x,3,4,5\n"), &out, 1); err == nil {
		t.Error("expected error for bad number")
	}
}

package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHasShebang(t *testing.T) {
	tests := []struct {
		in   []byte
		want bool
	}{
		{[]byte("#!/usr/bin/env bash"), true},
		{[]byte("#!/bin/bash"), true},
		{[]byte("#!/bin/sh"), true},
		{[]byte("#! /bin/sh"), true},
		{[]byte("#!foo bar"), false},
		{[]byte("#!/bin/zsh"), false},
		{[]byte("echo hi"), false},
	}
	for _, tt := range tests {
		if got := HasShebang(tt.in); got != tt.want {
			t.Errorf("HasShebang(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCouldBeScript2(t *testing.T) {
	dir := t.TempDir()
	names := map[string]ScriptConfidence{
		"build.sh":  ConfIsScript,
		"deploy.sh": ConfIsScript,
		"README.md": ConfNotScript,
		".hidden":   ConfNotScript,
		"run":       ConfIfShebang,
	}
	for name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}
	names["subdir"] = ConfNotScript

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		want, ok := names[e.Name()]
		if !ok {
			t.Fatalf("unexpected entry %q", e.Name())
		}
		if got := CouldBeScript2(e); got != want {
			t.Errorf("CouldBeScript2(%q) = %v, want %v", e.Name(), got, want)
		}
	}
}

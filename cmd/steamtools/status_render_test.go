package main

import (
	"io"
	"strings"
	"testing"
)

func TestRenderStatusLinePlain(t *testing.T) {
	got := renderStatusLine("Index", statusWarn, "no installed games found", false)
	if got != "  Index:           [WARN] no installed games found" {
		t.Fatalf("unexpected status line %q", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("expected no ANSI codes, got %q", got)
	}
}

func TestRenderStatusLineColorized(t *testing.T) {
	got := renderStatusLine("Index", statusOK, "", true)
	if !strings.Contains(got, "\x1b[32m") || !strings.Contains(got, "[OK]") {
		t.Fatalf("expected green OK line, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatal("expected non-file writer to disable color")
	}
}

func TestRenderTablePadsRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, []columnAlignment{alignLeft, alignRight})
	if !strings.Contains(out, "only") || !strings.Contains(out, "A") {
		t.Fatalf("unexpected table %q", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}

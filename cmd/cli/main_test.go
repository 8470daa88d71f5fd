package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTruncate(t *testing.T) {
	if got := truncate("khata", 10); got != "khata" {
		t.Fatalf("expected short string unchanged, got %q", got)
	}
	if got := truncate("wholesale flour purchase", 10); got != "wholesa..." {
		t.Fatalf("expected truncated string, got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON([]byte(`{"total":2}`))
	})

	if out != "{\n  \"total\": 2\n}\n" {
		t.Fatalf("unexpected json output:\n%s", out)
	}

	out = captureOutput(t, func() {
		printJSON([]byte("not json"))
	})
	if out != "not json\n" {
		t.Fatalf("expected raw passthrough for invalid json, got %q", out)
	}
}

func TestPrintStatement(t *testing.T) {
	body := []byte(`{
		"party": {"name": "Ali Traders", "type": "Customer"},
		"rows": [
			{"no": "1-2", "date": "-", "description": "Previous entries", "debit": "500", "credit": "100", "balance": "400"},
			{"no": "3", "date": "2024-03-05", "description": "Invoice INV-9", "debit": "200", "credit": "-", "balance": "600"}
		],
		"closingBalance": "600",
		"status": "Due"
	}`)

	out := captureOutput(t, func() {
		printStatement(body)
	})

	for _, want := range []string{
		"Statement for Ali Traders (Customer)",
		"1-2",
		"Invoice INV-9",
		"Closing balance: 600 (Due)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

package core

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGenerateNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-(\d+)-(\d{1,3})$`)

	before := time.Now().UnixMilli()
	n := generateOrderNumber()
	after := time.Now().UnixMilli()

	m := pattern.FindStringSubmatch(n)
	if m == nil {
		t.Fatalf("Order number %q does not match expected format", n)
	}

	ts, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		t.Fatalf("Timestamp segment %q is not an integer: %v", m[1], err)
	}
	if ts < before || ts > after {
		t.Errorf("Timestamp %d outside window [%d, %d]", ts, before, after)
	}

	suffix, err := strconv.Atoi(m[2])
	if err != nil {
		t.Fatalf("Suffix segment %q is not an integer: %v", m[2], err)
	}
	if suffix < 0 || suffix > 999 {
		t.Errorf("Suffix %d outside [0, 999]", suffix)
	}
}

func TestGenerateNumberPrefixes(t *testing.T) {
	if n := generateOrderNumber(); !strings.HasPrefix(n, "ORD-") {
		t.Errorf("Order number %q missing ORD- prefix", n)
	}
	if n := generateInvoiceNumber(); !strings.HasPrefix(n, "INV-") {
		t.Errorf("Invoice number %q missing INV- prefix", n)
	}
}

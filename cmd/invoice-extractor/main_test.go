package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOutputPath(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"invoice.pdf", "invoice.json"},
		{"scans/march/invoice.PDF", "scans/march/invoice.json"},
		{"receipt.jpeg", "receipt.json"},
		{"noext", "noext.json"},
		{"dir.v2/doc.pdf", "dir.v2/doc.json"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, defaultOutputPath(tc.input), "input %q", tc.input)
	}
}

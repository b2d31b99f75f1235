package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"report.pdf":             "report.pdf",
		"my notes.docx":          "my_notes.docx",
		"../../etc/passwd":       "passwd",
		"..\\..\\evil.pdf":       "evil.pdf",
		"weird$chars%here.doc":   "weird_chars_here.doc",
		"UPPER-case_ok.123.PDF":  "UPPER-case_ok.123.PDF",
		"..":                     "",
		"":                       "",
		"???":                    "",
	}

	for input, want := range cases {
		assert.Equal(t, want, SanitizeFilename(input), "input %q", input)
	}
}

func TestFileExt(t *testing.T) {
	assert.Equal(t, ".pdf", FileExt("Report.PDF"))
	assert.Equal(t, ".docx", FileExt("notes.docx"))
	assert.Equal(t, "", FileExt("noextension"))
}

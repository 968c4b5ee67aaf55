//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubRejectsEveryCall(t *testing.T) {
	var c Client
	tests := []struct {
		name string
		call func() error
	}{
		{"New", func() error { _, err := New(); return err }},
		{"Words", func() error { _, err := c.Words([]byte{0x89, 'P', 'N', 'G'}); return err }},
		{"SetLanguage", func() error { return c.SetLanguage("por+eng") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrOCRNotEnabled) {
				t.Errorf("err = %v, want ErrOCRNotEnabled", err)
			}
		})
	}
}

func TestStubNewReturnsNoClient(t *testing.T) {
	c, _ := New()
	if c != nil {
		t.Fatalf("New() = %v, want nil client", c)
	}
	if err := c.Close(); err != nil {
		t.Errorf("nil Close() = %v", err)
	}
}

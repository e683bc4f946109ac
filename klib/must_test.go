package klib

import (
	"errors"
	"testing"
)

func TestMustReturn(t *testing.T) {
	if got := MustReturn(5, nil); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	Must(errors.New("boom"))
}

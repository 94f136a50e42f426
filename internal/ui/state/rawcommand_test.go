package state

import (
	"errors"
	"strconv"
	"testing"
)

func TestRawCommandConcatenatesDigits(t *testing.T) {
	sequences := []string{"0", "7", "12", "007", "4096"}
	for _, seq := range sequences {
		var c RawCommand
		for _, r := range seq {
			if !c.Push(r) {
				t.Fatalf("expected digit %q to be accepted", r)
			}
		}
		got, err := c.Number()
		if err != nil {
			t.Fatalf("%q: unexpected error %v", seq, err)
		}
		want, _ := strconv.Atoi(seq)
		if got != want {
			t.Fatalf("%q: expected %d, got %d", seq, want, got)
		}
	}
}

func TestRawCommandIgnoresNonDigits(t *testing.T) {
	var c RawCommand
	for _, r := range "1a2 g" {
		c.Push(r)
	}
	if c.String() != "12" {
		t.Fatalf("expected only digits to be kept, got %q", c.String())
	}
}

func TestRawCommandClearThenNumberFails(t *testing.T) {
	var c RawCommand
	c.Push('4')
	c.Push('2')
	c.Clear()
	if !c.Empty() {
		t.Fatalf("expected buffer to be empty after clear")
	}
	if _, err := c.Number(); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestRawCommandRejectsCorruptBuffer(t *testing.T) {
	c := RawCommand{text: []rune("1x")}
	if _, err := c.Number(); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for non-digit content, got %v", err)
	}
	huge := RawCommand{text: []rune("99999999999999999999999")}
	if _, err := huge.Number(); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse on overflow, got %v", err)
	}
}

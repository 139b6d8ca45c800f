package simerr

import (
	"errors"
	"testing"
)

func TestIsMatchesKind(t *testing.T) {
	err := New(BadData, "missing weapon field")
	if !Is(err, BadData) {
		t.Fatal("expected Is to match BadData")
	}
	if Is(err, SaveIo) {
		t.Fatal("expected Is to not match a different kind")
	}
}

func TestIsFalseForForeignError(t *testing.T) {
	if Is(errors.New("plain error"), BadData) {
		t.Fatal("a non-simerr error should never match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(SaveIo, "writing checkpoint", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to see through to the wrapped cause")
	}
}

func TestKindStringNames(t *testing.T) {
	cases := map[Kind]string{
		BadData:         "BadData",
		InvariantBroken: "InvariantBroken",
		ResourceCap:     "ResourceCap",
		SaveIo:          "SaveIo",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Fatalf("expected %s, got %s", want, k.String())
		}
	}
}

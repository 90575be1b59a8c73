package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "jsonstore.load",
		Kind: KindStoreCorrupt,
		Path: "data.json",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindStoreCorrupt {
		t.Fatalf("expected kind %s", KindStoreCorrupt)
	}
	if !strings.Contains(err.Error(), "path=data.json") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "x", Kind: KindConflict}
	if !IsKind(err, KindConflict) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindConflict) {
		t.Fatalf("expected IsKind=false for plain errors")
	}
}

func TestNilOpError(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("unexpected nil message %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("usecase.edit_room", "room", "Suite")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound in chain, got %v", err)
	}
	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected KindNotFound")
	}
	if !strings.Contains(err.Error(), `"Suite"`) {
		t.Fatalf("expected key in message, got %q", err.Error())
	}
}

package manager

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorHelpersAndStatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		is     func(error) bool
		status int
	}{
		{ErrNoNameProvided, IsNoName, http.StatusBadRequest},
		{ErrNotAvailable("x", []string{"a"}), IsNotAvailable, http.StatusBadRequest},
		{&InitError{Name: "x", Cause: errors.New("c")}, IsInitError, http.StatusBadRequest},
		{&ExecError{Name: "x", Cause: errors.New("c")}, IsExecError, http.StatusInternalServerError},
	}
	for _, c := range cases {
		wrapped := fmt.Errorf("ctx: %w", c.err)
		if !c.is(wrapped) {
			t.Fatalf("helper did not match wrapped %T", c.err)
		}
		sc, ok := c.err.(interface{ StatusCode() int })
		if !ok || sc.StatusCode() != c.status {
			t.Fatalf("%T status mismatch", c.err)
		}
	}
	if IsNotAvailable(ErrNoNameProvided) || IsNoName(errors.New("other")) {
		t.Fatalf("helpers matched unrelated errors")
	}
}

func TestNotAvailableMessage(t *testing.T) {
	err := ErrNotAvailable("Foo", []string{"echo", "dumb"})
	if got, want := err.Error(), "Invalid model: Foo. Available models: echo, dumb"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

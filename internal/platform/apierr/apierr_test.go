package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestValidationCarriesFieldMessages(t *testing.T) {
	err := Validation("tags", "tags must not repeat")
	if err.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", err.Status, http.StatusBadRequest)
	}
	if err.Code != CodeValidation {
		t.Fatalf("unexpected code: got=%q want=%q", err.Code, CodeValidation)
	}
	msgs := err.Fields["tags"]
	if len(msgs) != 1 || msgs[0] != "tags must not repeat" {
		t.Fatalf("unexpected field messages: %v", err.Fields)
	}
	if err.Error() != "tags: tags must not repeat" {
		t.Fatalf("unexpected error string: %q", err.Error())
	}
}

func TestAsUnwrapsThroughWrapping(t *testing.T) {
	inner := NotFound("recipe not found")
	wrapped := fmt.Errorf("handling request: %w", inner)

	apiErr, ok := As(wrapped)
	if !ok {
		t.Fatalf("expected an *Error in the chain")
	}
	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("unexpected status: got=%d want=%d", apiErr.Status, http.StatusNotFound)
	}
	if _, ok := As(errors.New("plain")); ok {
		t.Fatalf("plain error should not match")
	}
}

func TestStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want int
	}{
		{name: "already_exists", err: AlreadyExists("dup"), want: http.StatusBadRequest},
		{name: "bad_request", err: BadRequest("nope"), want: http.StatusBadRequest},
		{name: "self_subscription", err: SelfSubscription(), want: http.StatusBadRequest},
		{name: "not_found", err: NotFound("gone"), want: http.StatusNotFound},
		{name: "forbidden", err: Forbidden("no"), want: http.StatusForbidden},
		{name: "unauthorized", err: Unauthorized("who"), want: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Status != tc.want {
				t.Fatalf("unexpected status: got=%d want=%d", tc.err.Status, tc.want)
			}
		})
	}
}

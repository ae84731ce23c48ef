package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrMissingAddress, "no URL provided"},
		{ErrMissingDiscoveryMetadata, "API documentation not provided"},
		{ErrMissingEntryPoint, "API documentation has no entry point defined"},
		{ErrNoHandlerRegistered, "no hypermedia processor registered"},
		{ErrUnsupportedRepresentation, "response format not supported"},
	}
	for _, tt := range tests {
		assert.EqualError(t, tt.err, tt.want)
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{StatusCode: http.StatusNotFound}
	assert.EqualError(t, err, "remote server responded with status 404")
}

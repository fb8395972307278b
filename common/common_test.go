package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("BQ_METADATA_SET", "value")
	t.Setenv("BQ_METADATA_EMPTY", "")

	assert.Equal(t, "value", GetEnv("BQ_METADATA_SET", "fallback"))
	assert.Equal(t, "", GetEnv("BQ_METADATA_EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BQ_METADATA_UNSET", "fallback"))
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: ""},
		{name: "single", in: "_mirror", want: []string{"_mirror"}},
		{name: "spaces and empty entries", in: " _mirror, ,_preprod ,", want: []string{"_mirror", "_preprod"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAndTrim(tt.in))
		})
	}
}

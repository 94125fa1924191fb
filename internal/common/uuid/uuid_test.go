package uuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUUIDIsValid(t *testing.T) {
	generator := New()

	first := generator.NewUUID()
	second := generator.NewUUID()

	assert.True(t, IsValid(first))
	assert.True(t, IsValid(second))
	assert.NotEqual(t, first, second)
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "canonical", id: "3f1c2a9e-8b4d-4c6a-9e2f-1a2b3c4d5e6f", want: true},
		{name: "empty", id: "", want: false},
		{name: "without dashes", id: "3f1c2a9e8b4d4c6a9e2f1a2b3c4d5e6f", want: false},
		{name: "braced", id: "{3f1c2a9e-8b4d-4c6a-9e2f-1a2b3c4d5e6f}", want: false},
		{name: "not hex", id: "zzzzzzzz-8b4d-4c6a-9e2f-1a2b3c4d5e6f", want: false},
		{name: "free text", id: "game-1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.id))
		})
	}
}

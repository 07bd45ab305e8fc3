package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "Buy milk", want: "Buy milk"},
		{name: "trimmed", raw: "  Buy milk \t", want: "Buy milk"},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
		{name: "newlines only", raw: "\n\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeName(tt.raw)
			if tt.wantErr {
				assert.NotNil(t, AsValidation(err))
				assert.EqualError(t, err, "Name is required")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsValidation_Wrapped(t *testing.T) {
	err := fmt.Errorf("add: %w", &ValidationError{Field: "name", Message: "Name is required"})
	ve := AsValidation(err)
	if assert.NotNil(t, ve) {
		assert.Equal(t, "name", ve.Field)
	}
	assert.Nil(t, AsValidation(ErrNotFound))
	assert.Nil(t, AsValidation(errors.New("db down")))
}

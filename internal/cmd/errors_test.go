package cmd_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appmodel/apphost/internal/cmd"
	"github.com/appmodel/apphost/internal/model"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: cmd.ExitSuccess},
		{name: "plain error", err: errors.New("boom"), expected: cmd.ExitGeneralError},
		{name: "explicit exit error", err: cmd.NewExitError(errors.New("boom"), cmd.ExitNotFound), expected: cmd.ExitNotFound},
		{name: "wrapped exit error", err: fmt.Errorf("outer: %w", cmd.NewExitError(errors.New("boom"), cmd.ExitValidationError)), expected: cmd.ExitValidationError},
		{name: "file not found", err: fmt.Errorf("loading: %w", fs.ErrNotExist), expected: cmd.ExitNotFound},
		{name: "no connection string", err: model.ErrNoConnectionString, expected: cmd.ExitNotFound},
		{name: "duplicate resource", err: model.ErrDuplicateResource, expected: cmd.ExitValidationError},
		{name: "duplicate endpoint", err: model.ErrDuplicateEndpoint, expected: cmd.ExitValidationError},
		{name: "invalid name", err: model.ErrInvalidName, expected: cmd.ExitValidationError},
		{name: "unresolved placeholder", err: model.ErrUnresolvedPlaceholder, expected: cmd.ExitValidationError},
		{name: "missing allocation", err: model.ErrMissingAllocation, expected: cmd.ExitValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cmd.ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	t.Run("unwraps to the inner error", func(t *testing.T) {
		inner := model.ErrInvalidName
		err := cmd.NewExitError(fmt.Errorf("wrapped: %w", inner), cmd.ExitValidationError)
		assert.ErrorIs(t, err, inner)
		assert.Equal(t, "wrapped: "+inner.Error(), err.Error())
	})
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", cmd.ExitCodeName(cmd.ExitSuccess))
	assert.Equal(t, "General Error", cmd.ExitCodeName(cmd.ExitGeneralError))
	assert.Equal(t, "Validation Error", cmd.ExitCodeName(cmd.ExitValidationError))
	assert.Equal(t, "Not Found", cmd.ExitCodeName(cmd.ExitNotFound))
	assert.Equal(t, "Unknown", cmd.ExitCodeName(42))
}

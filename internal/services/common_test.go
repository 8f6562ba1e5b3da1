package services

import (
	"context"
	"errors"
	"testing"

	"portal/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompensations_RunInReverse(t *testing.T) {
	var order []int
	var undo compensations
	for i := 1; i <= 3; i++ {
		i := i
		undo.add(func(ctx context.Context) error {
			order = append(order, i)
			if i == 2 {
				return errors.New("step failed")
			}
			return ctx.Err()
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	undo.run(ctx)

	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestValidateStruct(t *testing.T) {
	type body struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"omitempty,email"`
	}

	require.NoError(t, validateStruct(body{Name: "x"}))

	err := validateStruct(body{Email: "nope"})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindInvalid, appErr.Kind)
	assert.Equal(t, map[string]string{
		"name":  "Field 'name' failed on the 'required' tag",
		"email": "Field 'email' failed on the 'email' tag",
	}, appErr.Fields)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "applied", OutcomeApplied.String())
	assert.Equal(t, "no-op", OutcomeNoOp.String())
}

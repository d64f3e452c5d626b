package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/impact-mesh/lantern/pkg/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid id is a user error", types.ErrInvalidID, exitUserError},
		{"wrapped empty batch is a user error", fmt.Errorf("attach: %w", types.ErrEmptyBatch), exitUserError},
		{"unknown backend is a user error", types.ErrBackendUnknown, exitUserError},
		{"invalid entity kind is a user error", fmt.Errorf("link evidence: %w", types.ErrInvalidEntityKind), exitUserError},
		{"store failure is a system error", errors.New("database is locked"), exitSysError},
		{"detached backend is a system error", types.ErrDetached, exitSysError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestEntityKindList(t *testing.T) {
	assert.Equal(t, "activity, indicator, asset, publication", entityKindList())
}

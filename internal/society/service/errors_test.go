package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strataworks/societyd/internal/society/identity"
	"github.com/strataworks/societyd/internal/society/store"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{ErrInvalidRequest, KindValidation},
		{ErrInvalidJoinCode, KindValidation},
		{ErrInvalidComplaintStatus, KindValidation},
		{ErrUnknownJoinCode, KindNotFound},
		{ErrPoolNotFound, KindNotFound},
		{ErrReservationNotFound, KindNotFound},
		{store.ErrNotFound, KindNotFound},
		{identity.ErrEmailTaken, KindConflict},
		{ErrNoUnitsAvailable, KindConflict},
		{ErrConcurrentUpdate, KindConflict},
		{store.ErrConflict, KindConflict},
		{ErrAuthenticationFailed, KindUnauthenticated},
		{ErrProfileMissing, KindAnomaly},
		{errors.New("some infrastructure failure"), KindDependency},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Classify(tc.err), "classify %v", tc.err)
	}
}

func TestClassify_SeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("reserve unit: %w", ErrConcurrentUpdate)
	require.Equal(t, KindConflict, Classify(wrapped))
}

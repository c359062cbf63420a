package uistate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_PutGetDelete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	// absent client -> (nil, nil)
	got, err := repo.Get(ctx, "op-1")
	require.NoError(t, err)
	require.Nil(t, got)

	st := NewState()
	require.NoError(t, st.Select(TabAppointments))
	require.NoError(t, repo.Put(ctx, "op-1", st))

	got, err = repo.Get(ctx, "op-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, TabAppointments, got.ActiveTab)

	// stored state is a copy; mutating the returned value changes nothing
	got.ActiveTab = TabSettings
	again, err := repo.Get(ctx, "op-1")
	require.NoError(t, err)
	require.Equal(t, TabAppointments, again.ActiveTab)

	require.NoError(t, repo.Delete(ctx, "op-1"))
	got, err = repo.Get(ctx, "op-1")
	require.NoError(t, err)
	require.Nil(t, got)
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-bank-records/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-records/internal/app/core/usecase"
)

func newRegistry(t *testing.T) (*usecase.ClientRegistry, *memory.MutexStore) {
	t.Helper()
	store, err := memory.NewMutexStore(nil)
	require.NoError(t, err)
	return usecase.NewClientRegistry(store, zap.NewNop()), store
}

func mustClient(t *testing.T, nationalID string) *domain.Client {
	t.Helper()
	bd := time.Date(1998, 3, 21, 0, 0, 0, 0, time.UTC)
	c, err := domain.NewClient(nationalID, domain.ClientProfile{
		FirstName:   "Rosa",
		LastName:    "Santos",
		Email:       "rosa@mail.com",
		PhoneNumber: "987654321",
		BirthDate:   &bd,
		Address:     "Av. Primavera 123",
	})
	require.NoError(t, err)
	return c
}

func TestClientRegistry_Create(t *testing.T) {
	registry, _ := newRegistry(t)
	ctx := context.Background()

	created, err := registry.Create(ctx, mustClient(t, "11223344"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = registry.Create(ctx, mustClient(t, "11223344"))
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	_, err = registry.Create(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	// 繞過 NewClient 的空白身分證號
	_, err = registry.Create(ctx, domain.RestoreClient(0, "   ", domain.ClientProfile{}))
	assert.ErrorIs(t, err, domain.ErrNationalIDRequired)
}

func TestClientRegistry_Find(t *testing.T) {
	registry, _ := newRegistry(t)
	ctx := context.Background()
	created, err := registry.Create(ctx, mustClient(t, "11223344"))
	require.NoError(t, err)

	got, ok, err := registry.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "11223344", got.NationalID())
	assert.Equal(t, "rosa@mail.com", got.Email)

	got, ok, err = registry.FindByNationalID(ctx, "11223344")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created.ID, got.ID)

	got, ok, err = registry.FindByID(ctx, created.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)

	_, ok, err = registry.FindByNationalID(ctx, "99999999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientRegistry_ListAll(t *testing.T) {
	registry, _ := newRegistry(t)
	ctx := context.Background()

	empty, err := registry.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	var ids []int64
	for _, nid := range []string{"3", "1", "2"} {
		c, err := registry.Create(ctx, mustClient(t, nid))
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	list, err := registry.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, c := range list {
		assert.Equal(t, ids[i], c.ID)
	}
}

func TestClientRegistry_UpdateKeepsNationalID(t *testing.T) {
	registry, _ := newRegistry(t)
	ctx := context.Background()
	created, err := registry.Create(ctx, mustClient(t, "11223344"))
	require.NoError(t, err)

	payload := domain.RestoreClient(created.ID, "55555555", domain.ClientProfile{
		FirstName:   "Rosa María",
		LastName:    "Santos",
		Email:       "rosa.actualizado@mail.com",
		PhoneNumber: "999888777",
		Address:     "Jr. Los Tulipanes 456",
	})
	updated, err := registry.Update(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "11223344", updated.NationalID())
	assert.Equal(t, "Rosa María", updated.FirstName)
	assert.Equal(t, "55555555", payload.NationalID())

	got, ok, err := registry.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "11223344", got.NationalID())
	assert.Equal(t, "Rosa María", got.FirstName)
	assert.Equal(t, "rosa.actualizado@mail.com", got.Email)
	assert.Nil(t, got.BirthDate)

	_, ok, err = registry.FindByNationalID(ctx, "55555555")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientRegistry_UpdateErrors(t *testing.T) {
	registry, _ := newRegistry(t)
	ctx := context.Background()

	_, err := registry.Update(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = registry.Update(ctx, mustClient(t, "11223344"))
	assert.ErrorIs(t, err, domain.ErrClientIDRequired)

	_, err = registry.Update(ctx, domain.RestoreClient(42, "11223344", domain.ClientProfile{}))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientRegistry_Delete(t *testing.T) {
	registry, store := newRegistry(t)
	ctx := context.Background()
	a, err := registry.Create(ctx, mustClient(t, "1"))
	require.NoError(t, err)
	b, err := registry.Create(ctx, mustClient(t, "2"))
	require.NoError(t, err)

	removed, err := registry.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = registry.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	ledger := usecase.NewAccountLedger(store, zap.NewNop())
	_, err = ledger.OpenAccount(ctx, usecase.OpenAccountRequest{
		ClientID:    b.ID,
		AccountType: domain.AccountTypeSavings,
		Currency:    domain.CurrencyPEN,
	})
	require.NoError(t, err)

	_, err = registry.Delete(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	_, ok, err := registry.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

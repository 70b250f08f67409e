package usecase

import (
	"context"
	"testing"

	"makon/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWalletStore struct {
	balances map[uuid.UUID]int
	freezes  map[uuid.UUID]int
	txs      []domain.WalletTransaction
}

func newFakeWalletStore() *fakeWalletStore {
	return &fakeWalletStore{
		balances: map[uuid.UUID]int{},
		freezes:  map[uuid.UUID]int{},
	}
}

func (f *fakeWalletStore) GetBalance(_ context.Context, userID uuid.UUID) (int, error) {
	return f.balances[userID], nil
}

func (f *fakeWalletStore) PurchaseFreeze(_ context.Context, userID uuid.UUID, price int, comment string) (int, error) {
	// Повторяет контракт условного списания: либо всё, либо ничего
	if f.balances[userID] < price {
		return 0, domain.ErrInsufficientFunds
	}
	f.balances[userID] -= price
	f.freezes[userID]++
	f.txs = append(f.txs, domain.WalletTransaction{
		UserID: userID, Amount: -price, Kind: "purchase", Comment: comment,
	})
	return f.balances[userID], nil
}

func (f *fakeWalletStore) ListTransactions(_ context.Context, userID uuid.UUID, _ int) ([]domain.WalletTransaction, error) {
	var out []domain.WalletTransaction
	for _, tx := range f.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func TestBuyUnknownItem(t *testing.T) {
	wallet := newFakeWalletStore()
	u := NewShopUseCase(wallet)
	userID := uuid.New()
	wallet.balances[userID] = 50000

	_, err := u.Buy(context.Background(), userID, "golden_ticket", 10000)

	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.Equal(t, 50000, wallet.balances[userID])
	assert.Equal(t, 0, wallet.freezes[userID])
}

func TestBuyInsufficientFunds(t *testing.T) {
	wallet := newFakeWalletStore()
	u := NewShopUseCase(wallet)
	userID := uuid.New()
	wallet.balances[userID] = 5000

	_, err := u.Buy(context.Background(), userID, domain.ItemStreakFreeze, 10000)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 5000, wallet.balances[userID])
	assert.Equal(t, 0, wallet.freezes[userID])
	assert.Empty(t, wallet.txs)
}

func TestBuySuccess(t *testing.T) {
	wallet := newFakeWalletStore()
	u := NewShopUseCase(wallet)
	userID := uuid.New()
	wallet.balances[userID] = 25000

	newBalance, err := u.Buy(context.Background(), userID, domain.ItemStreakFreeze, 10000)

	require.NoError(t, err)
	assert.Equal(t, 15000, newBalance)
	assert.Equal(t, 15000, wallet.balances[userID])
	assert.Equal(t, 1, wallet.freezes[userID])
	require.Len(t, wallet.txs, 1)
	assert.Equal(t, -10000, wallet.txs[0].Amount)
}

func TestWalletView(t *testing.T) {
	wallet := newFakeWalletStore()
	u := NewShopUseCase(wallet)
	userID := uuid.New()
	wallet.balances[userID] = 30000

	_, err := u.Buy(context.Background(), userID, domain.ItemStreakFreeze, 10000)
	require.NoError(t, err)

	view, err := u.Wallet(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 20000, view.Balance)
	require.Len(t, view.Transactions, 1)
	assert.Equal(t, "purchase", view.Transactions[0].Kind)
}

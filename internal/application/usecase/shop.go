package usecase

import (
	"context"
	"errors"

	"makon/internal/domain"

	"github.com/google/uuid"
)

// ErrUnknownItem: такого товара нет в каталоге
var ErrUnknownItem = errors.New("unknown item")

type WalletStore interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (int, error)
	PurchaseFreeze(ctx context.Context, userID uuid.UUID, price int, comment string) (int, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WalletTransaction, error)
}

type ShopUseCase struct {
	wallet WalletStore
}

func NewShopUseCase(wallet WalletStore) *ShopUseCase {
	return &ShopUseCase{wallet: wallet}
}

// Buy проводит покупку: проверка каталога, затем атомарное списание
// и выдача товара одной транзакцией. Возвращает новый баланс.
func (u *ShopUseCase) Buy(ctx context.Context, userID uuid.UUID, itemID string, price int) (int, error) {
	item, ok := domain.ShopCatalog[itemID]
	if !ok {
		return 0, ErrUnknownItem
	}

	return u.wallet.PurchaseFreeze(ctx, userID, price, item.Name)
}

type WalletView struct {
	Balance      int                        `json:"balance"`
	Transactions []domain.WalletTransaction `json:"transactions"`
}

func (u *ShopUseCase) Wallet(ctx context.Context, userID uuid.UUID) (*WalletView, error) {
	balance, err := u.wallet.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	txs, err := u.wallet.ListTransactions(ctx, userID, 50)
	if err != nil {
		return nil, err
	}

	return &WalletView{Balance: balance, Transactions: txs}, nil
}

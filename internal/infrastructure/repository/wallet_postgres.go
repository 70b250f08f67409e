package repository

import (
	"context"

	"makon/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) GetBalance(ctx context.Context, userID uuid.UUID) (int, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Select("wallet_balance").
		Where("id = ?", userID).
		First(&user).Error
	return user.WalletBalance, err
}

// PurchaseFreeze списывает price с кошелька и выдаёт одну заморозку стрика.
// Всё в одной транзакции: условное списание (баланс не уходит в минус даже
// при конкурентных покупках), инкремент freeze_count и строка в истории.
func (r *WalletRepository) PurchaseFreeze(ctx context.Context, userID uuid.UUID, price int, comment string) (int, error) {
	var newBalance int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.User{}).
			Where("id = ? AND wallet_balance >= ?", userID, price).
			Update("wallet_balance", gorm.Expr("wallet_balance - ?", price))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInsufficientFunds
		}

		// Строки стрика может ещё не быть
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"freeze_count": gorm.Expr("user_streaks.freeze_count + 1"),
			}),
		}).Create(&domain.UserStreak{UserID: userID, FreezeCount: 1}).Error
		if err != nil {
			return err
		}

		err = tx.Create(&domain.WalletTransaction{
			ID:      uuid.New(),
			UserID:  userID,
			Amount:  -price,
			Kind:    "purchase",
			Comment: comment,
		}).Error
		if err != nil {
			return err
		}

		var user domain.User
		if err := tx.Select("wallet_balance").Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		newBalance = user.WalletBalance
		return nil
	})

	return newBalance, err
}

func (r *WalletRepository) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WalletTransaction, error) {
	var txs []domain.WalletTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&txs).Error
	return txs, err
}

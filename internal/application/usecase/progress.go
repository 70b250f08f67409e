package usecase

import (
	"context"
	"log"
	"time"

	"makon/internal/domain"

	"github.com/google/uuid"
)

// XP за завершённый урок
const xpPerLesson = 20

type ProgressStore interface {
	Upsert(ctx context.Context, p *domain.UserProgress) (wasCompleted bool, err error)
	List(ctx context.Context, userID uuid.UUID, courseID string) ([]domain.UserProgress, error)
}

type StreakStore interface {
	// Get возвращает (nil, nil), если строки у пользователя ещё нет
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error)
	Save(ctx context.Context, streak *domain.UserStreak) error
}

type XPStore interface {
	AddXP(ctx context.Context, userID uuid.UUID, amount int) (int, error)
}

type LeaderboardUpdater interface {
	SetScore(ctx context.Context, userID string, totalXP int) error
}

type ProgressUseCase struct {
	progress    ProgressStore
	streaks     StreakStore
	xp          XPStore
	leaderboard LeaderboardUpdater

	now func() time.Time
}

func NewProgressUseCase(p ProgressStore, s StreakStore, x XPStore, lb LeaderboardUpdater) *ProgressUseCase {
	return &ProgressUseCase{
		progress:    p,
		streaks:     s,
		xp:          x,
		leaderboard: lb,
		now:         time.Now,
	}
}

// SaveProgress сохраняет запись просмотра и запускает геймификацию.
// Ошибка возвращается только если не удалось сохранить сам прогресс:
// стрик и XP не критичны, их сбои логируются и глотаются.
func (u *ProgressUseCase) SaveProgress(ctx context.Context, userID uuid.UUID, courseID, lessonID string, seconds int, completed bool) (*domain.UserProgress, error) {
	now := u.now()

	record := &domain.UserProgress{
		UserID:          userID,
		CourseID:        courseID,
		LessonID:        lessonID,
		ProgressSeconds: seconds,
		Completed:       completed,
		LastAccessed:    now,
	}

	wasCompleted, err := u.progress.Upsert(ctx, record)
	if err != nil {
		return nil, err
	}

	u.updateStreak(ctx, userID, now)

	// XP начисляем только на переходе "не завершён -> завершён",
	// повторная отправка завершённого урока ничего не даёт
	if record.Completed && !wasCompleted {
		u.awardXP(ctx, userID)
	}

	return record, nil
}

func (u *ProgressUseCase) GetProgress(ctx context.Context, userID uuid.UUID, courseID string) ([]domain.UserProgress, error) {
	return u.progress.List(ctx, userID, courseID)
}

func (u *ProgressUseCase) updateStreak(ctx context.Context, userID uuid.UUID, now time.Time) {
	streak, err := u.streaks.Get(ctx, userID)
	if err != nil {
		// Не смогли прочитать текущее состояние: трогать его нельзя
		log.Printf("Failed to load streak for %s: %v", userID, err)
		return
	}
	if streak == nil {
		// Строки ещё нет, это первая активность
		streak = &domain.UserStreak{UserID: userID}
	}

	if !streak.Advance(now) {
		// Сегодня уже засчитано
		return
	}

	if err := u.streaks.Save(ctx, streak); err != nil {
		log.Printf("Failed to save streak for %s: %v", userID, err)
	}
}

func (u *ProgressUseCase) awardXP(ctx context.Context, userID uuid.UUID) {
	total, err := u.xp.AddXP(ctx, userID, xpPerLesson)
	if err != nil {
		log.Printf("Failed to award XP for %s: %v", userID, err)
		return
	}

	if err := u.leaderboard.SetScore(ctx, userID.String(), total); err != nil {
		log.Printf("Failed to update leaderboard for %s: %v", userID, err)
	}
}

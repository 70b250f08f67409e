package domain

import (
	"time"

	"github.com/google/uuid"
)

// Формат календарной даты стрика (UTC)
const StreakDateLayout = "2006-01-02"

type UserStreak struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CurrentStreak int       `gorm:"default:0" json:"current_streak"`
	LongestStreak int       `gorm:"default:0" json:"longest_streak"`

	// Дата последней активности в формате YYYY-MM-DD, пустая строка = активности ещё не было
	LastActivityDate string `json:"last_activity_date"`

	FreezeCount int `gorm:"default:0" json:"freeze_count"`

	UpdatedAt time.Time `json:"-"`
}

// Advance применяет дневную активность к стрику. Возвращает true, если
// состояние изменилось (повторная активность в тот же день ничего не меняет).
func (s *UserStreak) Advance(now time.Time) bool {
	today := now.UTC().Format(StreakDateLayout)
	if s.LastActivityDate == today {
		return false
	}

	yesterday := now.UTC().AddDate(0, 0, -1).Format(StreakDateLayout)

	if s.LastActivityDate == "" {
		// Первая активность
		s.CurrentStreak = 1
	} else if s.LastActivityDate == yesterday {
		s.CurrentStreak++
	} else if s.LastActivityDate < yesterday {
		if s.FreezeCount > 0 {
			// Тратим одну заморозку: она прощает пропуск любой длины
			s.FreezeCount--
			s.CurrentStreak++
		} else {
			// Стрик сгорел
			s.CurrentStreak = 1
		}
	}
	// Дата из будущего (перевод часов): счётчик не трогаем, только дату

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastActivityDate = today

	return true
}

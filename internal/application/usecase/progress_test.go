package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"makon/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProgressStore struct {
	records  map[string]*domain.UserProgress
	failNext bool
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: map[string]*domain.UserProgress{}}
}

func (f *fakeProgressStore) Upsert(_ context.Context, p *domain.UserProgress) (bool, error) {
	if f.failNext {
		return false, errors.New("db down")
	}
	key := p.UserID.String() + "/" + p.LessonID
	existing, ok := f.records[key]
	if !ok {
		p.ID = uuid.New()
		cp := *p
		f.records[key] = &cp
		return false, nil
	}
	p.ID = existing.ID
	p.Completed = p.Completed || existing.Completed
	wasCompleted := existing.Completed
	cp := *p
	f.records[key] = &cp
	return wasCompleted, nil
}

func (f *fakeProgressStore) List(_ context.Context, userID uuid.UUID, courseID string) ([]domain.UserProgress, error) {
	var out []domain.UserProgress
	for _, r := range f.records {
		if r.UserID == userID && (courseID == "" || r.CourseID == courseID) {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeStreakStore struct {
	streaks   map[uuid.UUID]*domain.UserStreak
	saveCalls int
	failGet   bool
	failSave  bool
}

func newFakeStreakStore() *fakeStreakStore {
	return &fakeStreakStore{streaks: map[uuid.UUID]*domain.UserStreak{}}
}

func (f *fakeStreakStore) Get(_ context.Context, userID uuid.UUID) (*domain.UserStreak, error) {
	if f.failGet {
		return nil, errors.New("connection reset by peer")
	}
	s, ok := f.streaks[userID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStreakStore) Save(_ context.Context, s *domain.UserStreak) error {
	f.saveCalls++
	if f.failSave {
		return errors.New("db down")
	}
	cp := *s
	f.streaks[s.UserID] = &cp
	return nil
}

type fakeXPStore struct {
	totals map[uuid.UUID]int
	fail   bool
}

func newFakeXPStore() *fakeXPStore {
	return &fakeXPStore{totals: map[uuid.UUID]int{}}
}

func (f *fakeXPStore) AddXP(_ context.Context, userID uuid.UUID, amount int) (int, error) {
	if f.fail {
		return 0, errors.New("db down")
	}
	f.totals[userID] += amount
	return f.totals[userID], nil
}

type fakeLeaderboard struct {
	scores map[string]int
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{scores: map[string]int{}}
}

func (f *fakeLeaderboard) SetScore(_ context.Context, userID string, totalXP int) error {
	f.scores[userID] = totalXP
	return nil
}

func newProgressFixture() (*ProgressUseCase, *fakeProgressStore, *fakeStreakStore, *fakeXPStore, *fakeLeaderboard) {
	progress := newFakeProgressStore()
	streaks := newFakeStreakStore()
	xp := newFakeXPStore()
	lb := newFakeLeaderboard()
	u := NewProgressUseCase(progress, streaks, xp, lb)
	return u, progress, streaks, xp, lb
}

func atDay(u *ProgressUseCase, date string) {
	t, err := time.Parse(domain.StreakDateLayout, date)
	if err != nil {
		panic(err)
	}
	u.now = func() time.Time { return t }
}

func TestSaveProgressPersistsRecord(t *testing.T) {
	u, _, _, _, _ := newProgressFixture()
	atDay(u, "2025-06-10")
	userID := uuid.New()

	record, err := u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", 120, false)
	require.NoError(t, err)

	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, "course-1", record.CourseID)
	assert.Equal(t, 120, record.ProgressSeconds)
	assert.False(t, record.Completed)
	assert.NotEqual(t, uuid.Nil, record.ID)
}

func TestSaveProgressFailsOnStoreError(t *testing.T) {
	u, progress, _, _, _ := newProgressFixture()
	atDay(u, "2025-06-10")
	progress.failNext = true

	_, err := u.SaveProgress(context.Background(), uuid.New(), "course-1", "lesson-1", 0, false)
	assert.Error(t, err)
}

func TestSaveProgressAwardsXPOnceOnCompletion(t *testing.T) {
	u, _, _, xp, lb := newProgressFixture()
	atDay(u, "2025-06-10")
	userID := uuid.New()

	_, err := u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", 60, true)
	require.NoError(t, err)
	assert.Equal(t, 20, xp.totals[userID])
	assert.Equal(t, 20, lb.scores[userID.String()])

	// Повторная отправка завершённого урока XP не даёт
	_, err = u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", 90, true)
	require.NoError(t, err)
	assert.Equal(t, 20, xp.totals[userID])
}

func TestSaveProgressNoXPWithoutCompletion(t *testing.T) {
	u, _, _, xp, _ := newProgressFixture()
	atDay(u, "2025-06-10")
	userID := uuid.New()

	_, err := u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", 60, false)
	require.NoError(t, err)
	assert.Equal(t, 0, xp.totals[userID])
}

func TestSaveProgressCompletedIsMonotonic(t *testing.T) {
	u, progress, _, _, _ := newProgressFixture()
	atDay(u, "2025-06-10")
	userID := uuid.New()

	_, err := u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", 60, true)
	require.NoError(t, err)

	// Частичный прогресс после завершения не сбрасывает флаг
	record, err := u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", 30, false)
	require.NoError(t, err)
	assert.True(t, record.Completed)
	assert.True(t, progress.records[userID.String()+"/lesson-1"].Completed)
}

func TestSaveProgressCreatesStreakLazily(t *testing.T) {
	u, _, streaks, _, _ := newProgressFixture()
	atDay(u, "2025-06-10")
	userID := uuid.New()

	_, err := u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", 10, false)
	require.NoError(t, err)

	s := streaks.streaks[userID]
	require.NotNil(t, s)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, "2025-06-10", s.LastActivityDate)
}

func TestSaveProgressStreakOncePerDay(t *testing.T) {
	u, _, streaks, _, _ := newProgressFixture()
	atDay(u, "2025-06-10")
	userID := uuid.New()

	for i := 0; i < 4; i++ {
		_, err := u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", i*10, false)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, streaks.saveCalls)
	assert.Equal(t, 1, streaks.streaks[userID].CurrentStreak)
}

func TestSaveProgressStreakContinuesNextDay(t *testing.T) {
	u, _, streaks, _, _ := newProgressFixture()
	userID := uuid.New()
	streaks.streaks[userID] = &domain.UserStreak{
		UserID: userID, CurrentStreak: 5, LongestStreak: 5, LastActivityDate: "2025-06-09",
	}

	atDay(u, "2025-06-10")
	_, err := u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", 10, false)
	require.NoError(t, err)

	s := streaks.streaks[userID]
	assert.Equal(t, 6, s.CurrentStreak)
	assert.Equal(t, "2025-06-10", s.LastActivityDate)
	assert.Equal(t, 0, s.FreezeCount)
}

func TestSaveProgressStreakFreezeBridgesGap(t *testing.T) {
	u, _, streaks, _, _ := newProgressFixture()
	userID := uuid.New()
	streaks.streaks[userID] = &domain.UserStreak{
		UserID: userID, CurrentStreak: 5, LongestStreak: 5,
		LastActivityDate: "2025-06-07", FreezeCount: 1,
	}

	atDay(u, "2025-06-10")
	_, err := u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", 10, false)
	require.NoError(t, err)

	s := streaks.streaks[userID]
	assert.Equal(t, 6, s.CurrentStreak)
	assert.Equal(t, 0, s.FreezeCount)
}

func TestSaveProgressStreakResetsWithoutFreeze(t *testing.T) {
	u, _, streaks, _, _ := newProgressFixture()
	userID := uuid.New()
	streaks.streaks[userID] = &domain.UserStreak{
		UserID: userID, CurrentStreak: 5, LongestStreak: 5, LastActivityDate: "2025-06-07",
	}

	atDay(u, "2025-06-10")
	_, err := u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", 10, false)
	require.NoError(t, err)

	assert.Equal(t, 1, streaks.streaks[userID].CurrentStreak)
	assert.Equal(t, 5, streaks.streaks[userID].LongestStreak)
}

func TestSaveProgressKeepsStreakWhenReadFails(t *testing.T) {
	u, _, streaks, _, _ := newProgressFixture()
	userID := uuid.New()
	streaks.streaks[userID] = &domain.UserStreak{
		UserID: userID, CurrentStreak: 30, LongestStreak: 40,
		LastActivityDate: "2025-06-09", FreezeCount: 2,
	}
	streaks.failGet = true

	// Сбой чтения не должен превратиться в перезапись чужого состояния
	atDay(u, "2025-06-10")
	_, err := u.SaveProgress(context.Background(), userID, "course-1", "lesson-1", 10, false)
	require.NoError(t, err)

	assert.Equal(t, 0, streaks.saveCalls)
	s := streaks.streaks[userID]
	assert.Equal(t, 30, s.CurrentStreak)
	assert.Equal(t, 40, s.LongestStreak)
	assert.Equal(t, 2, s.FreezeCount)
}

func TestSaveProgressSurvivesGamificationFailures(t *testing.T) {
	u, _, streaks, xp, _ := newProgressFixture()
	atDay(u, "2025-06-10")
	streaks.failSave = true
	xp.fail = true

	// Сам прогресс обязан сохраниться, несмотря на сбои стрика и XP
	record, err := u.SaveProgress(context.Background(), uuid.New(), "course-1", "lesson-1", 10, true)
	require.NoError(t, err)
	assert.True(t, record.Completed)
}

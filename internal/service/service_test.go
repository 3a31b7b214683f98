package service

import (
	"testing"
	"time"

	"go_5_vocab_srs/internal/config"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリSQLiteを用意します。
// モックリポジトリを使うテストでも、トランザクションのために本物の *gorm.DB が必要です。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for service testing")
	require.NoError(t, repository.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixedClock は常に t を返す Clock です。
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			PracticeLimit: 0,
			Timezone:      "UTC",
		},
		Forecast: config.ForecastConfig{
			DefaultDays: 5,
			MaxDays:     30,
		},
	}
}

// reverseShuffler は並び順を反転させる決定的な Shuffler です。
type reverseShuffler struct{}

func (reverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

type pairSpec struct {
	w1, w2          string
	s1              int
	d1              time.Time
	s2              int
	d2              time.Time
	deleted         bool
	createdAtOffset time.Duration
}

func createDictionary(t *testing.T, db *gorm.DB, tenantID uuid.UUID, name string, created time.Time) *model.Dictionary {
	t.Helper()
	d := &model.Dictionary{DictionaryID: uuid.New(), TenantID: tenantID, Name: name, Lang1: "ja", Lang2: "en", CreatedAt: created}
	require.NoError(t, db.Create(d).Error)
	return d
}

func createPair(t *testing.T, db *gorm.DB, dict *model.Dictionary, ps pairSpec) *model.WordPair {
	t.Helper()
	p := &model.WordPair{
		WordPairID:   uuid.New(),
		TenantID:     dict.TenantID,
		DictionaryID: dict.DictionaryID,
		WordInLang1:  ps.w1,
		WordInLang2:  ps.w2,
		Explanation:  ps.w1 + " = " + ps.w2,
		DateAdded:    day(2024, 1, 1),
		First:        model.ReviewColumns{Strength: ps.s1, DueDate: ps.d1},
		Second:       model.ReviewColumns{Strength: ps.s2, DueDate: ps.d2},
		CreatedAt:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC).Add(ps.createdAtOffset),
	}
	require.NoError(t, db.Create(p).Error)
	if ps.deleted {
		require.NoError(t, db.Delete(p).Error)
	}
	return p
}

package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/klimatkollen/klimatkollen/app/models"
)

// recordingLogger keeps every statement gorm builds together with its context
type recordingLogger struct {
	sql  []string
	ctxs []context.Context
}

func (l *recordingLogger) LogMode(logger.LogLevel) logger.Interface { return l }
func (l *recordingLogger) Info(context.Context, string, ...interface{}) {}
func (l *recordingLogger) Warn(context.Context, string, ...interface{}) {}
func (l *recordingLogger) Error(context.Context, string, ...interface{}) {}

func (l *recordingLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, _ := fc()
	l.sql = append(l.sql, sql)
	l.ctxs = append(l.ctxs, ctx)
}

func newDryRunRepository(t *testing.T) (MunicipalityRepository, *recordingLogger) {
	t.Helper()
	rec := &recordingLogger{}
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "klimatkollen:secret@tcp(127.0.0.1:3306)/klimatkollen?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 rec,
	})
	require.NoError(t, err)
	return NewMunicipalityRepository(db), rec
}

type requestKey struct{}

func TestMunicipalityRepository_GetAllUsesContext(t *testing.T) {
	repo, rec := newDryRunRepository(t)
	ctx := context.WithValue(context.Background(), requestKey{}, "req-1")

	_, err := repo.GetAll(ctx)
	require.NoError(t, err)

	require.Len(t, rec.sql, 1)
	assert.Contains(t, rec.sql[0], "ORDER BY id ASC")
	assert.Contains(t, rec.sql[0], "`municipalities`.`deleted_at` IS NULL")
	assert.Equal(t, "req-1", rec.ctxs[0].Value(requestKey{}))
}

func TestMunicipalityRepository_UpsertRestoresDeletedRow(t *testing.T) {
	repo, rec := newDryRunRepository(t)
	ctx := context.WithValue(context.Background(), requestKey{}, "req-2")

	err := repo.Upsert(ctx, &models.Municipality{
		Name:               "Lund",
		HistoricalEmission: models.HistoricalEmission{EmissionLevelChangeAverage: -5.2},
	})
	require.NoError(t, err)

	require.Len(t, rec.sql, 1)
	stmt := rec.sql[0]
	require.Contains(t, stmt, "ON DUPLICATE KEY UPDATE")
	updates := stmt[strings.Index(stmt, "ON DUPLICATE KEY UPDATE"):]
	assert.Contains(t, updates, "`emission_level_change_average`")
	assert.Contains(t, updates, "`deleted_at`")
	assert.Equal(t, "req-2", rec.ctxs[0].Value(requestKey{}))
}

func TestMunicipalityRepository_CountUsesContext(t *testing.T) {
	repo, rec := newDryRunRepository(t)
	ctx := context.WithValue(context.Background(), requestKey{}, "req-3")

	_, err := repo.Count(ctx)
	require.NoError(t, err)

	require.Len(t, rec.sql, 1)
	assert.Contains(t, rec.sql[0], "count(*)")
	assert.Equal(t, "req-3", rec.ctxs[0].Value(requestKey{}))
}

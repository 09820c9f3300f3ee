package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The locking read has to run on the caller's transaction: on the pool
// the row lock would release as soon as the statement finishes.
func TestRepository_WithTxRunsOnTransaction(t *testing.T) {
	poolDB, poolMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { poolDB.Close() })

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { txDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	assert.NoError(t, err)

	txMock.ExpectBegin()
	txMock.ExpectQuery(`SELECT (.+) FROM "attendances" (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	txMock.ExpectRollback()

	tx, err := txDB.Begin()
	assert.NoError(t, err)

	qtx := NewRepository(gormDB).WithTx(tx)

	_, err = qtx.FindByEmployeeAndDateForUpdate(
		context.Background(),
		uuid.NewString(),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, tx.Rollback())

	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

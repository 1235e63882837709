package postgres

import (
	"fmt"
	"testing"
	"time"

	"league/internal/domain/entity"
	domainerrors "league/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation}
	wrappedUnique := fmt.Errorf("insert: %w", unique)

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(wrappedUnique))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
}

func TestIsRetryableTxError(t *testing.T) {
	assert.True(t, isRetryableTxError(&pgconn.PgError{Code: pgSerializationFailure}))
	assert.True(t, isRetryableTxError(&pgconn.PgError{Code: pgDeadlockDetected}))
	assert.True(t, isRetryableTxError(domainerrors.NewDatabaseExecuteError(&pgconn.PgError{Code: pgDeadlockDetected}, "insert")))

	assert.False(t, isRetryableTxError(&pgconn.PgError{Code: pgUniqueViolation}))
	assert.False(t, isRetryableTxError(fmt.Errorf("network down")))
}

func TestStoreMapperRoundTripKeepsGeo(t *testing.T) {
	now := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	store := entity.NewStore("일미닭갈비", "서울 마포구 와우산로 21", "Seoul", now)
	store.Geo = &entity.GeoPoint{Latitude: 37.55, Longitude: 126.92}
	store.PlaceID = "12345"

	storeM := fromStoreDomain(store)
	require.NotNil(t, storeM.Latitude)
	assert.Equal(t, 37.55, *storeM.Latitude)

	assert.Equal(t, store, toStoreDomain(storeM))
}

func TestStoreMapperWithoutGeo(t *testing.T) {
	store := entity.NewStore("a", "b", "Seoul", time.Now())

	storeM := fromStoreDomain(store)
	assert.Nil(t, storeM.Latitude)
	assert.Nil(t, toStoreDomain(storeM).Geo)
}

func TestReviewMapperSoftDelete(t *testing.T) {
	now := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	review := entity.NewReview(uuid.New(), uuid.New(), entity.ReviewContent{Content: "좋아요", Rating: 5}, entity.SeasonAt(now, time.UTC), now)

	reviewM := fromReviewDomain(review)
	assert.False(t, reviewM.DeletedAt.Valid)
	assert.Nil(t, toReviewDomain(reviewM).DeletedAt)

	review.SoftDelete(now.Add(time.Hour))
	reviewM = fromReviewDomain(review)
	assert.True(t, reviewM.DeletedAt.Valid)

	back := toReviewDomain(reviewM)
	require.NotNil(t, back.DeletedAt)
	assert.Equal(t, now.Add(time.Hour), *back.DeletedAt)
	assert.Equal(t, "2026-FALL", back.Season)
}

package impl

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"league/internal/domain/entity"
	domainerrors "league/internal/domain/errors"
	"league/internal/domain/repository"
	"league/internal/domain/service"
	"league/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryDB is a shared in-memory store whose uniqueness rules mirror the
// partial unique indexes of the real schema.
type memoryDB struct {
	mu      sync.Mutex
	members map[uuid.UUID]*entity.Member
	stores  []*entity.Store
	reviews []*entity.Review
	keys    map[string]*sync.Mutex
}

func newMemoryDB(members ...uuid.UUID) *memoryDB {
	db := &memoryDB{
		members: make(map[uuid.UUID]*entity.Member),
		keys:    make(map[string]*sync.Mutex),
	}
	for _, id := range members {
		db.members[id] = &entity.Member{ID: id}
	}

	return db
}

func (db *memoryDB) keyLock(key string) *sync.Mutex {
	db.mu.Lock()
	defer db.mu.Unlock()

	lock, ok := db.keys[key]
	if !ok {
		lock = &sync.Mutex{}
		db.keys[key] = lock
	}

	return lock
}

// memoryTxManager releases every key lock taken inside fn once fn returns,
// like advisory locks scoped to a transaction.
type memoryTxManager struct {
	db *memoryDB
}

func (tm *memoryTxManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	locker := &memoryLocker{db: tm.db}
	defer locker.releaseAll()

	return fn(&memoryRepoFactory{db: tm.db, locker: locker})
}

type memoryRepoFactory struct {
	db     *memoryDB
	locker *memoryLocker
}

func (f *memoryRepoFactory) MemberRepo() repository.MemberRepository { return &memoryMemberRepo{db: f.db} }
func (f *memoryRepoFactory) StoreRepo() repository.StoreRepository   { return &memoryStoreRepo{db: f.db} }
func (f *memoryRepoFactory) ReviewRepo() repository.ReviewRepository { return &memoryReviewRepo{db: f.db} }
func (f *memoryRepoFactory) Locker() repository.KeyLocker             { return f.locker }

type memoryLocker struct {
	db   *memoryDB
	held []*sync.Mutex
}

func (l *memoryLocker) Lock(_ context.Context, key string) error {
	lock := l.db.keyLock(key)
	lock.Lock()
	l.held = append(l.held, lock)

	return nil
}

func (l *memoryLocker) releaseAll() {
	for i := len(l.held) - 1; i >= 0; i-- {
		l.held[i].Unlock()
	}
}

type memoryMemberRepo struct {
	db *memoryDB
}

func (r *memoryMemberRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Member, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	member, ok := r.db.members[id]
	if !ok {
		return nil, repository.ErrMemberNotFound
	}

	return member, nil
}

type memoryStoreRepo struct {
	db *memoryDB
}

func (r *memoryStoreRepo) FindByIdentity(_ context.Context, identity entity.StoreIdentity) ([]*entity.Store, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var found []*entity.Store
	for _, s := range r.db.stores {
		if s.NormalizedName == identity.Name && s.NormalizedAddress == identity.Address {
			found = append(found, s)
		}
	}

	return found, nil
}

func (r *memoryStoreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Store, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, s := range r.db.stores {
		if s.ID == id {
			return s, nil
		}
	}

	return nil, repository.ErrStoreNotFound
}

func (r *memoryStoreRepo) Create(_ context.Context, store *entity.Store) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, s := range r.db.stores {
		if s.NormalizedName == store.NormalizedName && s.NormalizedAddress == store.NormalizedAddress {
			return repository.ErrDuplicateStore
		}
	}
	r.db.stores = append(r.db.stores, store)

	return nil
}

type memoryReviewRepo struct {
	db *memoryDB
}

func (r *memoryReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.reviews {
		if !existing.IsDeleted() && existing.MemberID == review.MemberID &&
			existing.StoreID == review.StoreID && existing.Season == review.Season {
			return repository.ErrDuplicateReview
		}
	}
	r.db.reviews = append(r.db.reviews, review)

	return nil
}

func (r *memoryReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, review := range r.db.reviews {
		if review.ID == id {
			copied := *review

			return &copied, nil
		}
	}

	return nil, repository.ErrReviewNotFound
}

func (r *memoryReviewRepo) CountActiveByMemberStoreSeason(_ context.Context, memberID, storeID uuid.UUID, season string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var n int64
	for _, review := range r.db.reviews {
		if !review.IsDeleted() && review.MemberID == memberID && review.StoreID == storeID && review.Season == season {
			n++
		}
	}

	return n, nil
}

func (r *memoryReviewRepo) CountActiveByStoreSeason(_ context.Context, storeID uuid.UUID, season string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var n int64
	for _, review := range r.db.reviews {
		if !review.IsDeleted() && review.StoreID == storeID && review.Season == season {
			n++
		}
	}

	return n, nil
}

func (r *memoryReviewRepo) SoftDelete(_ context.Context, review *entity.Review) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, stored := range r.db.reviews {
		if stored.ID == review.ID && !stored.IsDeleted() {
			stored.DeletedAt = review.DeletedAt
			stored.UpdatedAt = review.UpdatedAt

			return nil
		}
	}

	return repository.ErrReviewNotFound
}

func (r *memoryReviewRepo) List(_ context.Context, filter entity.ReviewFilter) ([]*entity.Review, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	matched := make([]*entity.Review, 0, len(r.db.reviews))
	for _, review := range r.db.reviews {
		if review.IsDeleted() {
			continue
		}
		if filter.MemberID != nil && review.MemberID != *filter.MemberID {
			continue
		}
		if filter.StoreID != nil && review.StoreID != *filter.StoreID {
			continue
		}
		copied := *review
		matched = append(matched, &copied)
	}

	// created_at DESC, id DESC
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}

		return bytes.Compare(matched[i].ID[:], matched[j].ID[:]) > 0
	})

	if filter.Offset >= len(matched) {
		return []*entity.Review{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

type staticRecognizer struct {
	recognition *service.Recognition
}

func (r staticRecognizer) Recognize(context.Context, []byte) (*service.Recognition, error) {
	return r.recognition, nil
}

type nopPublisher struct{}

func (nopPublisher) PublishReviewEvent(context.Context, *service.ReviewEvent) error { return nil }
func (nopPublisher) Close() error                                                  { return nil }

type countingRecorder struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (r *countingRecorder) ObserveAdmission(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.outcomes == nil {
		r.outcomes = make(map[string]int)
	}
	r.outcomes[outcome]++
}

func newMemoryReviewService(t *testing.T, db *memoryDB, recorder service.AdmissionRecorder) usecase.ReviewUsecase {
	t.Helper()

	svc, err := NewReviewService(ReviewServiceParams{
		TxManager:  &memoryTxManager{db: db},
		MemberRepo: &memoryMemberRepo{db: db},
		StoreRepo:  &memoryStoreRepo{db: db},
		ReviewRepo: &memoryReviewRepo{db: db},
		Recognizer: staticRecognizer{recognition: seoulInfo},
		Publisher:  nopPublisher{},
		Recorder:   recorder,
		Clock:      fixedClock{now: testNow},
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})
	require.NoError(t, err)

	return svc
}

func TestReviewService_ConcurrentSubmitsBySameMember(t *testing.T) {
	const attempts = 16

	memberID := uuid.New()
	db := newMemoryDB(memberID)
	recorder := &countingRecorder{}
	svc := newMemoryReviewService(t, db, recorder)

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.SubmitReview(context.Background(), memberID, testImage, testContent)
		}()
	}
	wg.Wait()

	admitted, duplicates := 0, 0
	for _, err := range errs {
		if err == nil {
			admitted++

			continue
		}
		require.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
		duplicates++
	}

	assert.Equal(t, 1, admitted)
	assert.Equal(t, attempts-1, duplicates)
	assert.Len(t, db.stores, 1)
	assert.Len(t, db.reviews, 1)
	assert.Equal(t, 1, recorder.outcomes[service.OutcomeAdmitted])
	assert.Equal(t, attempts-1, recorder.outcomes[service.OutcomeDuplicateReview])
}

func TestReviewService_ConcurrentSubmitsByDifferentMembersShareStore(t *testing.T) {
	const members = 12

	ids := make([]uuid.UUID, members)
	for i := range ids {
		ids[i] = uuid.New()
	}
	db := newMemoryDB(ids...)
	svc := newMemoryReviewService(t, db, &countingRecorder{})

	var wg sync.WaitGroup
	errs := make([]error, members)
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.SubmitReview(context.Background(), id, testImage, testContent)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, fmt.Sprintf("member %d", i))
	}
	require.Len(t, db.stores, 1)
	assert.Len(t, db.reviews, members)
	for _, review := range db.reviews {
		assert.Equal(t, db.stores[0].ID, review.StoreID)
	}
}

func TestReviewService_DeleteThenResubmitSameSeason(t *testing.T) {
	memberID := uuid.New()
	db := newMemoryDB(memberID)
	svc := newMemoryReviewService(t, db, &countingRecorder{})
	ctx := context.Background()

	first, err := svc.SubmitReview(ctx, memberID, testImage, testContent)
	require.NoError(t, err)

	_, err = svc.SubmitReview(ctx, memberID, testImage, testContent)
	require.ErrorIs(t, err, domainerrors.ErrDuplicateReview)

	require.NoError(t, svc.DeleteReview(ctx, first.ID))
	require.NoError(t, svc.DeleteReview(ctx, first.ID))

	second, err := svc.SubmitReview(ctx, memberID, testImage, testContent)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.StoreID, second.StoreID)
}

func TestReviewService_DeleteReview_ExcludedFromListings(t *testing.T) {
	memberID, otherID := uuid.New(), uuid.New()
	db := newMemoryDB(memberID, otherID)
	svc := newMemoryReviewService(t, db, &countingRecorder{})
	ctx := context.Background()

	review, err := svc.SubmitReview(ctx, memberID, testImage, testContent)
	require.NoError(t, err)
	kept, err := svc.SubmitReview(ctx, otherID, testImage, testContent)
	require.NoError(t, err)

	byMember, err := svc.ListReviews(ctx, entity.ReviewFilter{MemberID: &memberID})
	require.NoError(t, err)
	require.Len(t, byMember.Reviews, 1)
	assert.Equal(t, review.ID, byMember.Reviews[0].ID)

	require.NoError(t, svc.DeleteReview(ctx, review.ID))

	byMember, err = svc.ListReviews(ctx, entity.ReviewFilter{MemberID: &memberID})
	require.NoError(t, err)
	assert.Empty(t, byMember.Reviews)

	byStore, err := svc.ListReviews(ctx, entity.ReviewFilter{StoreID: &review.StoreID})
	require.NoError(t, err)
	require.Len(t, byStore.Reviews, 1)
	assert.Equal(t, kept.ID, byStore.Reviews[0].ID)

	_, err = svc.GetReview(ctx, review.ID)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_ListReviews_PagesNewestFirst(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	db := newMemoryDB(ids...)
	svc := newMemoryReviewService(t, db, &countingRecorder{})
	ctx := context.Background()

	for _, id := range ids {
		_, err := svc.SubmitReview(ctx, id, testImage, testContent)
		require.NoError(t, err)
	}

	all, err := svc.ListReviews(ctx, entity.ReviewFilter{})
	require.NoError(t, err)
	require.Len(t, all.Reviews, len(ids))
	assert.Equal(t, 50, all.Limit)

	second, err := svc.ListReviews(ctx, entity.ReviewFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, second.Reviews, 1)
	assert.Equal(t, all.Reviews[1].ID, second.Reviews[0].ID)

	past, err := svc.ListReviews(ctx, entity.ReviewFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, past.Reviews)
}

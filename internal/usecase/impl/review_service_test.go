package impl

import (
	"context"
	"testing"
	"time"

	"league/internal/domain/constants"
	"league/internal/domain/entity"
	domainerrors "league/internal/domain/errors"
	"league/internal/domain/repository"
	"league/internal/domain/service"
	"league/internal/errors"
	mockRepo "league/internal/mocks/repository"
	mockSvc "league/internal/mocks/service"
	"league/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testNow     = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	testImage   = []byte("receipt-photo")
	testContent = entity.ReviewContent{Content: "닭갈비가 맛있어요", Rating: 5, ImageURL: "https://img.example/1.jpg"}
	seoulInfo   = &service.Recognition{
		Status:       service.RecognitionStatusSuccess,
		StoreName:    "일미닭갈비파전",
		StoreAddress: "서울 마포구 와우산로 21",
	}
)

type reviewFixture struct {
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	locker     *mockRepo.MockKeyLocker
	memberRepo *mockRepo.MockMemberRepository
	storeRepo  *mockRepo.MockStoreRepository
	reviewRepo *mockRepo.MockReviewRepository
	recognizer *mockSvc.MockReceiptRecognizer
	places     *mockSvc.MockPlaceSearcher
	publisher  *mockSvc.MockEventPublisher
	recorder   *mockSvc.MockAdmissionRecorder
	service    usecase.ReviewUsecase
}

func createTestReviewService(t *testing.T) *reviewFixture {
	f := &reviewFixture{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		locker:     mockRepo.NewMockKeyLocker(t),
		memberRepo: mockRepo.NewMockMemberRepository(t),
		storeRepo:  mockRepo.NewMockStoreRepository(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		recognizer: mockSvc.NewMockReceiptRecognizer(t),
		places:     mockSvc.NewMockPlaceSearcher(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		recorder:   mockSvc.NewMockAdmissionRecorder(t),
	}

	f.factory.EXPECT().Locker().Return(f.locker).Maybe()
	f.factory.EXPECT().StoreRepo().Return(f.storeRepo).Maybe()
	f.factory.EXPECT().ReviewRepo().Return(f.reviewRepo).Maybe()
	f.factory.EXPECT().MemberRepo().Return(f.memberRepo).Maybe()

	svc, err := NewReviewService(ReviewServiceParams{
		TxManager:  f.txManager,
		MemberRepo: f.memberRepo,
		StoreRepo:  f.storeRepo,
		ReviewRepo: f.reviewRepo,
		Recognizer: f.recognizer,
		Places:     f.places,
		Publisher:  f.publisher,
		Recorder:   f.recorder,
		Clock:      fixedClock{now: testNow},
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})
	require.NoError(t, err)
	f.service = svc

	return f
}

// runTransactions makes Execute call straight through to the closure.
func (f *reviewFixture) runTransactions() {
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func (f *reviewFixture) memberExists(memberID uuid.UUID) {
	f.memberRepo.EXPECT().FindByID(mock.Anything, memberID).Return(&entity.Member{ID: memberID}, nil).Once()
}

func TestReviewService_SubmitReview_NewStore(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	memberID := uuid.New()

	f.memberExists(memberID)
	f.recognizer.EXPECT().Recognize(mock.Anything, testImage).Return(seoulInfo, nil).Once()
	f.runTransactions()
	f.locker.EXPECT().Lock(ctx, mock.Anything).Return(nil).Times(2)
	f.storeRepo.EXPECT().FindByIdentity(ctx, entity.NewStoreIdentity(seoulInfo.StoreName, seoulInfo.StoreAddress)).Return(nil, nil).Once()
	f.places.EXPECT().Search(mock.Anything, seoulInfo.StoreName).Return(nil, nil).Once()
	f.storeRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	f.reviewRepo.EXPECT().CountActiveByMemberStoreSeason(ctx, memberID, mock.Anything, "2026-FALL").Return(0, nil).Once()
	f.reviewRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishReviewEvent(ctx, mock.MatchedBy(func(e *service.ReviewEvent) bool {
		return e.EventType == constants.EventReviewSubmitted && e.MemberID == memberID.String()
	})).Return(nil).Once()
	f.recorder.EXPECT().ObserveAdmission(service.OutcomeAdmitted).Once()

	review, err := f.service.SubmitReview(ctx, memberID, testImage, testContent)

	require.NoError(t, err)
	assert.Equal(t, memberID, review.MemberID)
	assert.Equal(t, "2026-FALL", review.Season)
	assert.Equal(t, testContent.Content, review.Content)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, testNow, review.CreatedAt)
	assert.False(t, review.IsDeleted())
}

func TestReviewService_SubmitReview_ExistingStore(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	memberID := uuid.New()
	existing := &entity.Store{ID: uuid.New(), Name: seoulInfo.StoreName, CreatedAt: testNow.Add(-24 * time.Hour)}

	f.memberExists(memberID)
	f.recognizer.EXPECT().Recognize(mock.Anything, testImage).Return(seoulInfo, nil)
	f.runTransactions()
	f.locker.EXPECT().Lock(ctx, mock.Anything).Return(nil)
	f.storeRepo.EXPECT().FindByIdentity(ctx, mock.Anything).Return([]*entity.Store{existing}, nil)
	f.reviewRepo.EXPECT().CountActiveByMemberStoreSeason(ctx, memberID, existing.ID, "2026-FALL").Return(0, nil)
	f.reviewRepo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.Review) bool { return r.StoreID == existing.ID })).Return(nil)
	f.publisher.EXPECT().PublishReviewEvent(ctx, mock.Anything).Return(nil)
	f.recorder.EXPECT().ObserveAdmission(service.OutcomeAdmitted)

	review, err := f.service.SubmitReview(ctx, memberID, testImage, testContent)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, review.StoreID)
	f.storeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.places.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestReviewService_SubmitReview_MemberNotFoundSkipsRecognition(t *testing.T) {
	f := createTestReviewService(t)
	memberID := uuid.New()

	f.memberRepo.EXPECT().FindByID(mock.Anything, memberID).Return(nil, repository.ErrMemberNotFound)
	f.recorder.EXPECT().ObserveAdmission(service.OutcomeMemberNotFound)

	review, err := f.service.SubmitReview(context.Background(), memberID, testImage, testContent)

	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
	f.recognizer.AssertNotCalled(t, "Recognize", mock.Anything, mock.Anything)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestReviewService_SubmitReview_MemberLookupFaultIsNotRejection(t *testing.T) {
	f := createTestReviewService(t)
	memberID := uuid.New()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("conn refused"), "select member")

	f.memberRepo.EXPECT().FindByID(mock.Anything, memberID).Return(nil, dbErr)
	f.recorder.EXPECT().ObserveAdmission(service.OutcomeError)

	_, err := f.service.SubmitReview(context.Background(), memberID, testImage, testContent)

	require.ErrorIs(t, err, dbErr)
	assert.False(t, domainerrors.IsRejection(err))
}

func TestReviewService_SubmitReview_ReceiptInvalidStopsPipeline(t *testing.T) {
	tests := []struct {
		name        string
		recognition *service.Recognition
		err         error
	}{
		{name: "failure status", recognition: &service.Recognition{Status: "FAILURE"}},
		{name: "missing fields", recognition: &service.Recognition{Status: service.RecognitionStatusSuccess, StoreName: "only name"}},
		{name: "timeout", err: errors.WithStack(context.DeadlineExceeded)},
		{name: "service down", err: errors.Mark(service.ErrRecognitionUnavailable, errors.New("503"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestReviewService(t)
			memberID := uuid.New()

			f.memberExists(memberID)
			f.recognizer.EXPECT().Recognize(mock.Anything, testImage).Return(tt.recognition, tt.err)
			f.recorder.EXPECT().ObserveAdmission(service.OutcomeReceiptInvalid)

			review, err := f.service.SubmitReview(context.Background(), memberID, testImage, testContent)

			assert.Nil(t, review)
			assert.ErrorIs(t, err, domainerrors.ErrReceiptInvalid)
			assert.True(t, domainerrors.IsRejection(err))
			f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			f.storeRepo.AssertNotCalled(t, "FindByIdentity", mock.Anything, mock.Anything)
			f.publisher.AssertNotCalled(t, "PublishReviewEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestReviewService_SubmitReview_UnsupportedArea(t *testing.T) {
	for _, address := range []string{"부산광역시 해운대구 우동 1", "마포구 와우산로 21", "Springfield"} {
		t.Run(address, func(t *testing.T) {
			f := createTestReviewService(t)
			memberID := uuid.New()

			f.memberExists(memberID)
			f.recognizer.EXPECT().Recognize(mock.Anything, testImage).Return(&service.Recognition{
				Status:       service.RecognitionStatusSuccess,
				StoreName:    "가게",
				StoreAddress: address,
			}, nil)
			f.recorder.EXPECT().ObserveAdmission(service.OutcomeUnsupportedArea)

			_, err := f.service.SubmitReview(context.Background(), memberID, testImage, testContent)

			assert.ErrorIs(t, err, domainerrors.ErrUnsupportedArea)
			f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestReviewService_VerifyReceipt_UnsupportedAreaNamesCities(t *testing.T) {
	f := createTestReviewService(t)

	f.recognizer.EXPECT().Recognize(mock.Anything, testImage).Return(&service.Recognition{
		Status:       service.RecognitionStatusSuccess,
		StoreName:    "가게",
		StoreAddress: "경기장로 12 부산광역시",
	}, nil)

	_, err := f.service.VerifyReceipt(context.Background(), testImage)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNSUPPORTED_AREA", appErr.ErrorCode())
	assert.Equal(t, "Busan is outside Gyeonggi, Incheon, Seoul", appErr.Details())
}

func TestReviewService_SubmitReview_DuplicateBySeasonCheck(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	memberID := uuid.New()
	existing := &entity.Store{ID: uuid.New()}

	f.memberExists(memberID)
	f.recognizer.EXPECT().Recognize(mock.Anything, testImage).Return(seoulInfo, nil)
	f.runTransactions()
	f.locker.EXPECT().Lock(ctx, mock.Anything).Return(nil)
	f.storeRepo.EXPECT().FindByIdentity(ctx, mock.Anything).Return([]*entity.Store{existing}, nil)
	f.reviewRepo.EXPECT().CountActiveByMemberStoreSeason(ctx, memberID, existing.ID, "2026-FALL").Return(1, nil)
	f.recorder.EXPECT().ObserveAdmission(service.OutcomeDuplicateReview)

	_, err := f.service.SubmitReview(ctx, memberID, testImage, testContent)

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
	f.reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishReviewEvent", mock.Anything, mock.Anything)
}

func TestReviewService_SubmitReview_DuplicateByUniqueConstraint(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	memberID := uuid.New()

	f.memberExists(memberID)
	f.recognizer.EXPECT().Recognize(mock.Anything, testImage).Return(seoulInfo, nil)
	f.runTransactions()
	f.locker.EXPECT().Lock(ctx, mock.Anything).Return(nil)
	f.storeRepo.EXPECT().FindByIdentity(ctx, mock.Anything).Return([]*entity.Store{{ID: uuid.New()}}, nil)
	f.reviewRepo.EXPECT().CountActiveByMemberStoreSeason(ctx, memberID, mock.Anything, mock.Anything).Return(0, nil)
	f.reviewRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateReview)
	f.recorder.EXPECT().ObserveAdmission(service.OutcomeDuplicateReview)

	_, err := f.service.SubmitReview(ctx, memberID, testImage, testContent)

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_SubmitReview_StoreCreationFailed(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	memberID := uuid.New()

	f.memberExists(memberID)
	f.recognizer.EXPECT().Recognize(mock.Anything, testImage).Return(seoulInfo, nil)
	f.runTransactions()
	f.locker.EXPECT().Lock(ctx, mock.Anything).Return(nil).Once()
	f.storeRepo.EXPECT().FindByIdentity(ctx, mock.Anything).Return(nil, nil)
	f.places.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, nil)
	f.storeRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateStore)
	f.recorder.EXPECT().ObserveAdmission(service.OutcomeStoreCreation)

	_, err := f.service.SubmitReview(ctx, memberID, testImage, testContent)

	require.ErrorIs(t, err, domainerrors.ErrStoreCreationFailed)
	assert.False(t, domainerrors.IsRejection(err))
	f.reviewRepo.AssertNotCalled(t, "CountActiveByMemberStoreSeason", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewService_SubmitReview_InvalidContent(t *testing.T) {
	f := createTestReviewService(t)
	f.recorder.EXPECT().ObserveAdmission(service.OutcomeValidationRejected)

	_, err := f.service.SubmitReview(context.Background(), uuid.New(), testImage, entity.ReviewContent{Content: "ok", Rating: 6})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	f.memberRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestReviewService_SubmitReview_PublishFailureKeepsReview(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	memberID := uuid.New()

	f.memberExists(memberID)
	f.recognizer.EXPECT().Recognize(mock.Anything, testImage).Return(seoulInfo, nil)
	f.runTransactions()
	f.locker.EXPECT().Lock(ctx, mock.Anything).Return(nil)
	f.storeRepo.EXPECT().FindByIdentity(ctx, mock.Anything).Return([]*entity.Store{{ID: uuid.New()}}, nil)
	f.reviewRepo.EXPECT().CountActiveByMemberStoreSeason(ctx, memberID, mock.Anything, mock.Anything).Return(0, nil)
	f.reviewRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishReviewEvent(ctx, mock.Anything).Return(errors.New("topic gone"))
	f.recorder.EXPECT().ObserveAdmission(service.OutcomeAdmitted)

	review, err := f.service.SubmitReview(ctx, memberID, testImage, testContent)

	require.NoError(t, err)
	assert.NotNil(t, review)
}

func TestReviewService_DeleteReview(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	review := entity.NewReview(uuid.New(), uuid.New(), testContent, entity.SeasonAt(testNow, time.UTC), testNow.Add(-time.Hour))

	f.runTransactions()
	f.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
	f.reviewRepo.EXPECT().SoftDelete(ctx, review).Return(nil).Once()
	f.publisher.EXPECT().PublishReviewEvent(ctx, mock.MatchedBy(func(e *service.ReviewEvent) bool {
		return e.EventType == constants.EventReviewDeleted && e.ReviewID == review.ID.String()
	})).Return(nil).Once()

	require.NoError(t, f.service.DeleteReview(ctx, review.ID))
	require.True(t, review.IsDeleted())
	assert.Equal(t, testNow, *review.DeletedAt)
}

func TestReviewService_DeleteReview_AlreadyDeletedIsNoOp(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	deletedAt := testNow.Add(-time.Minute)
	review := &entity.Review{ID: uuid.New(), DeletedAt: &deletedAt}

	f.runTransactions()
	f.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)

	require.NoError(t, f.service.DeleteReview(ctx, review.ID))
	assert.Equal(t, deletedAt, *review.DeletedAt)
	f.reviewRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishReviewEvent", mock.Anything, mock.Anything)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	reviewID := uuid.New()

	f.runTransactions()
	f.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(nil, repository.ErrReviewNotFound)

	err := f.service.DeleteReview(ctx, reviewID)

	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	f.reviewRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestReviewService_DeleteReview_LostRaceIsSuccess(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	review := &entity.Review{ID: uuid.New()}

	f.runTransactions()
	f.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
	f.reviewRepo.EXPECT().SoftDelete(ctx, review).Return(repository.ErrReviewNotFound)

	require.NoError(t, f.service.DeleteReview(ctx, review.ID))
	f.publisher.AssertNotCalled(t, "PublishReviewEvent", mock.Anything, mock.Anything)
}

func TestReviewService_DeleteReview_WriteFailure(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	review := &entity.Review{ID: uuid.New()}

	f.runTransactions()
	f.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
	f.reviewRepo.EXPECT().SoftDelete(ctx, review).Return(errors.New("disk full"))

	err := f.service.DeleteReview(ctx, review.ID)

	assert.ErrorIs(t, err, domainerrors.ErrReviewDeleteFailed)
}

func TestReviewService_GetReview(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	live := &entity.Review{ID: uuid.New()}
	deletedAt := testNow
	gone := &entity.Review{ID: uuid.New(), DeletedAt: &deletedAt}

	f.reviewRepo.EXPECT().FindByID(ctx, live.ID).Return(live, nil)
	f.reviewRepo.EXPECT().FindByID(ctx, gone.ID).Return(gone, nil)

	got, err := f.service.GetReview(ctx, live.ID)
	require.NoError(t, err)
	assert.Same(t, live, got)

	_, err = f.service.GetReview(ctx, gone.ID)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_ListReviews_ClampsPaging(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	memberID := uuid.New()

	f.reviewRepo.EXPECT().List(ctx, entity.ReviewFilter{MemberID: &memberID, Limit: 50}).Return(nil, nil).Once()
	f.reviewRepo.EXPECT().List(ctx, entity.ReviewFilter{Limit: 200, Offset: 0}).Return(nil, nil).Once()

	page, err := f.service.ListReviews(ctx, entity.ReviewFilter{MemberID: &memberID})
	require.NoError(t, err)
	assert.Equal(t, 50, page.Limit)

	page, err = f.service.ListReviews(ctx, entity.ReviewFilter{Limit: 10_000, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, 200, page.Limit)
	assert.Equal(t, 0, page.Offset)
}

func TestReviewService_ListReviews_RejectsBothFilters(t *testing.T) {
	f := createTestReviewService(t)
	memberID, storeID := uuid.New(), uuid.New()

	_, err := f.service.ListReviews(context.Background(), entity.ReviewFilter{MemberID: &memberID, StoreID: &storeID})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_VerifyReceipt(t *testing.T) {
	f := createTestReviewService(t)

	f.recognizer.EXPECT().Recognize(mock.Anything, testImage).Return(seoulInfo, nil)

	info, err := f.service.VerifyReceipt(context.Background(), testImage)

	require.NoError(t, err)
	assert.Equal(t, &entity.ReceiptInfo{StoreName: seoulInfo.StoreName, StoreAddress: seoulInfo.StoreAddress}, info)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestReviewService_GetStoreSeasonSummary(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	storeID := uuid.New()

	f.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
	f.reviewRepo.EXPECT().CountActiveByStoreSeason(ctx, storeID, "2026-FALL").Return(7, nil)

	summary, err := f.service.GetStoreSeasonSummary(ctx, storeID)

	require.NoError(t, err)
	assert.Equal(t, &usecase.StoreSeasonSummary{StoreID: storeID, Season: "2026-FALL", Count: 7}, summary)

	missing := uuid.New()
	f.storeRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrStoreNotFound)

	_, err = f.service.GetStoreSeasonSummary(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestAdmissionOutcome(t *testing.T) {
	assert.Equal(t, service.OutcomeAdmitted, admissionOutcome(nil))
	assert.Equal(t, service.OutcomeReceiptInvalid, admissionOutcome(domainerrors.ErrReceiptInvalid.WithDetails("timeout")))
	assert.Equal(t, service.OutcomeStoreCreation, admissionOutcome(errors.Mark(domainerrors.ErrStoreCreationFailed, errors.New("x"))))
	assert.Equal(t, service.OutcomeError, admissionOutcome(errors.New("x")))
}

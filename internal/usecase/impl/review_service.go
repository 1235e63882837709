// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"league/config"
	deliverycontext "league/internal/delivery/context"
	"league/internal/domain/constants"
	"league/internal/domain/entity"
	domainerrors "league/internal/domain/errors"
	"league/internal/domain/region"
	"league/internal/domain/repository"
	"league/internal/domain/service"
	"league/internal/errors"
	"league/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	memberRepo repository.MemberRepository
	storeRepo  repository.StoreRepository
	reviewRepo repository.ReviewRepository
	verifier   *ReceiptVerifier
	resolver   *StoreResolver
	guard      *DuplicateGuard
	publisher  service.EventPublisher
	recorder   service.AdmissionRecorder
	clock      service.Clock
	location   *time.Location
	listLimit  int
	listMax    int
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MemberRepo repository.MemberRepository
	StoreRepo  repository.StoreRepository
	ReviewRepo repository.ReviewRepository
	Recognizer service.ReceiptRecognizer
	Places     service.PlaceSearcher `optional:"true"`
	Publisher  service.EventPublisher
	Recorder   service.AdmissionRecorder
	Clock      service.Clock
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) (usecase.ReviewUsecase, error) {
	location, err := params.Config.Location()
	if err != nil {
		return nil, err
	}

	var receiptTimeout time.Duration
	if params.Config.Receipt != nil {
		receiptTimeout = params.Config.Receipt.Timeout
	}

	listLimit, listMax := defaultListLimit, maxListLimit
	if params.Config.Review != nil {
		if params.Config.Review.DefaultListLimit > 0 {
			listLimit = params.Config.Review.DefaultListLimit
		}
		if params.Config.Review.MaxListLimit > 0 {
			listMax = params.Config.Review.MaxListLimit
		}
	}

	return &reviewService{
		txManager:  params.TxManager,
		memberRepo: params.MemberRepo,
		storeRepo:  params.StoreRepo,
		reviewRepo: params.ReviewRepo,
		verifier:   NewReceiptVerifier(params.Recognizer, receiptTimeout),
		resolver:   NewStoreResolver(params.Places, params.Clock, params.Logger),
		guard:      NewDuplicateGuard(),
		publisher:  params.Publisher,
		recorder:   params.Recorder,
		clock:      params.Clock,
		location:   location,
		listLimit:  listLimit,
		listMax:    listMax,
		logger:     params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReview runs the admission pipeline: member lookup, receipt
// verification, boundary check, then store resolution, duplicate check and
// insert inside one transaction. The first failing stage ends the attempt.
func (srv *reviewService) SubmitReview(ctx context.Context, memberID uuid.UUID, receiptImage []byte, content entity.ReviewContent) (*entity.Review, error) {
	review, err := srv.admit(ctx, memberID, receiptImage, content)

	outcome := admissionOutcome(err)
	srv.recorder.ObserveAdmission(outcome)

	if err != nil {
		if domainerrors.IsRejection(err) {
			srv.log(ctx).Info("Review rejected",
				slog.Any("memberID", memberID),
				slog.String("outcome", outcome),
				slog.String("reason", err.Error()),
			)
		} else {
			srv.log(ctx).Error("Review admission failed",
				slog.Any("memberID", memberID),
				slog.String("outcome", outcome),
				slog.Any("error", err),
			)
		}

		return nil, err
	}

	srv.log(ctx).Info("Review admitted",
		slog.Any("reviewID", review.ID),
		slog.Any("memberID", memberID),
		slog.Any("storeID", review.StoreID),
		slog.String("season", review.Season),
	)
	srv.publish(ctx, constants.EventReviewSubmitted, review)

	return review, nil
}

func (srv *reviewService) admit(ctx context.Context, memberID uuid.UUID, receiptImage []byte, content entity.ReviewContent) (*entity.Review, error) {
	if err := content.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if _, err := srv.memberRepo.FindByID(ctx, memberID); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member")
	}

	info, city, err := srv.verifyReceipt(ctx, receiptImage)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	season := entity.SeasonAt(now, srv.location)

	var admitted *entity.Review
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		store, err := srv.resolver.Resolve(ctx, repoFactory, *info, city)
		if err != nil {
			return err
		}

		verdict, err := srv.guard.Check(ctx, repoFactory, memberID, store.ID, season)
		if err != nil {
			return err
		}
		if verdict == entity.VerdictDuplicate {
			return domainerrors.ErrDuplicateReview
		}

		review := entity.NewReview(memberID, store.ID, content, season, now)
		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrDuplicateReview
			}

			return errors.Wrap(err, "failed to create review")
		}

		admitted = review

		return nil
	})
	if err != nil {
		return nil, err
	}

	return admitted, nil
}

// verifyReceipt runs recognition and the boundary check. Rejections come back
// as ErrReceiptInvalid or ErrUnsupportedArea.
func (srv *reviewService) verifyReceipt(ctx context.Context, receiptImage []byte) (*entity.ReceiptInfo, region.City, error) {
	result, err := srv.verifier.Verify(ctx, receiptImage)
	if err != nil {
		return nil, region.CityUnknown, err
	}
	if !result.OK() {
		srv.log(ctx).Debug("Receipt not verified",
			slog.String("reason", string(result.Reason)),
			slog.String("detail", result.Detail),
		)

		return nil, region.CityUnknown, domainerrors.ErrReceiptInvalid.WithDetails(string(result.Reason))
	}

	city := region.ExtractCity(result.Info.StoreAddress)
	if !region.IsWithinBoundary(city) {
		return nil, city, domainerrors.ErrUnsupportedArea.WithDetails(unsupportedAreaDetail(city))
	}

	return result.Info, city, nil
}

// unsupportedAreaDetail names the rejected city next to the accepted ones.
func unsupportedAreaDetail(city region.City) string {
	supported := region.Supported()
	names := make([]string, 0, len(supported))
	for _, c := range supported {
		names = append(names, string(c))
	}

	return fmt.Sprintf("%s is outside %s", city, strings.Join(names, ", "))
}

// VerifyReceipt checks a receipt without admitting a review.
func (srv *reviewService) VerifyReceipt(ctx context.Context, receiptImage []byte) (*entity.ReceiptInfo, error) {
	info, _, err := srv.verifyReceipt(ctx, receiptImage)
	if err != nil {
		return nil, err
	}

	return info, nil
}

// DeleteReview soft-deletes a review. An already-deleted review is left
// untouched and reported as success.
func (srv *reviewService) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	var deleted *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deleted = nil

		review, err := repoFactory.ReviewRepo().FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound
			}

			return errors.Wrap(err, "failed to find review")
		}

		if !review.SoftDelete(srv.clock.Now()) {
			return nil
		}

		if err := repoFactory.ReviewRepo().SoftDelete(ctx, review); err != nil {
			// Lost a race with another delete; the review is gone either way.
			if errors.Is(err, repository.ErrReviewNotFound) {
				return nil
			}

			return errors.Mark(domainerrors.ErrReviewDeleteFailed, err)
		}

		deleted = review

		return nil
	})
	if err != nil {
		if !domainerrors.IsRejection(err) {
			srv.log(ctx).Error("Failed to delete review", slog.Any("reviewID", reviewID), slog.Any("error", err))
		}

		return err
	}

	if deleted == nil {
		srv.log(ctx).Debug("Review already deleted", slog.Any("reviewID", reviewID))

		return nil
	}

	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", reviewID))
	srv.publish(ctx, constants.EventReviewDeleted, deleted)

	return nil
}

// GetReview returns a live review.
func (srv *reviewService) GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}
	if review.IsDeleted() {
		return nil, domainerrors.ErrReviewNotFound
	}

	return review, nil
}

// ListReviews returns live reviews newest first. A missing limit takes the
// configured default and an oversized one is capped.
func (srv *reviewService) ListReviews(ctx context.Context, filter entity.ReviewFilter) (*usecase.ReviewPage, error) {
	if filter.MemberID != nil && filter.StoreID != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("filter by member or by store, not both")
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = srv.listLimit
	case filter.Limit > srv.listMax:
		filter.Limit = srv.listMax
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	reviews, err := srv.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewPage{
		Reviews: reviews,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}

// GetStoreSeasonSummary counts a store's live reviews in the current season.
func (srv *reviewService) GetStoreSeasonSummary(ctx context.Context, storeID uuid.UUID) (*usecase.StoreSeasonSummary, error) {
	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	season := entity.SeasonAt(srv.clock.Now(), srv.location).String()
	count, err := srv.reviewRepo.CountActiveByStoreSeason(ctx, storeID, season)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count store reviews")
	}

	return &usecase.StoreSeasonSummary{StoreID: storeID, Season: season, Count: count}, nil
}

// publish emits a review event after commit. Failures are logged only; the
// committed change stands.
func (srv *reviewService) publish(ctx context.Context, eventType string, review *entity.Review) {
	event := &service.ReviewEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		ReviewID:   review.ID.String(),
		MemberID:   review.MemberID.String(),
		StoreID:    review.StoreID.String(),
		Season:     review.Season,
		Rating:     review.Rating,
		OccurredAt: review.UpdatedAt,
	}

	if err := srv.publisher.PublishReviewEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish review event",
			slog.String("eventType", eventType),
			slog.Any("reviewID", review.ID),
			slog.Any("error", err),
		)
	}
}

// admissionOutcome labels a submit result for metrics.
func admissionOutcome(err error) string {
	switch {
	case err == nil:
		return service.OutcomeAdmitted
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return service.OutcomeValidationRejected
	case errors.Is(err, domainerrors.ErrMemberNotFound):
		return service.OutcomeMemberNotFound
	case errors.Is(err, domainerrors.ErrReceiptInvalid):
		return service.OutcomeReceiptInvalid
	case errors.Is(err, domainerrors.ErrUnsupportedArea):
		return service.OutcomeUnsupportedArea
	case errors.Is(err, domainerrors.ErrDuplicateReview):
		return service.OutcomeDuplicateReview
	case errors.Is(err, domainerrors.ErrStoreCreationFailed):
		return service.OutcomeStoreCreation
	default:
		return service.OutcomeError
	}
}

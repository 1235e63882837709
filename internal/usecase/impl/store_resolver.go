package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "league/internal/delivery/context"
	"league/internal/domain/entity"
	domainerrors "league/internal/domain/errors"
	"league/internal/domain/region"
	"league/internal/domain/repository"
	"league/internal/domain/service"
	"league/internal/errors"
)

// placeSearchTimeout caps enrichment so a slow lookup cannot stall admission.
const placeSearchTimeout = 2 * time.Second

// StoreResolver maps receipt text to a canonical store, registering it when unseen.
type StoreResolver struct {
	places service.PlaceSearcher
	clock  service.Clock
	logger *slog.Logger
}

// NewStoreResolver creates a resolver. places may be nil, in which case new
// stores are saved without geo metadata.
func NewStoreResolver(places service.PlaceSearcher, clock service.Clock, logger *slog.Logger) *StoreResolver {
	return &StoreResolver{
		places: places,
		clock:  clock,
		logger: logger,
	}
}

func (r *StoreResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve returns the oldest store whose normalized name and address match
// info, or creates one. It must run inside a transaction: the identity lock it
// takes is held until commit, so concurrent resolvers of the same identity
// run one after another. Any failure to create is ErrStoreCreationFailed.
func (r *StoreResolver) Resolve(ctx context.Context, repos repository.RepositoryFactory, info entity.ReceiptInfo, city region.City) (*entity.Store, error) {
	identity := entity.NewStoreIdentity(info.StoreName, info.StoreAddress)
	if identity.Empty() {
		return nil, domainerrors.ErrStoreCreationFailed.WithDetails("store identity is empty after normalization")
	}

	if err := repos.Locker().Lock(ctx, identity.LockKey()); err != nil {
		return nil, errors.Wrap(err, "failed to lock store identity")
	}

	stores, err := repos.StoreRepo().FindByIdentity(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stores by identity")
	}
	if len(stores) > 0 {
		return oldestStore(stores), nil
	}

	store := entity.NewStore(info.StoreName, info.StoreAddress, string(city), r.clock.Now())
	r.enrich(ctx, store, city)

	if err := repos.StoreRepo().Create(ctx, store); err != nil {
		r.log(ctx).Error("Failed to create store",
			slog.String("name", store.Name),
			slog.String("address", store.Address),
			slog.Any("error", err),
		)

		return nil, errors.Mark(domainerrors.ErrStoreCreationFailed, err)
	}

	r.log(ctx).Info("Registered new store",
		slog.Any("storeID", store.ID),
		slog.String("name", store.Name),
		slog.String("city", store.City),
	)

	return store, nil
}

// oldestStore picks the earliest created store, lowest id on ties.
func oldestStore(stores []*entity.Store) *entity.Store {
	return slices.MinFunc(stores, func(a, b *entity.Store) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})
}

// enrich fills geo metadata from the best place search hit that lies inside the
// store's city. Lookup failures leave the store as it is.
func (r *StoreResolver) enrich(ctx context.Context, store *entity.Store, city region.City) {
	if r.places == nil {
		return
	}

	searchCtx, cancel := context.WithTimeout(ctx, placeSearchTimeout)
	defer cancel()

	places, err := r.places.Search(searchCtx, store.Name)
	if err != nil {
		r.log(ctx).Warn("Place search failed, storing without geo metadata",
			slog.String("name", store.Name),
			slog.Any("error", err),
		)

		return
	}

	for _, place := range places {
		if !region.Contains(city, place.Latitude, place.Longitude) {
			continue
		}

		store.Geo = &entity.GeoPoint{Latitude: place.Latitude, Longitude: place.Longitude}
		store.PlaceID = place.ID
		store.Category = place.Category

		return
	}

	r.log(ctx).Debug("No place search hit inside the store's city",
		slog.String("name", store.Name),
		slog.Int("hits", len(places)),
	)
}

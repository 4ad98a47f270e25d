package impl

import (
	"context"
	"fmt"
	"log/slog"

	"rocktea/config"
	"rocktea/internal/domain/constants"
	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/repository"
	"rocktea/internal/domain/service"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type storeService struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
	dns       service.DNSProvider
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	UserRepo  repository.UserRepository
	DNS       service.DNSProvider
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStoreService creates a new store service instance.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo: params.StoreRepo,
		userRepo:  params.UserRepo,
		dns:       params.DNS,
		publisher: params.Publisher,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// CreateStore persists a new store with its synthesized slug and domain name.
// The store starts with provisioning pending; the activation payment triggers
// the actual upsert.
func (s *storeService) CreateStore(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Store, error) {
	slug := entity.Slugify(name)
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("store name yields an empty slug")
	}

	store := &entity.Store{
		OwnerID:    ownerID,
		Name:       name,
		Slug:       slug,
		DomainName: s.domainNameFor(slug),
		DNSState:   entity.DNSStatePending,
	}

	if err := s.storeRepo.CreateStore(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// ProvisionDomain drives dns_pending → dns_live, or dns_failed on provider
// error. The upsert is create-or-replace, so an admin re-trigger after a
// failure is safe.
func (s *storeService) ProvisionDomain(ctx context.Context, storeID uuid.UUID) error {
	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		return err
	}

	owner, err := s.userRepo.FindUserByID(ctx, store.OwnerID)
	if err != nil {
		return err
	}

	if upsertErr := s.dns.UpsertRecord(ctx, store.Slug); upsertErr != nil {
		if err := s.storeRepo.UpdateDNSState(ctx, store.ID, entity.DNSStateFailed, false); err != nil {
			return err
		}

		s.publishTask(ctx, &service.TaskEvent{
			Kind:      service.TaskMailDNSFailed,
			Email:     owner.Email,
			StoreID:   store.ID.String(),
			StoreName: store.Name,
		})

		return errors.Wrap(upsertErr, "dns upsert failed")
	}

	if err := s.storeRepo.UpdateDNSState(ctx, store.ID, entity.DNSStateLive, true); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "store subdomain provisioned",
		slog.String("store_id", store.ID.String()),
		slog.String("slug", store.Slug),
	)

	s.publishTask(ctx, &service.TaskEvent{
		Kind:       service.TaskMailStoreWelcome,
		Email:      owner.Email,
		StoreID:    store.ID.String(),
		StoreName:  store.Name,
		DomainName: store.DomainName,
	})

	return nil
}

// DeleteStore soft-deletes the owner's store and queues the CNAME teardown
// with its notification mail.
func (s *storeService) DeleteStore(ctx context.Context, ownerID uuid.UUID) error {
	store, err := s.storeRepo.FindStoreByOwner(ctx, ownerID)
	if err != nil {
		return err
	}

	owner, err := s.userRepo.FindUserByID(ctx, ownerID)
	if err != nil {
		return err
	}

	if err := s.storeRepo.UpdateDNSState(ctx, store.ID, entity.DNSStateDeleted, false); err != nil {
		return err
	}
	if err := s.storeRepo.DeleteStore(ctx, store.ID); err != nil {
		return err
	}

	s.publishTask(ctx, &service.TaskEvent{
		Kind:      service.TaskDNSTeardown,
		Email:     owner.Email,
		StoreID:   store.ID.String(),
		StoreName: store.Name,
		StoreSlug: store.Slug,
	})

	return nil
}

func (s *storeService) domainNameFor(slug string) string {
	if s.config.Env.Env != constants.EnvProduction && s.config.Cloudflare.LocalMode {
		return fmt.Sprintf("localhost:%d/%s", s.config.HTTP.Port, slug)
	}

	return slug + "." + s.config.Cloudflare.TargetDomain
}

func (s *storeService) publishTask(ctx context.Context, event *service.TaskEvent) {
	if err := s.publisher.PublishTaskEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish task event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}

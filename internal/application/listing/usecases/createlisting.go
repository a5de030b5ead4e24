package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/listing/dto"
	subscriptionservices "github.com/casaplex/casaplex/internal/application/subscription/services"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/domain/subscription"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/guard"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type CreateListingCommand struct {
	ActorID         uint
	ActorRole       authorization.Role
	CityID          uint
	Title           string
	Description     string
	DealType        string
	Price           uint64
	MonthlyRent     *uint64
	Attrs           listing.Attributes
	ImageURL        string
	Gallery         []string
	RequestedStatus string
}

// CreateListingUseCase creates a listing after the entitlement guard chain
// passes. The quota increment and the insert run in one transaction, so a
// concurrent creation racing the last quota slot cannot overrun it.
type CreateListingUseCase struct {
	listingRepo listing.Repository
	cityRepo    listing.CityRepository
	agentRepo   agent.Repository
	entitlement *subscriptionservices.EntitlementService
	txManager   *db.TransactionManager
	notifier    SubmissionNotifier
	logger      logger.Interface
}

func NewCreateListingUseCase(
	listingRepo listing.Repository,
	cityRepo listing.CityRepository,
	agentRepo agent.Repository,
	entitlement *subscriptionservices.EntitlementService,
	txManager *db.TransactionManager,
	notifier SubmissionNotifier,
	logger logger.Interface,
) *CreateListingUseCase {
	return &CreateListingUseCase{
		listingRepo: listingRepo,
		cityRepo:    cityRepo,
		agentRepo:   agentRepo,
		entitlement: entitlement,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, cmd CreateListingCommand) (*dto.ListingResponse, error) {
	actor, err := uc.agentRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if actor == nil {
		return nil, errors.NewUnauthorizedError("agent not found")
	}

	operator := cmd.ActorRole.IsOperator()
	if err := guard.Chain(ctx,
		func(context.Context) error {
			if !actor.IsActive() {
				return errors.NewForbiddenError("account is deactivated")
			}
			return nil
		},
		func(context.Context) error {
			if !actor.IsEmailVerified() {
				return errors.NewForbiddenError("email verification required")
			}
			return nil
		},
		guard.When(!operator, func(ctx context.Context) error {
			entitled, err := uc.entitlement.IsEntitled(ctx, cmd.ActorID)
			if err != nil {
				return err
			}
			if !entitled {
				return errors.NewQuotaRequiredError(constants.ErrMsgSubscriptionNeeded)
			}
			return nil
		}),
	); err != nil {
		return nil, err
	}

	dealType, err := listing.ParseDealType(cmd.DealType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	requested := publication.StatusDraft
	if cmd.RequestedStatus != "" {
		requested, err = publication.ParseStatus(cmd.RequestedStatus)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	city, err := uc.cityRepo.GetByID(ctx, cmd.CityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load city: %w", err)
	}
	if city == nil {
		return nil, errors.NewValidationError("unknown city")
	}

	l, err := listing.NewListing(cmd.ActorID, cmd.CityID, cmd.Title, cmd.Description,
		dealType, cmd.Price, cmd.MonthlyRent, cmd.Attrs, cmd.ImageURL, cmd.Gallery, requested)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.listingRepo.Create(txCtx, l); err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}
		if !operator {
			if err := uc.entitlement.ConsumeQuota(txCtx, cmd.ActorID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// The locked re-check can lose the race the unlocked IsEntitled won.
		if stderrors.Is(err, subscription.ErrNoSubscription) ||
			stderrors.Is(err, subscription.ErrSubscriptionInactive) ||
			stderrors.Is(err, subscription.ErrQuotaExhausted) {
			return nil, errors.NewQuotaRequiredError(constants.ErrMsgSubscriptionNeeded)
		}
		uc.logger.Errorw("listing creation failed", "agent_id", cmd.ActorID, "error", err)
		return nil, err
	}

	uc.logger.Infow("listing created",
		"sid", l.SID(),
		"agent_id", cmd.ActorID,
		"status", l.Status())

	if l.Status() == publication.StatusPendingReview {
		if err := uc.notifier.SendSubmissionNotice("listing", l.Title(), actor.Name()); err != nil {
			uc.logger.Warnw("submission notice failed", "sid", l.SID(), "error", err)
		}
	}

	resp := dto.NewListingResponse(l)
	resp.CityName = city.Name()
	resp.OwnerSID = actor.SID()
	resp.OwnerName = actor.Name()
	return &resp, nil
}

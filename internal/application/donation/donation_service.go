package donation

import (
	"context"
	"errors"
	"fmt"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/donation"
	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DonationService handles donation business operations
type DonationService struct {
	scope        FulfillmentScope
	donationRepo donation.DonationRepository
	needRepo     charity.NeedRepository
	orgRepo      charity.OrganizationRepository
	foodRepo     catalog.FoodRepository
	userRepo     identity.UserRepository
	logger       *zap.Logger
}

// NewDonationService creates a new DonationService
func NewDonationService(
	scope FulfillmentScope,
	donationRepo donation.DonationRepository,
	needRepo charity.NeedRepository,
	orgRepo charity.OrganizationRepository,
	foodRepo catalog.FoodRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *DonationService {
	return &DonationService{
		scope:        scope,
		donationRepo: donationRepo,
		needRepo:     needRepo,
		orgRepo:      orgRepo,
		foodRepo:     foodRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Place pledges a new donation from a donor against an active need
func (s *DonationService) Place(ctx context.Context, donorID uuid.UUID, req PlaceDonationRequest) (*DonationResponse, error) {
	need, err := s.needRepo.FindByID(ctx, req.NeedID)
	if err != nil {
		return nil, err
	}
	if !need.Active {
		return nil, shared.NewDomainError("NEED_INACTIVE", "This need is no longer accepting donations")
	}

	org, err := s.orgRepo.FindByID(ctx, need.OrganizationID)
	if err != nil {
		return nil, err
	}
	if !org.Active {
		return nil, shared.NewDomainError("ORGANIZATION_INACTIVE", "This organization is not accepting donations")
	}

	d, err := donation.NewDonation(donorID, need.OrganizationID, need.FoodID, need.ID, req.Quantity, req.Message)
	if err != nil {
		return nil, err
	}

	if err := s.donationRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("Donation placed",
		zap.String("donation_id", d.ID.String()),
		zap.String("donor_id", donorID.String()),
		zap.String("need_id", need.ID.String()),
		zap.String("quantity", req.Quantity.String()))

	resp := ToDonationResponse(d)
	s.enrich(ctx, &resp)
	return &resp, nil
}

// GetForDonor retrieves a donation, scoped to its donor. Donations of other
// donors look like they don't exist.
func (s *DonationService) GetForDonor(ctx context.Context, donorID, donationID uuid.UUID) (*DonationResponse, error) {
	d, err := s.donationRepo.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if d.DonorID != donorID {
		return nil, shared.ErrNotFound
	}
	resp := ToDonationResponse(d)
	s.enrich(ctx, &resp)
	return &resp, nil
}

// ListByDonor returns all donations placed by a donor
func (s *DonationService) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]DonationResponse, error) {
	donations, err := s.donationRepo.FindByDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, donations), nil
}

// ListByOrganization returns donations received by an organization,
// optionally filtered by status
func (s *DonationService) ListByOrganization(ctx context.Context, organizationID uuid.UUID, status *donation.DonationStatus) ([]DonationResponse, error) {
	var (
		donations []donation.Donation
		err       error
	)
	if status != nil {
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown donation status")
		}
		donations, err = s.donationRepo.FindByOrganizationAndStatus(ctx, organizationID, *status)
	} else {
		donations, err = s.donationRepo.FindByOrganization(ctx, organizationID)
	}
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, donations), nil
}

// CountsForDonor returns the donor's donations grouped by status
func (s *DonationService) CountsForDonor(ctx context.Context, donorID uuid.UUID) ([]StatusCountResponse, error) {
	counts, err := s.donationRepo.CountByDonorAndStatus(ctx, donorID)
	if err != nil {
		return nil, err
	}
	return toStatusCountResponses(counts), nil
}

// CountsForOrganization returns the organization's donations grouped by status
func (s *DonationService) CountsForOrganization(ctx context.Context, organizationID uuid.UUID) ([]StatusCountResponse, error) {
	counts, err := s.donationRepo.CountByOrganizationAndStatus(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return toStatusCountResponses(counts), nil
}

// CancelByDonor cancels a donor's own donation. Only pending donations may
// be cancelled by the donor; once the organization has confirmed, the
// lifecycle belongs to the organization.
func (s *DonationService) CancelByDonor(ctx context.Context, donorID, donationID uuid.UUID) (*DonationResponse, error) {
	d, err := s.donationRepo.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if d.DonorID != donorID {
		return nil, shared.ErrNotFound
	}
	if d.Status != donation.StatusPending {
		return nil, shared.NewDomainError("NOT_CANCELLABLE", "Only pending donations can be cancelled")
	}

	if err := d.Cancel(); err != nil {
		return nil, err
	}
	if err := s.donationRepo.SaveWithLock(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("Donation cancelled by donor",
		zap.String("donation_id", d.ID.String()),
		zap.String("donor_id", donorID.String()))

	resp := ToDonationResponse(d)
	s.enrich(ctx, &resp)
	return &resp, nil
}

// ApplyStatusChange moves a donation to a new status on behalf of the
// receiving organization. When the donation leaves PENDING for a received
// status, the backing need is credited in the same transaction: its received
// total grows by the donation quantity and the need closes once the target
// is met. A donation is credited at most once; later transitions (including
// cancellation after the credit) never adjust the need again.
func (s *DonationService) ApplyStatusChange(ctx context.Context, organizationID, donationID uuid.UUID, newStatus donation.DonationStatus) (*StatusChangeResponse, error) {
	var result StatusChangeResponse

	err := s.scope.Execute(ctx, func(repos FulfillmentRepositories) error {
		d, err := repos.DonationRepo().FindByID(ctx, donationID)
		if err != nil {
			return err
		}
		if d.OrganizationID != organizationID {
			return shared.ErrNotFound
		}

		creditable, err := d.ChangeStatus(newStatus)
		if err != nil {
			return err
		}

		// A deleted need row must not strand the donation lifecycle: the
		// status change commits without a credit.
		need, err := repos.NeedRepo().FindByID(ctx, d.NeedID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return err
			}
			s.logger.Warn("Need row missing for donation, committing status change without credit",
				zap.String("donation_id", d.ID.String()),
				zap.String("need_id", d.NeedID.String()))
			need = nil
		}

		if creditable && need != nil {
			goalReached, err := need.Credit(d.Quantity)
			if err != nil {
				return err
			}
			if err := repos.NeedRepo().SaveWithLock(ctx, need); err != nil {
				return err
			}
			d.MarkCredited()

			result.NeedCredited = true
			result.GoalReached = goalReached
		}

		if err := repos.DonationRepo().SaveWithLock(ctx, d); err != nil {
			return err
		}

		result.Donation = ToDonationResponse(d)
		if need != nil {
			result.PercentReceived = need.PercentReceived().Round(1)
			result.NeedActive = need.Active
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.NeedCredited {
		if result.GoalReached {
			result.Notice = "Goal reached! The need has been fulfilled and closed."
		} else {
			result.Notice = fmt.Sprintf("The need is now at %s%% of its target.", result.PercentReceived.String())
		}
	}

	s.logger.Info("Donation status changed",
		zap.String("donation_id", donationID.String()),
		zap.String("organization_id", organizationID.String()),
		zap.String("new_status", newStatus.String()),
		zap.Bool("need_credited", result.NeedCredited),
		zap.Bool("goal_reached", result.GoalReached))

	s.enrich(ctx, &result.Donation)
	return &result, nil
}

// enrich fills display names on a single response; lookup failures leave
// the fields empty rather than failing the request
func (s *DonationService) enrich(ctx context.Context, resp *DonationResponse) {
	if user, err := s.userRepo.FindByID(ctx, resp.DonorID); err == nil {
		resp.DonorName = user.DisplayName()
	}
	if org, err := s.orgRepo.FindByID(ctx, resp.OrganizationID); err == nil {
		resp.OrganizationName = org.Name
	}
	if food, err := s.foodRepo.FindByID(ctx, resp.FoodID); err == nil {
		resp.FoodName = food.Name
		resp.Unit = food.Unit.String()
	}
}

func (s *DonationService) toResponses(ctx context.Context, donations []donation.Donation) []DonationResponse {
	responses := make([]DonationResponse, 0, len(donations))
	for i := range donations {
		resp := ToDonationResponse(&donations[i])
		s.enrich(ctx, &resp)
		responses = append(responses, resp)
	}
	return responses
}

func toStatusCountResponses(counts []donation.StatusCount) []StatusCountResponse {
	responses := make([]StatusCountResponse, 0, len(counts))
	for _, c := range counts {
		responses = append(responses, StatusCountResponse{
			Status: c.Status.String(),
			Count:  c.Count,
		})
	}
	return responses
}

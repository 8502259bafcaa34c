package charity

import (
	"context"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NeedService handles need management for organizations and need browsing
// for donors
type NeedService struct {
	needRepo charity.NeedRepository
	orgRepo  charity.OrganizationRepository
	foodRepo catalog.FoodRepository
	logger   *zap.Logger
}

// NewNeedService creates a new NeedService
func NewNeedService(
	needRepo charity.NeedRepository,
	orgRepo charity.OrganizationRepository,
	foodRepo catalog.FoodRepository,
	logger *zap.Logger,
) *NeedService {
	return &NeedService{
		needRepo: needRepo,
		orgRepo:  orgRepo,
		foodRepo: foodRepo,
		logger:   logger,
	}
}

// Create opens a new need for an organization. An organization may have at
// most one active need per food.
func (s *NeedService) Create(ctx context.Context, organizationID uuid.UUID, req CreateNeedRequest) (*NeedResponse, error) {
	food, err := s.foodRepo.FindByID(ctx, req.FoodID)
	if err != nil {
		return nil, err
	}

	exists, err := s.needRepo.ExistsActiveForFood(ctx, organizationID, req.FoodID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_NEED", "An active need for this food already exists")
	}

	need, err := charity.NewNeed(organizationID, req.FoodID, req.TargetQuantity, charity.Priority(req.Priority), req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.needRepo.Save(ctx, need); err != nil {
		return nil, err
	}

	s.logger.Info("Need created",
		zap.String("need_id", need.ID.String()),
		zap.String("organization_id", organizationID.String()),
		zap.String("food", food.Name),
		zap.String("target", req.TargetQuantity.String()))

	resp := ToNeedResponse(need)
	resp.FoodName = food.Name
	resp.Unit = food.Unit.String()
	return &resp, nil
}

// Update edits a need owned by the organization
func (s *NeedService) Update(ctx context.Context, organizationID, needID uuid.UUID, req UpdateNeedRequest) (*NeedResponse, error) {
	need, err := s.findOwned(ctx, organizationID, needID)
	if err != nil {
		return nil, err
	}

	if err := need.UpdateDetails(req.TargetQuantity, charity.Priority(req.Priority), req.Notes, req.Active); err != nil {
		return nil, err
	}
	if err := s.needRepo.SaveWithLock(ctx, need); err != nil {
		return nil, err
	}

	resp := ToNeedResponse(need)
	s.enrichFood(ctx, &resp)
	return &resp, nil
}

// Deactivate closes a need owned by the organization
func (s *NeedService) Deactivate(ctx context.Context, organizationID, needID uuid.UUID) error {
	need, err := s.findOwned(ctx, organizationID, needID)
	if err != nil {
		return err
	}
	if !need.Active {
		return nil
	}

	need.Deactivate()
	if err := s.needRepo.SaveWithLock(ctx, need); err != nil {
		return err
	}

	s.logger.Info("Need deactivated",
		zap.String("need_id", needID.String()),
		zap.String("organization_id", organizationID.String()))
	return nil
}

// ListForOrganization returns all of an organization's needs, open and closed
func (s *NeedService) ListForOrganization(ctx context.Context, organizationID uuid.UUID) ([]NeedResponse, error) {
	needs, err := s.needRepo.FindByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, needs, false), nil
}

// Browse returns open needs of active organizations for donors, optionally
// narrowed by food category and a search term
func (s *NeedService) Browse(ctx context.Context, categoryID *uuid.UUID, search string) ([]NeedResponse, error) {
	needs, err := s.needRepo.FindBrowsable(ctx, categoryID, search)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, needs, true), nil
}

// GetOpen returns a single need for the donation page. Needs that are
// closed, or whose organization is deactivated, read as not found.
func (s *NeedService) GetOpen(ctx context.Context, needID uuid.UUID) (*NeedResponse, error) {
	need, err := s.needRepo.FindByID(ctx, needID)
	if err != nil {
		return nil, err
	}
	if !need.Active {
		return nil, shared.ErrNotFound
	}
	org, err := s.orgRepo.FindByID(ctx, need.OrganizationID)
	if err != nil {
		return nil, err
	}
	if !org.Active {
		return nil, shared.ErrNotFound
	}

	resp := ToNeedResponse(need)
	resp.OrganizationName = org.Name
	s.enrichFood(ctx, &resp)
	return &resp, nil
}

// findOwned loads a need and verifies ownership. A need belonging to another
// organization is reported as not found.
func (s *NeedService) findOwned(ctx context.Context, organizationID, needID uuid.UUID) (*charity.Need, error) {
	need, err := s.needRepo.FindByID(ctx, needID)
	if err != nil {
		return nil, err
	}
	if need.OrganizationID != organizationID {
		return nil, shared.ErrNotFound
	}
	return need, nil
}

func (s *NeedService) enrichFood(ctx context.Context, resp *NeedResponse) {
	if food, err := s.foodRepo.FindByID(ctx, resp.FoodID); err == nil {
		resp.FoodName = food.Name
		resp.Unit = food.Unit.String()
	}
}

func (s *NeedService) toResponses(ctx context.Context, needs []charity.Need, withOrgName bool) []NeedResponse {
	orgNames := make(map[uuid.UUID]string)
	responses := make([]NeedResponse, 0, len(needs))
	for i := range needs {
		resp := ToNeedResponse(&needs[i])
		s.enrichFood(ctx, &resp)
		if withOrgName {
			name, ok := orgNames[resp.OrganizationID]
			if !ok {
				if org, err := s.orgRepo.FindByID(ctx, resp.OrganizationID); err == nil {
					name = org.Name
				}
				orgNames[resp.OrganizationID] = name
			}
			resp.OrganizationName = name
		}
		responses = append(responses, resp)
	}
	return responses
}

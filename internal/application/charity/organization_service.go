package charity

import (
	"context"

	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrganizationService handles organization profile operations
type OrganizationService struct {
	orgRepo charity.OrganizationRepository
	needSvc *NeedService
	logger  *zap.Logger
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(orgRepo charity.OrganizationRepository, needSvc *NeedService, logger *zap.Logger) *OrganizationService {
	return &OrganizationService{
		orgRepo: orgRepo,
		needSvc: needSvc,
		logger:  logger,
	}
}

// ListActive returns active organizations for public browsing
func (s *OrganizationService) ListActive(ctx context.Context, search string) ([]OrganizationResponse, error) {
	filter := shared.DefaultFilter()
	filter.Search = search
	filter.OrderBy = "name"
	filter.OrderDir = "asc"
	filter.PageSize = 100

	orgs, err := s.orgRepo.FindActive(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		responses = append(responses, ToOrganizationResponse(&orgs[i]))
	}
	return responses, nil
}

// GetProfile returns an organization's public page: profile plus open needs.
// Inactive organizations have no public page.
func (s *OrganizationService) GetProfile(ctx context.Context, organizationID uuid.UUID) (*OrganizationProfileResponse, error) {
	org, err := s.orgRepo.FindByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if !org.Active {
		return nil, shared.ErrNotFound
	}

	needs, err := s.needSvc.needRepo.FindActiveByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	needResponses := make([]NeedResponse, 0, len(needs))
	for i := range needs {
		resp := ToNeedResponse(&needs[i])
		s.needSvc.enrichFood(ctx, &resp)
		resp.OrganizationName = org.Name
		needResponses = append(needResponses, resp)
	}

	return &OrganizationProfileResponse{
		Organization: ToOrganizationResponse(org),
		Needs:        needResponses,
	}, nil
}

// GetByUser returns the organization owned by a user
func (s *OrganizationService) GetByUser(ctx context.Context, userID uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.orgRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToOrganizationResponse(org)
	return &resp, nil
}

// UpdateProfile edits the organization owned by a user
func (s *OrganizationService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateOrganizationRequest) (*OrganizationResponse, error) {
	org, err := s.orgRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	org.Name = req.Name
	org.SetContact(req.Description, req.Address, req.ContactPhone, req.ContactEmail, req.Responsible)
	if err := s.orgRepo.Save(ctx, org); err != nil {
		return nil, err
	}

	s.logger.Info("Organization profile updated",
		zap.String("organization_id", org.ID.String()),
		zap.String("user_id", userID.String()))

	resp := ToOrganizationResponse(org)
	return &resp, nil
}

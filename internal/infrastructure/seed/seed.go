package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/donation"
	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/alimenta/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder populates the database with baseline and demo data. All operations
// are idempotent: existing rows are left untouched.
type Seeder struct {
	db           *gorm.DB
	userRepo     identity.UserRepository
	orgRepo      charity.OrganizationRepository
	categoryRepo catalog.FoodCategoryRepository
	foodRepo     catalog.FoodRepository
	needRepo     charity.NeedRepository
	donationRepo donation.DonationRepository
	logger       *zap.Logger
}

// NewSeeder creates a Seeder over an open database connection
func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:           db,
		userRepo:     persistence.NewGormUserRepository(db),
		orgRepo:      persistence.NewGormOrganizationRepository(db),
		categoryRepo: persistence.NewGormFoodCategoryRepository(db),
		foodRepo:     persistence.NewGormFoodRepository(db),
		needRepo:     persistence.NewGormNeedRepository(db),
		donationRepo: persistence.NewGormDonationRepository(db),
		logger:       logger,
	}
}

type foodSpec struct {
	name string
	unit catalog.UnitOfMeasure
}

var baseCatalog = map[string][]foodSpec{
	"Grains":     {{"Rice", catalog.UnitKilogram}, {"Pasta", catalog.UnitKilogram}, {"Oats", catalog.UnitKilogram}},
	"Proteins":   {{"Beans", catalog.UnitKilogram}, {"Lentils", catalog.UnitKilogram}, {"Canned Tuna", catalog.UnitPiece}},
	"Vegetables": {{"Potatoes", catalog.UnitKilogram}, {"Carrots", catalog.UnitKilogram}},
	"Dairy":      {{"Milk", catalog.UnitLiter}, {"Powdered Milk", catalog.UnitKilogram}},
	"Pantry":     {{"Cooking Oil", catalog.UnitLiter}, {"Sugar", catalog.UnitKilogram}, {"Salt", catalog.UnitKilogram}},
}

// Seed populates the admin account, the food catalog and the demo
// accounts, organizations and needs
func (s *Seeder) Seed(ctx context.Context, adminPassword string) error {
	if err := s.ensureAdmin(ctx, adminPassword); err != nil {
		return err
	}

	for categoryName, foods := range baseCatalog {
		category, err := s.ensureCategory(ctx, categoryName)
		if err != nil {
			return err
		}
		for _, spec := range foods {
			if err := s.ensureFood(ctx, category.ID, spec); err != nil {
				return err
			}
		}
	}

	if err := s.seedDemoAccounts(ctx); err != nil {
		return err
	}

	s.logger.Info("Seed data applied")
	return nil
}

func (s *Seeder) ensureAdmin(ctx context.Context, password string) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, "admin")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	admin, err := identity.NewUser("admin", "admin@alimenta.local", password, identity.RoleAdmin)
	if err != nil {
		return err
	}
	admin.SetProfile("Platform", "Admin", "", "")
	if err := s.userRepo.Save(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("Admin account created", zap.String("username", admin.Username))
	return nil
}

func (s *Seeder) ensureCategory(ctx context.Context, name string) (*catalog.FoodCategory, error) {
	if existing, err := s.categoryRepo.FindByName(ctx, name); err == nil {
		return existing, nil
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	category, err := catalog.NewFoodCategory(name, "")
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Seeder) ensureFood(ctx context.Context, categoryID uuid.UUID, spec foodSpec) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&catalog.Food{}).
		Where("name = ?", spec.name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	food, err := catalog.NewFood(spec.name, &categoryID, "", spec.unit)
	if err != nil {
		return err
	}
	return s.foodRepo.Save(ctx, food)
}

// seedDemoAccounts creates a donor and two organizations with open needs so
// a fresh install has something to show
func (s *Seeder) seedDemoAccounts(ctx context.Context) error {
	if _, err := s.ensureAccount(ctx, "maria", "maria@example.com", identity.RoleDonor, "Maria", "Silva"); err != nil {
		return err
	}

	org1, err := s.ensureOrganization(ctx, "casa.feliz", "contact@casafeliz.org", "Casa Feliz", "REG-0001",
		"Community shelter serving daily meals in the east district")
	if err != nil {
		return err
	}
	org2, err := s.ensureOrganization(ctx, "pao.diario", "contact@paodiario.org", "Pão Diário", "REG-0002",
		"Food bank distributing weekly baskets to registered families")
	if err != nil {
		return err
	}

	rice, err := s.findFood(ctx, "Rice")
	if err != nil {
		return err
	}
	beans, err := s.findFood(ctx, "Beans")
	if err != nil {
		return err
	}
	oil, err := s.findFood(ctx, "Cooking Oil")
	if err != nil {
		return err
	}

	if _, err := s.ensureNeed(ctx, org1.ID, rice.ID, decimal.NewFromInt(100), charity.PriorityHigh, "Staple for daily meals"); err != nil {
		return err
	}
	if _, err := s.ensureNeed(ctx, org1.ID, oil.ID, decimal.NewFromInt(40), charity.PriorityMedium, ""); err != nil {
		return err
	}
	if _, err := s.ensureNeed(ctx, org2.ID, beans.ID, decimal.NewFromInt(80), charity.PriorityUrgent, "Running low this week"); err != nil {
		return err
	}
	return nil
}

func (s *Seeder) ensureAccount(ctx context.Context, username, email string, role identity.Role, firstName, lastName string) (*identity.User, error) {
	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return existing, nil
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(username, email, "demo-password-123", role)
	if err != nil {
		return nil, err
	}
	user.SetProfile(firstName, lastName, "", "")
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Seeder) ensureOrganization(ctx context.Context, username, email, name, registration, description string) (*charity.Organization, error) {
	user, err := s.ensureAccount(ctx, username, email, identity.RoleOrganization, "", "")
	if err != nil {
		return nil, err
	}

	if existing, err := s.orgRepo.FindByUserID(ctx, user.ID); err == nil {
		return existing, nil
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	org, err := charity.NewOrganization(user.ID, name, registration)
	if err != nil {
		return nil, err
	}
	org.SetContact(description, "", "", email, "")
	if err := s.orgRepo.Save(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *Seeder) findFood(ctx context.Context, name string) (*catalog.Food, error) {
	var food catalog.Food
	if err := s.db.WithContext(ctx).First(&food, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("seed food %q not found, run the base seed first: %w", name, err)
	}
	return &food, nil
}

func (s *Seeder) ensureNeed(ctx context.Context, orgID, foodID uuid.UUID, target decimal.Decimal, priority charity.Priority, notes string) (*charity.Need, error) {
	exists, err := s.needRepo.ExistsActiveForFood(ctx, orgID, foodID)
	if err != nil {
		return nil, err
	}
	if exists {
		needs, err := s.needRepo.FindActiveByOrganization(ctx, orgID)
		if err != nil {
			return nil, err
		}
		for i := range needs {
			if needs[i].FoodID == foodID {
				return &needs[i], nil
			}
		}
	}

	need, err := charity.NewNeed(orgID, foodID, target, priority, notes)
	if err != nil {
		return nil, err
	}
	if err := s.needRepo.Save(ctx, need); err != nil {
		return nil, err
	}
	return need, nil
}

// DemoDonations pledges a pending donation from the demo donor against every
// open need, giving organizations a workflow to exercise. Skipped when
// donations already exist.
func (s *Seeder) DemoDonations(ctx context.Context) error {
	count, err := s.donationRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Donations already present, skipping demo donations")
		return nil
	}

	donor, err := s.userRepo.FindByUsername(ctx, "maria")
	if err != nil {
		return fmt.Errorf("demo donor not found, run the seed command first: %w", err)
	}

	var needs []charity.Need
	if err := s.db.WithContext(ctx).Where("active = ?", true).Find(&needs).Error; err != nil {
		return err
	}

	for i := range needs {
		need := &needs[i]
		quantity := need.TargetQuantity.Div(decimal.NewFromInt(4)).Round(0)
		if quantity.LessThanOrEqual(decimal.Zero) {
			quantity = decimal.NewFromInt(1)
		}
		pledge, err := donation.NewDonation(donor.ID, need.OrganizationID, need.FoodID, need.ID, quantity, "Happy to help")
		if err != nil {
			return err
		}
		if err := s.donationRepo.Save(ctx, pledge); err != nil {
			return err
		}
	}

	s.logger.Info("Demo donations created", zap.Int("count", len(needs)))
	return nil
}

// ResetDonations wipes all donations and restores every need to an
// uncredited, open state. Meant for demo environments only.
func (s *Seeder) ResetDonations(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&donation.Donation{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&charity.Need{}).Where("1 = 1").
			Updates(map[string]interface{}{
				"received_quantity": decimal.Zero,
				"active":            true,
			}).Error; err != nil {
			return err
		}
		s.logger.Info("Donations reset")
		return nil
	})
}

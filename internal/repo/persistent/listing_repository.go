package persistent

import (
	"motorhub/internal/entity"
	"motorhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListingRepository interface {
	Create(listing *entity.Listing) error
	CountByAccount(accountID string, statuses []entity.ListingStatus) (int64, error)
	ListByAccount(accountID string) ([]*entity.Listing, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(listing *entity.Listing) error {
	listingModel := ToListingModel(listing)
	if listingModel.ID == "" {
		listingModel.ID = uuid.New().String()
	}
	if err := r.db.Create(listingModel).Error; err != nil {
		return err
	}
	*listing = *ToListingEntity(listingModel)
	return nil
}

func (r *listingRepository) CountByAccount(accountID string, statuses []entity.ListingStatus) (int64, error) {
	query := r.db.Model(&model.ListingModel{}).Where("account_id = ?", accountID)
	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		query = query.Where("status IN ?", values)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *listingRepository) ListByAccount(accountID string) ([]*entity.Listing, error) {
	var listingModels []model.ListingModel
	if err := r.db.Where("account_id = ?", accountID).Order("created_at DESC").Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]*entity.Listing, len(listingModels))
	for i := range listingModels {
		listings[i] = ToListingEntity(&listingModels[i])
	}
	return listings, nil
}

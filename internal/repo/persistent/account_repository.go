package persistent

import (
	"motorhub/internal/entity"
	"motorhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByOwnerID(ownerID string) (*entity.Account, error)
	Update(account *entity.Account) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(account *entity.Account) error {
	accountModel := ToAccountModel(account)
	if accountModel.ID == "" {
		accountModel.ID = uuid.New().String()
	}
	if err := r.db.Create(accountModel).Error; err != nil {
		return err
	}
	*account = *ToAccountEntity(accountModel)
	return nil
}

func (r *accountRepository) GetByID(id string) (*entity.Account, error) {
	var accountModel model.AccountModel
	if err := r.db.Where("id = ?", id).First(&accountModel).Error; err != nil {
		return nil, err
	}
	return ToAccountEntity(&accountModel), nil
}

func (r *accountRepository) GetByOwnerID(ownerID string) (*entity.Account, error) {
	var accountModel model.AccountModel
	if err := r.db.Where("owner_id = ?", ownerID).First(&accountModel).Error; err != nil {
		return nil, err
	}
	return ToAccountEntity(&accountModel), nil
}

func (r *accountRepository) Update(account *entity.Account) error {
	return r.db.Save(ToAccountModel(account)).Error
}

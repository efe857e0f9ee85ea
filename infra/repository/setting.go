package repository

import (
	"context"

	"github.com/amirasaad/bankseed/pkg/domain/setting"
	"github.com/amirasaad/bankseed/pkg/repository"
	"gorm.io/gorm"
)

type settingRepository struct {
	table[setting.Setting, Setting]
}

// NewSettingRepository returns a settings repository bound to db.
func NewSettingRepository(db *gorm.DB, batchSize int) repository.SettingRepository {
	return &settingRepository{
		table: newTable(db, batchSize, settingToModel, settingToDomain),
	}
}

func (r *settingRepository) GetByKey(ctx context.Context, key string) (*setting.Setting, error) {
	return r.first(ctx, r.db.Where(&Setting{Key: key}))
}

func settingToModel(s *setting.Setting) *Setting {
	return &Setting{ID: s.ID, Key: s.Key, Value: s.Value}
}

func settingToDomain(m *Setting) *setting.Setting {
	return &setting.Setting{ID: m.ID, Key: m.Key, Value: m.Value}
}

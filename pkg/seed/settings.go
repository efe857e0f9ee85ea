package seed

import (
	"context"

	"github.com/amirasaad/bankseed/pkg/domain/setting"
	"github.com/amirasaad/bankseed/pkg/repository"
)

// SeedSettings inserts the dataset's settings when the settings table is empty.
func (s *Seeder) SeedSettings(ctx context.Context) error {
	return s.seedTable(ctx, "settings",
		func(uow repository.UnitOfWork) emptyChecker { return uow.SettingRepository() },
		func(ctx context.Context, uow repository.UnitOfWork) (int, error) {
			settings := make([]*setting.Setting, 0, len(s.data.Settings))
			for _, kv := range s.data.Settings {
				settings = append(settings, setting.New(kv.Key, kv.Value))
			}
			return len(settings), uow.SettingRepository().CreateBatch(ctx, settings)
		},
	)
}

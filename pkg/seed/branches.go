package seed

import (
	"context"

	"github.com/amirasaad/bankseed/pkg/domain/branch"
	"github.com/amirasaad/bankseed/pkg/repository"
)

// SeedBranches inserts the dataset's branch codes when the branches table is empty.
func (s *Seeder) SeedBranches(ctx context.Context) error {
	return s.seedTable(ctx, "branches",
		func(uow repository.UnitOfWork) emptyChecker { return uow.BranchRepository() },
		func(ctx context.Context, uow repository.UnitOfWork) (int, error) {
			branches := make([]*branch.Branch, 0, len(s.data.Branches))
			for _, code := range s.data.Branches {
				branches = append(branches, branch.New(code))
			}
			return len(branches), uow.BranchRepository().CreateBatch(ctx, branches)
		},
	)
}

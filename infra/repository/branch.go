package repository

import (
	"context"

	"github.com/amirasaad/bankseed/pkg/domain/branch"
	"github.com/amirasaad/bankseed/pkg/repository"
	"gorm.io/gorm"
)

type branchRepository struct {
	table[branch.Branch, Branch]
}

// NewBranchRepository returns a branches repository bound to db.
func NewBranchRepository(db *gorm.DB, batchSize int) repository.BranchRepository {
	return &branchRepository{
		table: newTable(db, batchSize, branchToModel, branchToDomain),
	}
}

// First uses Take, which adds no ORDER BY clause.
func (r *branchRepository) First(ctx context.Context) (*branch.Branch, error) {
	return r.first(ctx, r.db)
}

func branchToModel(b *branch.Branch) *Branch {
	return &Branch{ID: b.ID, BranchCode: b.BranchCode}
}

func branchToDomain(m *Branch) *branch.Branch {
	return &branch.Branch{ID: m.ID, BranchCode: m.BranchCode}
}

package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Caarnus/newburgh-lodge/internal/constants"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const roleCacheKey = "roles:all"

// RoleRepository reads the seeded role reference table. Rows never change
// after the seed, so the full list is cached in memory.
type RoleRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{
		db:    db,
		cache: cache.New(10*time.Minute, 30*time.Minute),
	}
}

// GetAll returns every seeded role.
func (r *RoleRepository) GetAll(ctx context.Context) ([]gormModels.Role, error) {
	if val, found := r.cache.Get(roleCacheKey); found {
		if roles, ok := val.([]gormModels.Role); ok {
			return roles, nil
		}
	}

	var roles []gormModels.Role
	if err := r.db.WithContext(ctx).Order("id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	r.cache.Set(roleCacheKey, roles, cache.DefaultExpiration)
	return roles, nil
}

// GetByCodes resolves role rows for the given codes, preserving the seeded
// role rows (not the request order).
func (r *RoleRepository) GetByCodes(ctx context.Context, codes []constants.RoleCode) ([]gormModels.Role, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[constants.RoleCode]bool, len(codes))
	for _, c := range codes {
		wanted[c] = true
	}

	matched := make([]gormModels.Role, 0, len(codes))
	for _, role := range all {
		if wanted[role.Code] {
			matched = append(matched, role)
		}
	}
	return matched, nil
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// periodRepository implements the adapter.PeriodRepository interface.
type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new budget period repository instance.
func NewPeriodRepository(db *gorm.DB) adapter.PeriodRepository {
	return &periodRepository{
		db: db,
	}
}

// CreateWithSnapshot creates the period and copies every active category's
// budget limit into an override row, all inside one transaction so a failed
// snapshot rolls the period back too.
func (r *periodRepository) CreateWithSnapshot(ctx context.Context, period *entity.BudgetPeriod) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		periodModel := model.BudgetPeriodFromEntity(period)
		if err := tx.Create(periodModel).Error; err != nil {
			return err
		}

		var categoryModels []model.CategoryModel
		if err := tx.Where("is_active = ?", true).Find(&categoryModels).Error; err != nil {
			return err
		}
		if len(categoryModels) == 0 {
			return nil
		}

		overrides := make([]model.PeriodCategoryBudgetModel, len(categoryModels))
		for i, cm := range categoryModels {
			overrides[i] = model.PeriodCategoryBudgetModel{
				ID:          uuid.New(),
				PeriodID:    period.ID,
				CategoryID:  cm.ID,
				BudgetLimit: cm.BudgetLimit,
			}
		}

		return tx.Create(&overrides).Error
	})
}

// FindByID retrieves a budget period by its ID.
func (r *periodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetPeriod, error) {
	var periodModel model.BudgetPeriodModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPeriodNotFound
		}
		return nil, result.Error
	}
	return periodModel.ToEntity(), nil
}

// FindAll retrieves all budget periods, newest range first.
func (r *periodRepository) FindAll(ctx context.Context) ([]*entity.BudgetPeriod, error) {
	var periodModels []model.BudgetPeriodModel
	result := r.db.WithContext(ctx).Order("start_date DESC").Find(&periodModels)
	if result.Error != nil {
		return nil, result.Error
	}

	periods := make([]*entity.BudgetPeriod, len(periodModels))
	for i, pm := range periodModels {
		periods[i] = pm.ToEntity()
	}
	return periods, nil
}

// FindCurrent returns the active period whose range contains the given day.
// Overlapping actives should not exist, but if they do the latest start date
// wins. Returns nil without error when no period matches.
func (r *periodRepository) FindCurrent(ctx context.Context, on time.Time) (*entity.BudgetPeriod, error) {
	day := entity.TruncateToDay(on)

	var periodModel model.BudgetPeriodModel
	result := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, day, day).
		Order("start_date DESC").
		First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return periodModel.ToEntity(), nil
}

// CountOverlappingActive counts active periods overlapping [start, end]:
// either bound of the new range falls within an existing range, or an
// existing range starts within the new one.
func (r *periodRepository) CountOverlappingActive(ctx context.Context, start, end time.Time) (int64, error) {
	start = entity.TruncateToDay(start)
	end = entity.TruncateToDay(end)

	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BudgetPeriodModel{}).
		Where("is_active = ?", true).
		Where(
			"(start_date <= ? AND end_date >= ?) OR (start_date <= ? AND end_date >= ?) OR (start_date >= ? AND start_date <= ?)",
			start, start,
			end, end,
			start, end,
		).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing budget period in the database.
func (r *periodRepository) Update(ctx context.Context, period *entity.BudgetPeriod) error {
	periodModel := model.BudgetPeriodFromEntity(period)
	result := r.db.WithContext(ctx).Save(periodModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a period and its override rows in one transaction.
func (r *periodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PeriodCategoryBudgetModel{}, "period_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.BudgetPeriodModel{}, "id = ?", id).Error
	})
}

// FindBudgets retrieves the override rows of a period with joined category
// names, ordered by category name.
func (r *periodRepository) FindBudgets(ctx context.Context, periodID uuid.UUID) ([]*entity.PeriodBudgetWithCategory, error) {
	var rows []struct {
		ID           uuid.UUID       `gorm:"column:id"`
		PeriodID     uuid.UUID       `gorm:"column:period_id"`
		CategoryID   uuid.UUID       `gorm:"column:category_id"`
		BudgetLimit  decimal.Decimal `gorm:"column:budget_limit"`
		CategoryName string          `gorm:"column:category_name"`
	}

	query := `
		SELECT
			pcb.id,
			pcb.period_id,
			pcb.category_id,
			pcb.budget_limit,
			c.name AS category_name
		FROM period_category_budgets pcb
		INNER JOIN categories c ON c.id = pcb.category_id
		WHERE pcb.period_id = ?
		ORDER BY c.name ASC
	`

	err := r.db.WithContext(ctx).Raw(query, periodID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]*entity.PeriodBudgetWithCategory, len(rows))
	for i, row := range rows {
		budgets[i] = &entity.PeriodBudgetWithCategory{
			Budget: &entity.PeriodCategoryBudget{
				ID:          row.ID,
				PeriodID:    row.PeriodID,
				CategoryID:  row.CategoryID,
				BudgetLimit: row.BudgetLimit,
			},
			CategoryName: row.CategoryName,
		}
	}
	return budgets, nil
}

// UpdateBudgets applies override-limit changes for a period atomically. A
// missing (period, category) row aborts and rolls back the whole batch.
func (r *periodRepository) UpdateBudgets(ctx context.Context, periodID uuid.UUID, updates []adapter.PeriodBudgetUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			result := tx.Model(&model.PeriodCategoryBudgetModel{}).
				Where("period_id = ? AND category_id = ?", periodID, update.CategoryID).
				Update("budget_limit", update.BudgetLimit)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerror.ErrPeriodBudgetNotFound
			}
		}
		return nil
	})
}

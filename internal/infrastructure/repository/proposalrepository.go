package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/conseccomms/conseccomms/internal/domain/proposal"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/mappers"
	"github.com/conseccomms/conseccomms/internal/infrastructure/persistence/models"
	"github.com/conseccomms/conseccomms/internal/shared/db"
	apperrors "github.com/conseccomms/conseccomms/internal/shared/errors"
)

var allowedProposalOrderByFields = map[string]bool{
	"id":              true,
	"proposal_number": true,
	"title":           true,
	"client_name":     true,
	"status":          true,
	"total_amount":    true,
	"valid_until":     true,
	"created_at":      true,
	"updated_at":      true,
}

var errStaleProposal = errors.New("stale proposal")

type ProposalRepository struct {
	db     *gorm.DB
	mapper mappers.ProposalMapper
}

func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{
		db:     db,
		mapper: mappers.NewProposalMapper(),
	}
}

func preloadLineItems(tx *gorm.DB) *gorm.DB {
	return tx.Preload("LineItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

func (r *ProposalRepository) Create(ctx context.Context, p *proposal.Proposal) error {
	model := r.mapper.ToModel(p)
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("LineItems").Create(model).Error; err != nil {
			return err
		}
		items := mappers.LineItemsToModels(model.ID, p.LineItems())
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create proposal: %w", err)
	}
	return p.SetID(model.ID)
}

// Update rewrites the proposal row and replaces its line items as a whole.
// The row must still hold the status the proposal was loaded with; a
// stale or foreign proposal yields a conflict and its line items are left
// untouched.
func (r *ProposalRepository) Update(ctx context.Context, p *proposal.Proposal) error {
	model := r.mapper.ToModel(p)
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ProposalModel{}).
			Scopes(db.OwnedBy(model.UserID)).
			Where("id = ? AND status = ?", model.ID, p.StoredStatus().String()).
			Select("title", "client_name", "client_email", "description", "status",
				"total_amount", "valid_until", "updated_at", "sent_at").
			Omit(clause.Associations).
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errStaleProposal
		}

		if err := tx.Where("proposal_id = ?", model.ID).Delete(&models.ProposalLineItemModel{}).Error; err != nil {
			return err
		}
		items := mappers.LineItemsToModels(model.ID, p.LineItems())
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if errors.Is(err, errStaleProposal) {
		return apperrors.NewConflictError("proposal has been modified by another request or not found")
	}
	if err != nil {
		return fmt.Errorf("failed to update proposal: %w", err)
	}
	p.MarkStored()
	return nil
}

func (r *ProposalRepository) Delete(ctx context.Context, userID, proposalID uint) error {
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Scopes(db.OwnedBy(userID)).Delete(&models.ProposalModel{}, proposalID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Where("proposal_id = ?", proposalID).Delete(&models.ProposalLineItemModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete proposal: %w", err)
	}
	return nil
}

func (r *ProposalRepository) GetByID(ctx context.Context, userID, proposalID uint) (*proposal.Proposal, error) {
	var model models.ProposalModel
	err := preloadLineItems(db.GetTxFromContext(ctx, r.db)).
		Scopes(db.OwnedBy(userID)).
		First(&model, proposalID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ProposalRepository) List(ctx context.Context, userID uint, filter proposal.Filter) ([]*proposal.Proposal, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProposalModel{}).
		Scopes(db.OwnedBy(userID))
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(client_name) LIKE ? OR LOWER(proposal_number) LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count proposals: %w", err)
	}

	order := filter.OrderClause(allowedProposalOrderByFields)
	if order == "" {
		order = "created_at DESC, id DESC"
	}

	var modelList []*models.ProposalModel
	err := preloadLineItems(query).
		Order(order).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list proposals: %w", err)
	}

	proposals, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return proposals, total, nil
}

// ListAll skips line items; callers only need the header fields.
func (r *ProposalRepository) ListAll(ctx context.Context, userID uint) ([]*proposal.Proposal, error) {
	var modelList []*models.ProposalModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

// ProposalSequenceAllocator keeps one counter row per year.
type ProposalSequenceAllocator struct {
	db *gorm.DB
}

func NewProposalSequenceAllocator(db *gorm.DB) *ProposalSequenceAllocator {
	return &ProposalSequenceAllocator{db: db}
}

// NextSequence bumps the year's counter and returns the new value. The
// upsert takes a row lock, so concurrent creators serialize on the year.
func (a *ProposalSequenceAllocator) NextSequence(ctx context.Context, year int) (int, error) {
	tx := db.GetTxFromContext(ctx, a.db)

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "year"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_seq": gorm.Expr("last_seq + 1"),
		}),
	}).Create(&models.ProposalSequenceModel{Year: year, LastSeq: 1}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to allocate proposal number: %w", err)
	}

	var seq models.ProposalSequenceModel
	if err := tx.Where("year = ?", year).First(&seq).Error; err != nil {
		return 0, fmt.Errorf("failed to read proposal sequence: %w", err)
	}
	return seq.LastSeq, nil
}

// Package repository provides the gorm-backed implementations of the domain
// persistence ports.
package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gymdesk/internal/domain/member"
	vo "gymdesk/internal/domain/member/valueobjects"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type MemberRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewMemberRepository(db *gorm.DB, logger logger.Interface) member.Repository {
	return &MemberRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// Create inserts the member. The unique index on the member code turns a
// concurrent duplicate allocation into a conflict error, which the creation
// usecase answers by re-counting and retrying.
func (r *MemberRepositoryImpl) Create(ctx context.Context, m *member.Member) error {
	model := r.toModel(m)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			r.logger.Warnw("member code collision on insert", "code", m.Code())
			return errors.NewConflictError("member code already exists", m.Code())
		}
		r.logger.Errorw("failed to create member", "error", err, "code", m.Code())
		return fmt.Errorf("failed to create member: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("member created", "member_id", model.ID, "code", m.Code())
	return nil
}

func (r *MemberRepositoryImpl) GetByCode(ctx context.Context, code string) (*member.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get member by code", "error", err, "code", code)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return r.toEntity(&model)
}

func (r *MemberRepositoryImpl) List(ctx context.Context, filter member.ListFilter) ([]*member.Member, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.MemberModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", string(filter.PaymentStatus))
	}
	if filter.PlanName != "" {
		query = query.Where("plan_name = ?", filter.PlanName)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count members", "error", err)
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize)

	var memberModels []*models.MemberModel
	if err := query.Order("join_date DESC, id DESC").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&memberModels).Error; err != nil {
		r.logger.Errorw("failed to list members", "error", err)
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}

	entities, err := r.toEntities(memberModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *MemberRepositoryImpl) ListAll(ctx context.Context) ([]*member.Member, error) {
	var memberModels []*models.MemberModel
	if err := r.db.WithContext(ctx).Order("id").Find(&memberModels).Error; err != nil {
		r.logger.Errorw("failed to list all members", "error", err)
		return nil, fmt.Errorf("failed to list all members: %w", err)
	}
	return r.toEntities(memberModels)
}

func (r *MemberRepositoryImpl) Update(ctx context.Context, m *member.Member) error {
	result := r.db.WithContext(ctx).Model(&models.MemberModel{}).
		Where("code = ?", m.Code()).
		Updates(map[string]interface{}{
			"name":           m.Name(),
			"email":          m.Email(),
			"phone":          m.Phone(),
			"plan_name":      m.PlanName(),
			"status":         string(m.Status()),
			"payment_status": string(m.PaymentStatus()),
			"payment_amount": m.PaymentAmount(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update member", "error", result.Error, "code", m.Code())
		return fmt.Errorf("failed to update member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("member not found", m.Code())
	}
	return nil
}

func (r *MemberRepositoryImpl) DeleteByCode(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Where("code = ?", code).Delete(&models.MemberModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete member", "error", result.Error, "code", code)
		return fmt.Errorf("failed to delete member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("member not found", code)
	}
	r.logger.Infow("member deleted", "code", code)
	return nil
}

// CountJoinedInMonth counts members whose join date falls within the given
// calendar month, using half-open range bounds so the date index is usable.
func (r *MemberRepositoryImpl) CountJoinedInMonth(ctx context.Context, year int, month time.Month) (int64, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MemberModel{}).
		Where("join_date >= ? AND join_date < ?", start, end).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count members joined in month",
			"error", err, "year", year, "month", int(month))
		return 0, fmt.Errorf("failed to count members joined in month: %w", err)
	}
	return count, nil
}

func (r *MemberRepositoryImpl) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]*member.Member, error) {
	var memberModels []*models.MemberModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND expiry_date >= ? AND expiry_date <= ?", string(vo.StatusActive), from, to).
		Order("expiry_date").
		Find(&memberModels).Error; err != nil {
		r.logger.Errorw("failed to list expiring members", "error", err)
		return nil, fmt.Errorf("failed to list expiring members: %w", err)
	}
	return r.toEntities(memberModels)
}

func (r *MemberRepositoryImpl) MarkExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.MemberModel{}).
		Where("status = ? AND expiry_date < ?", string(vo.StatusActive), cutoff).
		Update("status", string(vo.StatusExpired))
	if result.Error != nil {
		r.logger.Errorw("failed to mark expired members", "error", result.Error)
		return 0, fmt.Errorf("failed to mark expired members: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MemberRepositoryImpl) toModel(m *member.Member) *models.MemberModel {
	return &models.MemberModel{
		ID:            m.ID(),
		Code:          m.Code(),
		Name:          m.Name(),
		Email:         m.Email(),
		Phone:         m.Phone(),
		PlanName:      m.PlanName(),
		JoinDate:      datatypes.Date(m.JoinDate()),
		ExpiryDate:    datatypes.Date(m.ExpiryDate()),
		Status:        string(m.Status()),
		PaymentStatus: string(m.PaymentStatus()),
		PaymentAmount: m.PaymentAmount(),
	}
}

func (r *MemberRepositoryImpl) toEntity(model *models.MemberModel) (*member.Member, error) {
	m, err := member.ReconstructMember(
		model.ID,
		model.Code,
		model.Name,
		model.Email,
		model.Phone,
		model.PlanName,
		time.Time(model.JoinDate),
		time.Time(model.ExpiryDate),
		vo.Status(model.Status),
		vo.PaymentStatus(model.PaymentStatus),
		model.PaymentAmount,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct member %d: %w", model.ID, err)
	}
	return m, nil
}

func (r *MemberRepositoryImpl) toEntities(memberModels []*models.MemberModel) ([]*member.Member, error) {
	entities := make([]*member.Member, 0, len(memberModels))
	for _, model := range memberModels {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

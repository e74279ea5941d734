// internal/repository/enquiry_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eventrix/eventrix-backend/internal/models"
)

type EnquiryRepo struct{ db *gorm.DB }

func NewEnquiryRepo(db *gorm.DB) *EnquiryRepo { return &EnquiryRepo{db: db} }

func (r *EnquiryRepo) Create(ctx context.Context, e *models.Enquiry) error {
	return translate(r.db.WithContext(ctx).Create(e).Error)
}

func (r *EnquiryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Enquiry, error) {
	var e models.Enquiry
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

// AppendReply adds reply under a row lock so concurrent replies are not lost.
func (r *EnquiryRepo) AppendReply(ctx context.Context, id uuid.UUID, reply models.EnquiryReply) (*models.Enquiry, error) {
	var e models.Enquiry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&e, "id = ?", id).Error; err != nil {
			return err
		}
		e.Replies = append(e.Replies, reply)
		return tx.Model(&e).Update("replies", e.Replies).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

package auditstore

import (
	"ocavior-site/models"
	dbmodels "ocavior-site/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.SubmissionAudit) (id string, err error)
	List(filter dbmodels.SubmissionAuditFilter, page, limit int) (list []dbmodels.SubmissionAudit, rowCount int64, err error)
	ListAll(filter dbmodels.SubmissionAuditFilter) ([]dbmodels.SubmissionAudit, error)
	DeleteOlderThan(before time.Time) (deleted int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SubmissionAudit) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "error saving submission audit")
	}
	return rec.ID, nil
}

func (i impl) List(filter dbmodels.SubmissionAuditFilter, page, limit int) (list []dbmodels.SubmissionAudit, rowCount int64, err error) {
	tx := i.filtered(filter)
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, "error counting submission audit")
	}
	err = i.filtered(filter).
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "error listing submission audit")
	}
	return list, rowCount, nil
}

func (i impl) ListAll(filter dbmodels.SubmissionAuditFilter) (list []dbmodels.SubmissionAudit, err error) {
	err = i.filtered(filter).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "error listing submission audit")
	}
	return list, nil
}

func (i impl) DeleteOlderThan(before time.Time) (int64, error) {
	tx := i.db.
		Where("created_at < ?", before).
		Delete(&dbmodels.SubmissionAudit{})
	if tx.Error != nil {
		return 0, errors.Wrap(tx.Error, "error deleting old submission audit")
	}
	return tx.RowsAffected, nil
}

func (i impl) filtered(filter dbmodels.SubmissionAuditFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.SubmissionAudit{})
	if filter.Status == models.AuditStatusSuccess || filter.Status == models.AuditStatusError {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Position != "" {
		tx = tx.Where("position = ?", filter.Position)
	}
	return tx
}

package repository

import (
	"time"

	"github.com/linskybing/tracker-go/internal/domain/activity"
	"gorm.io/gorm"
)

type ActivityRepo interface {
	GetActivityLogs(q activity.Query) ([]activity.Log, error)
	CreateActivityLog(entry *activity.Log) error
	DeleteOldActivityLogs(retentionDays int) (int64, error)
	WithTx(tx *gorm.DB) ActivityRepo
}

type DBActivityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *DBActivityRepo {
	return &DBActivityRepo{
		db: db,
	}
}

func (r *DBActivityRepo) DeleteOldActivityLogs(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := r.db.Where("created_at < ?", cutoff).Delete(&activity.Log{})
	return res.RowsAffected, res.Error
}

func (r *DBActivityRepo) GetActivityLogs(q activity.Query) ([]activity.Log, error) {
	var logs []activity.Log
	query := r.db.Model(&activity.Log{})

	if q.ProjectID != nil {
		query = query.Where("project_id = ?", *q.ProjectID)
	}
	if q.UserID != nil {
		query = query.Where("user_id = ?", *q.UserID)
	}
	if q.ResourceType != nil {
		query = query.Where("resource_type = ?", *q.ResourceType)
	}
	if q.Action != nil {
		query = query.Where("action = ?", *q.Action)
	}
	if q.StartTime != nil {
		query = query.Where("created_at >= ?", *q.StartTime)
	}
	if q.EndTime != nil {
		query = query.Where("created_at <= ?", *q.EndTime)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}

	err := query.Find(&logs).Error
	return logs, err
}

func (r *DBActivityRepo) CreateActivityLog(entry *activity.Log) error {
	return r.db.Create(entry).Error
}

func (r *DBActivityRepo) WithTx(tx *gorm.DB) ActivityRepo {
	if tx == nil {
		return r
	}
	return &DBActivityRepo{
		db: tx,
	}
}

package subscription

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain/user"
)

type Repository interface {
	Create(ctx context.Context, followerID, followeeID int64) error
	Delete(ctx context.Context, followerID, followeeID int64) (bool, error)
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)
	Following(ctx context.Context, followerID int64, offset, limit int) ([]user.User, int64, error)
	SubscribedTo(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, followerID, followeeID int64) error {
	err := r.db.WithContext(ctx).
		Omit("Follower", "Followee").
		Create(&Subscription{FollowerID: followerID, FolloweeID: followeeID}).Error
	if database.IsUniqueViolation(err) {
		return ErrAlreadySubscribed.Wrap(err)
	}
	return err
}

func (r *repository) Delete(ctx context.Context, followerID, followeeID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&Subscription{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Subscription{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

// Following lists followees, most recent subscription first.
func (r *repository) Following(ctx context.Context, followerID int64, offset, limit int) ([]user.User, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Subscription{}).
		Where("follower_id = ?", followerID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var users []user.User
	err = r.db.WithContext(ctx).
		Model(&user.User{}).
		Joins("JOIN subscriptions AS s ON s.followee_id = users.id").
		Where("s.follower_id = ?", followerID).
		Order("s.created_at DESC").
		Order("s.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *repository) SubscribedTo(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&Subscription{}).
		Where("follower_id = ? AND followee_id IN ?", followerID, authorIDs).
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

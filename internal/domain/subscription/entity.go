package subscription

import (
	"time"

	"foodgram/internal/domain/user"
)

// Subscription is a directed follower → followee edge.
type Subscription struct {
	ID         int64      `gorm:"primaryKey"`
	FollowerID int64      `gorm:"not null;uniqueIndex:idx_subscription_pair;check:chk_subscription_not_self,follower_id <> followee_id"`
	FolloweeID int64      `gorm:"not null;uniqueIndex:idx_subscription_pair;index"`
	Follower   *user.User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followee   *user.User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
}

func (Subscription) TableName() string { return "subscriptions" }

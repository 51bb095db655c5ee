package subscription

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database/dbtest"
	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
	"foodgram/internal/pkg/apperror"
)

type fixture struct {
	db    *gorm.DB
	svc   *Service
	users []*user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t, &user.User{}, &ingredient.Ingredient{}, &recipe.Recipe{}, &recipe.RecipeIngredient{}, &Subscription{})

	f := &fixture{db: db}
	for i := 0; i < 3; i++ {
		u := &user.User{
			Email:        fmt.Sprintf("u%d@example.com", i),
			Username:     fmt.Sprintf("u%d", i),
			FirstName:    "F",
			LastName:     "L",
			PasswordHash: "x",
		}
		require.NoError(t, db.Create(u).Error)
		f.users = append(f.users, u)
	}
	f.svc = NewService(NewRepository(db), user.NewRepository(db), recipe.NewRepository(db))
	return f
}

func (f *fixture) recipes(t *testing.T, author *user.User, names ...string) {
	t.Helper()
	for _, name := range names {
		rec := &recipe.Recipe{AuthorID: author.ID, Name: name, Text: "t", Image: name + ".png", CookingTime: 5}
		require.NoError(t, f.db.Omit("Author", "Ingredients").Create(rec).Error)
	}
}

func TestParseRecipesLimit(t *testing.T) {
	n, err := ParseRecipesLimit("")
	require.NoError(t, err)
	assert.Equal(t, NoLimit, n)

	n, err = ParseRecipesLimit("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = ParseRecipesLimit("0")
	require.NoError(t, err)
	assert.Zero(t, n)

	for _, raw := range []string{"abc", "-1", "1.5"} {
		_, err := ParseRecipesLimit(raw)
		assert.ErrorIs(t, err, ErrInvalidRecipesLimit, raw)
		assert.ErrorIs(t, err, apperror.ErrValidation, raw)
	}
}

func TestSubscribe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	me, author := f.users[0], f.users[1]
	f.recipes(t, author, "one", "two", "three")

	followee, err := f.svc.Subscribe(ctx, me.ID, author.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, author.ID, followee.ID)
	assert.True(t, followee.IsSubscribed)
	assert.Equal(t, int64(3), followee.RecipesCount)
	require.Len(t, followee.Recipes, 2)
	assert.Equal(t, "three", followee.Recipes[0].Name)

	_, err = f.svc.Subscribe(ctx, me.ID, author.ID, NoLimit)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	_, err = f.svc.Subscribe(ctx, me.ID, 999, NoLimit)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestSubscribe_SelfAlwaysFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	me := f.users[0]

	_, err := f.svc.Subscribe(ctx, me.ID, me.ID, NoLimit)
	assert.ErrorIs(t, err, ErrSelfSubscription)

	_, err = f.svc.Subscribe(ctx, me.ID, f.users[1].ID, NoLimit)
	require.NoError(t, err)
	_, err = f.svc.Subscribe(ctx, me.ID, me.ID, NoLimit)
	assert.ErrorIs(t, err, ErrSelfSubscription)

	// the storage check rejects it as well
	err = f.db.Omit("Follower", "Followee").Create(&Subscription{FollowerID: me.ID, FolloweeID: me.ID}).Error
	assert.Error(t, err)
}

func TestStorageRejectsDuplicateEdge(t *testing.T) {
	f := newFixture(t)
	repo := NewRepository(f.db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, f.users[0].ID, f.users[1].ID))
	assert.ErrorIs(t, repo.Create(ctx, f.users[0].ID, f.users[1].ID), ErrAlreadySubscribed)
}

func TestUnsubscribe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	me, author := f.users[0], f.users[1]

	assert.ErrorIs(t, f.svc.Unsubscribe(ctx, me.ID, author.ID), ErrNotSubscribed)

	_, err := f.svc.Subscribe(ctx, me.ID, author.ID, NoLimit)
	require.NoError(t, err)
	require.NoError(t, f.svc.Unsubscribe(ctx, me.ID, author.ID))
	assert.ErrorIs(t, f.svc.Unsubscribe(ctx, me.ID, author.ID), ErrNotSubscribed)

	assert.ErrorIs(t, f.svc.Unsubscribe(ctx, me.ID, 999), user.ErrUserNotFound)
}

func TestListFollowing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	me := f.users[0]
	f.recipes(t, f.users[1], "a", "b")
	f.recipes(t, f.users[2], "c")

	_, err := f.svc.Subscribe(ctx, me.ID, f.users[1].ID, NoLimit)
	require.NoError(t, err)
	_, err = f.svc.Subscribe(ctx, me.ID, f.users[2].ID, NoLimit)
	require.NoError(t, err)

	list, total, err := f.svc.ListFollowing(ctx, me.ID, NoLimit, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, f.users[2].ID, list[0].ID)
	assert.Len(t, list[0].Recipes, 1)
	assert.Len(t, list[1].Recipes, 2)
	assert.Equal(t, int64(2), list[1].RecipesCount)

	limited, _, err := f.svc.ListFollowing(ctx, me.ID, 0, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, limited[1].Recipes)
	assert.Equal(t, int64(2), limited[1].RecipesCount)

	subscribed, err := f.svc.SubscribedTo(ctx, me.ID, []int64{f.users[1].ID, f.users[2].ID, me.ID})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{f.users[1].ID: true, f.users[2].ID: true}, subscribed)

	none, total, err := f.svc.ListFollowing(ctx, f.users[1].ID, NoLimit, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, none)
}

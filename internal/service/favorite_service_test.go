package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/repository"
	"github.com/qs3c/contenthub_go_server/internal/testutil"
)

func setupFavoriteService(t *testing.T) (*FavoriteService, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	favoriteRepo := repository.NewFavoriteRepository(db)
	contentRepo := repository.NewContentRepository(db)
	userRepo := repository.NewUserRepository(db)
	service := NewFavoriteService(favoriteRepo, contentRepo, userRepo)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return service, db, cleanup
}

func TestFavoriteService_Add(t *testing.T) {
	service, db, cleanup := setupFavoriteService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db, testutil.WithFree())
	content := testutil.TestContent(t, db, category.ID, nil)

	resp, err := service.Add(user.ID, content.ID)
	require.NoError(t, err)
	assert.NotZero(t, resp.FavoriteID)
	assert.False(t, resp.LimitReached)
}

func TestFavoriteService_Add_Duplicate(t *testing.T) {
	service, db, cleanup := setupFavoriteService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db, testutil.WithFree())
	content := testutil.TestContent(t, db, category.ID, nil)

	_, err := service.Add(user.ID, content.ID)
	require.NoError(t, err)

	_, err = service.Add(user.ID, content.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)
}

func TestFavoriteService_Add_ContentMissing(t *testing.T) {
	service, db, cleanup := setupFavoriteService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	_, err := service.Add(user.ID, 99999)
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestFavoriteService_Add_LimitReached(t *testing.T) {
	service, db, cleanup := setupFavoriteService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db, testutil.WithFree())

	for i := 0; i < FavoriteLimit; i++ {
		content := testutil.TestContent(t, db, category.ID, nil)
		testutil.TestFavorite(t, db, user.ID, content.ID)
	}

	extra := testutil.TestContent(t, db, category.ID, nil)
	resp, err := service.Add(user.ID, extra.ID)
	assert.ErrorIs(t, err, ErrFavoriteLimit)
	require.NotNil(t, resp)
	assert.True(t, resp.LimitReached)
}

func TestFavoriteService_Add_SubscribedBypassesLimit(t *testing.T) {
	service, db, cleanup := setupFavoriteService(t)
	defer cleanup()

	user := testutil.TestUser(t, db, testutil.WithSubscribed())
	category := testutil.TestCategory(t, db)

	for i := 0; i < FavoriteLimit; i++ {
		content := testutil.TestContent(t, db, category.ID, nil)
		testutil.TestFavorite(t, db, user.ID, content.ID)
	}

	extra := testutil.TestContent(t, db, category.ID, nil)
	resp, err := service.Add(user.ID, extra.ID)
	require.NoError(t, err)
	assert.NotZero(t, resp.FavoriteID)
}

func TestFavoriteService_Add_AdminBypassesLimit(t *testing.T) {
	service, db, cleanup := setupFavoriteService(t)
	defer cleanup()

	user := testutil.TestUser(t, db, testutil.WithAdmin())
	category := testutil.TestCategory(t, db)

	for i := 0; i < FavoriteLimit; i++ {
		content := testutil.TestContent(t, db, category.ID, nil)
		testutil.TestFavorite(t, db, user.ID, content.ID)
	}

	extra := testutil.TestContent(t, db, category.ID, nil)
	_, err := service.Add(user.ID, extra.ID)
	require.NoError(t, err)
}

func TestFavoriteService_Remove(t *testing.T) {
	service, db, cleanup := setupFavoriteService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db, testutil.WithFree())
	content := testutil.TestContent(t, db, category.ID, nil)
	testutil.TestFavorite(t, db, user.ID, content.ID)

	require.NoError(t, service.Remove(user.ID, content.ID))

	favorited, err := service.Check(user.ID, content.ID)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_Remove_NotFavorited(t *testing.T) {
	service, db, cleanup := setupFavoriteService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	err := service.Remove(user.ID, 99999)
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestFavoriteService_List_SkipsStaleEntries(t *testing.T) {
	service, db, cleanup := setupFavoriteService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db, testutil.WithFree())
	kept := testutil.TestContent(t, db, category.ID, nil)
	gone := testutil.TestContent(t, db, category.ID, nil)

	testutil.TestFavorite(t, db, user.ID, kept.ID)
	testutil.TestFavorite(t, db, user.ID, gone.ID)

	// 直接删内容制造残留收藏
	require.NoError(t, db.Exec("DELETE FROM content WHERE id = ?", gone.ID).Error)

	items, err := service.List(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].Content.ID)
}

func TestFavoriteService_Check(t *testing.T) {
	service, db, cleanup := setupFavoriteService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db, testutil.WithFree())
	content := testutil.TestContent(t, db, category.ID, nil)

	favorited, err := service.Check(user.ID, content.ID)
	require.NoError(t, err)
	assert.False(t, favorited)

	testutil.TestFavorite(t, db, user.ID, content.ID)

	favorited, err = service.Check(user.ID, content.ID)
	require.NoError(t, err)
	assert.True(t, favorited)
}

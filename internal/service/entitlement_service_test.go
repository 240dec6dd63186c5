package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/repository"
	"github.com/qs3c/contenthub_go_server/internal/testutil"
)

func setupEntitlementService(t *testing.T) (*EntitlementService, *repository.CategoryRepository, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	service := NewEntitlementService(categoryRepo, userRepo)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return service, categoryRepo, db, cleanup
}

func TestCanView(t *testing.T) {
	cases := []struct {
		name         string
		isAdmin      bool
		isSubscribed bool
		isFree       bool
		want         bool
	}{
		{"anonymous_free", false, false, true, true},
		{"anonymous_paid", false, false, false, false},
		{"subscribed_paid", false, true, false, true},
		{"subscribed_free", false, true, true, true},
		{"admin_paid", true, false, false, true},
		{"admin_free", true, false, true, true},
		{"admin_subscribed_paid", true, true, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanView(tc.isAdmin, tc.isSubscribed, tc.isFree))
		})
	}
}

func TestEntitlementService_ListVisible_FreeUserOnlySeesFree(t *testing.T) {
	service, _, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestCategory(t, db, testutil.WithName("paid"))
	freeCat := testutil.TestCategory(t, db, testutil.WithName("free"), testutil.WithFree())

	items, err := service.ListVisible(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, freeCat.ID, items[0].ID)
}

func TestEntitlementService_ListVisible_SubscribedSeesAll(t *testing.T) {
	service, _, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db, testutil.WithSubscribed())
	testutil.TestCategory(t, db, testutil.WithName("paid"))
	testutil.TestCategory(t, db, testutil.WithName("free"), testutil.WithFree())

	items, err := service.ListVisible(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestEntitlementService_ListVisible_Ordering(t *testing.T) {
	service, categoryRepo, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db, testutil.WithSubscribed())

	// 两个付费、两个免费，其中一付费一免费被置顶
	paidA := testutil.TestCategory(t, db, testutil.WithName("Alpha"))
	paidB := testutil.TestCategory(t, db, testutil.WithName("beta"))
	freeC := testutil.TestCategory(t, db, testutil.WithName("Cherry"), testutil.WithFree())
	freeD := testutil.TestCategory(t, db, testutil.WithName("delta"), testutil.WithFree())

	require.NoError(t, categoryRepo.Pin(user.ID, paidB.ID))
	require.NoError(t, categoryRepo.Pin(user.ID, freeC.ID))

	items, err := service.ListVisible(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 4)

	// 置顶组（beta, Cherry 按名称）在前，然后付费（Alpha），最后免费（delta）
	assert.Equal(t, paidB.ID, items[0].ID)
	assert.Equal(t, freeC.ID, items[1].ID)
	assert.Equal(t, paidA.ID, items[2].ID)
	assert.Equal(t, freeD.ID, items[3].ID)

	assert.True(t, items[0].IsPinned)
	assert.True(t, items[1].IsPinned)
	assert.False(t, items[2].IsPinned)
	assert.False(t, items[3].IsPinned)
}

func TestEntitlementService_ListVisible_CaseInsensitiveSort(t *testing.T) {
	service, _, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	b := testutil.TestCategory(t, db, testutil.WithName("banana"), testutil.WithFree())
	a := testutil.TestCategory(t, db, testutil.WithName("Apple"), testutil.WithFree())
	c := testutil.TestCategory(t, db, testutil.WithName("cherry"), testutil.WithFree())

	items, err := service.ListVisible(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, b.ID, items[1].ID)
	assert.Equal(t, c.ID, items[2].ID)
}

func TestEntitlementService_ResolveCategory_NotFound(t *testing.T) {
	service, _, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	_, err := service.ResolveCategory(user.ID, 99999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestEntitlementService_ResolveCategory_PaidDenied(t *testing.T) {
	service, _, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	paid := testutil.TestCategory(t, db)

	_, err := service.ResolveCategory(user.ID, paid.ID)
	assert.ErrorIs(t, err, ErrSubscriptionRequired)
}

func TestEntitlementService_ResolveCategory_AdminAllowed(t *testing.T) {
	service, _, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	admin := testutil.TestUser(t, db, testutil.WithAdmin())
	paid := testutil.TestCategory(t, db)

	category, err := service.ResolveCategory(admin.ID, paid.ID)
	require.NoError(t, err)
	assert.Equal(t, paid.ID, category.ID)
}

func TestEntitlementService_ResolveCategory_FreeAllowed(t *testing.T) {
	service, _, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	free := testutil.TestCategory(t, db, testutil.WithFree())

	category, err := service.ResolveCategory(user.ID, free.ID)
	require.NoError(t, err)
	assert.Equal(t, free.ID, category.ID)
}

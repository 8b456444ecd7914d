package volunteer_test

import (
	"context"
	"testing"
	"time"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/model"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/testutil"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/volunteer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registeredAt = time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

// eachRepository runs fn against every Repository implementation
func eachRepository(t *testing.T, fn func(t *testing.T, repo volunteer.Repository)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		fn(t, volunteer.NewMemoryRepository())
	})
	t.Run("gorm", func(t *testing.T) {
		fn(t, volunteer.NewGormRepository(testutil.SetupTestDB(t)))
	})
}

func newModel(email, role string, availability model.Availability) *model.Volunteer {
	return model.NewVolunteer("Test Volunteer", email, "11987654321", role, availability, registeredAt)
}

func mustCreate(t *testing.T, repo volunteer.Repository, v *model.Volunteer) *model.Volunteer {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

func TestRepository_CreateAssignsSequentialIDs(t *testing.T) {
	eachRepository(t, func(t *testing.T, repo volunteer.Repository) {
		first := mustCreate(t, repo, newModel("a@x.com", "Instructor", model.AvailabilityMorning))
		second := mustCreate(t, repo, newModel("b@x.com", "Monitor", model.AvailabilityEvening))

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
	})
}

func TestRepository_CreateDuplicateEmail(t *testing.T) {
	eachRepository(t, func(t *testing.T, repo volunteer.Repository) {
		ctx := context.Background()
		first := mustCreate(t, repo, newModel("dup@x.com", "Instructor", model.AvailabilityMorning))

		// When: same email again
		err := repo.Create(ctx, newModel("dup@x.com", "Monitor", model.AvailabilityEvening))

		// Then: conflict, one record kept
		assert.ErrorIs(t, err, volunteer.ErrEmailAlreadyExists)

		all, err := repo.FindAll(ctx, volunteer.Filter{})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, first.ID, all[0].ID)

		// And: the next id is still greater than every issued id
		next := mustCreate(t, repo, newModel("next@x.com", "Monitor", model.AvailabilityEvening))
		assert.Greater(t, next.ID, first.ID)
	})
}

func TestRepository_ExistsByEmailIsCaseSensitive(t *testing.T) {
	eachRepository(t, func(t *testing.T, repo volunteer.Repository) {
		ctx := context.Background()
		mustCreate(t, repo, newModel("Ana@x.com", "Instructor", model.AvailabilityMorning))

		exists, err := repo.ExistsByEmail(ctx, "Ana@x.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "ana@x.com")
		require.NoError(t, err)
		assert.False(t, exists)

		// different case is a different email
		mustCreate(t, repo, newModel("ana@x.com", "Instructor", model.AvailabilityMorning))
	})
}

func TestRepository_FindByID(t *testing.T) {
	eachRepository(t, func(t *testing.T, repo volunteer.Repository) {
		ctx := context.Background()
		created := mustCreate(t, repo, newModel("a@x.com", "Instructor", model.AvailabilityMorning))

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", found.Email)
		assert.Equal(t, model.StatusActive, found.Status)
		assert.True(t, registeredAt.Equal(found.RegisteredAt))

		for _, id := range []int64{0, -1, created.ID + 1, 999} {
			_, err := repo.FindByID(ctx, id)
			assert.ErrorIs(t, err, volunteer.ErrVolunteerNotFound, "id=%d", id)
		}
	})
}

func TestRepository_UpdateWritesOnlyMutableFields(t *testing.T) {
	eachRepository(t, func(t *testing.T, repo volunteer.Repository) {
		ctx := context.Background()
		created := mustCreate(t, repo, newModel("a@x.com", "Instructor", model.AvailabilityMorning))

		// Given: every field changed on the caller's copy
		changed := *created
		changed.Name = "Renamed Volunteer"
		changed.Phone = "21999990000"
		changed.DesiredRole = "Coordinator"
		changed.Availability = model.AvailabilityWeekends
		changed.Status = model.StatusPending
		changed.Email = "other@x.com"
		changed.RegisteredAt = registeredAt.Add(time.Hour)

		// When
		require.NoError(t, repo.Update(ctx, &changed))

		// Then: mutable fields written, email and registration time kept
		stored, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed Volunteer", stored.Name)
		assert.Equal(t, "21999990000", stored.Phone)
		assert.Equal(t, "Coordinator", stored.DesiredRole)
		assert.Equal(t, model.AvailabilityWeekends, stored.Availability)
		assert.Equal(t, model.StatusPending, stored.Status)
		assert.Equal(t, "a@x.com", stored.Email)
		assert.True(t, registeredAt.Equal(stored.RegisteredAt))
	})
}

func TestRepository_UpdateUnknownID(t *testing.T) {
	eachRepository(t, func(t *testing.T, repo volunteer.Repository) {
		err := repo.Update(context.Background(), &model.Volunteer{ID: 42, Status: model.StatusInactive})
		assert.ErrorIs(t, err, volunteer.ErrVolunteerNotFound)
	})
}

func TestRepository_FindAllFilters(t *testing.T) {
	eachRepository(t, func(t *testing.T, repo volunteer.Repository) {
		ctx := context.Background()

		// Given: four volunteers in insertion order
		a := mustCreate(t, repo, newModel("a@x.com", "Swimming Instructor", model.AvailabilityMorning))
		b := mustCreate(t, repo, newModel("b@x.com", "Monitor", model.AvailabilityEvening))
		c := mustCreate(t, repo, newModel("c@x.com", "INSTRUCTOR assistant", model.AvailabilityEvening))
		d := mustCreate(t, repo, newModel("d@x.com", "Driver", model.AvailabilityMorning))

		inactive := *b
		inactive.Status = model.StatusInactive
		require.NoError(t, repo.Update(ctx, &inactive))

		active := model.StatusActive
		inactiveStatus := model.StatusInactive
		morning := model.AvailabilityMorning
		evening := model.AvailabilityEvening
		weekends := model.AvailabilityWeekends

		testCases := []struct {
			name   string
			filter volunteer.Filter
			want   []int64
		}{
			{"no filters", volunteer.Filter{}, []int64{a.ID, b.ID, c.ID, d.ID}},
			{"status active", volunteer.Filter{Status: &active}, []int64{a.ID, c.ID, d.ID}},
			{"status inactive", volunteer.Filter{Status: &inactiveStatus}, []int64{b.ID}},
			{"role substring ignores case", volunteer.Filter{Role: "instr"}, []int64{a.ID, c.ID}},
			{"availability", volunteer.Filter{Availability: &evening}, []int64{b.ID, c.ID}},
			{"role and availability", volunteer.Filter{Role: "Instructor", Availability: &morning}, []int64{a.ID}},
			{"all three", volunteer.Filter{Status: &active, Role: "i", Availability: &evening}, []int64{c.ID}},
			{"no match", volunteer.Filter{Availability: &weekends}, []int64{}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := repo.FindAll(ctx, tc.filter)
				require.NoError(t, err)

				ids := make([]int64, 0, len(got))
				for _, v := range got {
					ids = append(ids, v.ID)
				}
				assert.Equal(t, tc.want, ids)
			})
		}
	})
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := volunteer.NewMemoryRepository()
	ctx := context.Background()
	created := mustCreate(t, repo, newModel("a@x.com", "Instructor", model.AvailabilityMorning))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	found.Name = "Mutated"

	all, err := repo.FindAll(ctx, volunteer.Filter{})
	require.NoError(t, err)
	all[0].Status = model.StatusPending

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Volunteer", stored.Name)
	assert.Equal(t, model.StatusActive, stored.Status)
}

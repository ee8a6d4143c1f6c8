package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio-site/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPool connects to TEST_DATABASE_URL and migrates it. Tests using it
// are skipped when the variable is unset.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := NewPool(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool, "up"))
	return pool
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func TestPgContactRepository_Create(t *testing.T) {
	pool := newTestPool(t)
	repo := NewPgContactRepository(pool)
	ctx := context.Background()

	in := model.ContactInput{Name: "Alice", Email: uniqueEmail("contact"), Message: "Hello there, nice site!"}
	first, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, in.Name, first.Name)
	assert.Equal(t, in.Email, first.Email)
	assert.Equal(t, in.Message, first.Message)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID, "identical submissions must still create separate rows")
}

func TestPgNewsletterRepository_SubscribeLifecycle(t *testing.T) {
	pool := newTestPool(t)
	repo := NewPgNewsletterRepository(pool)
	ctx := context.Background()
	email := uniqueEmail("news")

	created, err := repo.Subscribe(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, model.SubscribeCreated, created.Outcome)
	assert.True(t, created.Subscription.IsActive)
	assert.Equal(t, email, created.Subscription.Email)

	again, err := repo.Subscribe(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, model.SubscribeAlreadyActive, again.Outcome)
	assert.Equal(t, created.Subscription.ID, again.Subscription.ID)
	assert.True(t, created.Subscription.SubscribedAt.Equal(again.Subscription.SubscribedAt),
		"active resubscribe must not refresh subscribed_at")

	require.NoError(t, repo.SetActive(ctx, email, false))
	inactive, err := repo.FindByEmail(ctx, email)
	require.NoError(t, err)
	assert.False(t, inactive.IsActive)

	// NOW() is the transaction start time; make sure it moves.
	time.Sleep(10 * time.Millisecond)

	reactivated, err := repo.Subscribe(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, model.SubscribeReactivated, reactivated.Outcome)
	assert.Equal(t, created.Subscription.ID, reactivated.Subscription.ID)
	assert.True(t, reactivated.Subscription.IsActive)
	assert.True(t, reactivated.Subscription.SubscribedAt.After(created.Subscription.SubscribedAt))

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM newsletter_subscriptions WHERE email = $1`, email).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestPgNewsletterRepository_ConcurrentFirstSubscribe(t *testing.T) {
	pool := newTestPool(t)
	repo := NewPgNewsletterRepository(pool)
	ctx := context.Background()
	email := uniqueEmail("race")

	const callers = 8
	type result struct {
		res *model.SubscribeResult
		err error
	}
	results := make(chan result, callers)
	for range callers {
		go func() {
			res, err := repo.Subscribe(ctx, email)
			results <- result{res, err}
		}()
	}

	var ids []int64
	created := 0
	for range callers {
		r := <-results
		require.NoError(t, r.err)
		assert.True(t, r.res.Subscription.IsActive)
		ids = append(ids, r.res.Subscription.ID)
		if r.res.Outcome == model.SubscribeCreated {
			created++
		}
	}
	assert.Equal(t, 1, created)
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestPgNewsletterRepository_NotFound(t *testing.T) {
	pool := newTestPool(t)
	repo := NewPgNewsletterRepository(pool)
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, uniqueEmail("missing"))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(repo.SetActive(ctx, uniqueEmail("missing"), false), ErrNotFound))
}

func TestPgProjectRepository_ListOrderAndFeatured(t *testing.T) {
	pool := newTestPool(t)
	repo := NewPgProjectRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `TRUNCATE portfolio_projects`)
	require.NoError(t, err)

	empty, err := repo.ListFeatured(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	url := "https://github.com/example/a"
	a := &model.PortfolioProject{Title: "A", Description: "first", GitHubURL: &url, Technologies: []string{"Go", "PostgreSQL"}, IsFeatured: true}
	b := &model.PortfolioProject{Title: "B", Description: "second"}
	c := &model.PortfolioProject{Title: "C", Description: "third", IsFeatured: true}
	for _, p := range []*model.PortfolioProject{a, b, c} {
		require.NoError(t, repo.UpsertByTitle(ctx, p))
		// created_at defaults to NOW(), which only differs across transactions.
		time.Sleep(5 * time.Millisecond)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"C", "B", "A"}, titles(all))
	assert.Equal(t, []string{"Go", "PostgreSQL"}, all[2].Technologies)
	assert.Equal(t, url, *all[2].GitHubURL)
	assert.Nil(t, all[2].ImageURL)
	assert.Equal(t, []string{}, all[1].Technologies)

	featured, err := repo.ListFeatured(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, titles(featured))
}

func TestPgProjectRepository_ListTiedCreatedAt(t *testing.T) {
	pool := newTestPool(t)
	repo := NewPgProjectRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `TRUNCATE portfolio_projects`)
	require.NoError(t, err)

	for _, p := range []*model.PortfolioProject{
		{Title: "A", Description: "first", IsFeatured: true},
		{Title: "B", Description: "second"},
		{Title: "C", Description: "third", IsFeatured: true},
		{Title: "D", Description: "fourth", IsFeatured: true},
	} {
		require.NoError(t, repo.UpsertByTitle(ctx, p))
	}
	_, err = pool.Exec(ctx, `UPDATE portfolio_projects SET created_at = '2024-01-01T00:00:00Z'`)
	require.NoError(t, err)

	for range 3 {
		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"D", "C", "B", "A"}, titles(all))

		featured, err := repo.ListFeatured(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"D", "C", "A"}, titles(featured))
	}
}

func TestPgProjectRepository_UpsertByTitleKeepsIdentity(t *testing.T) {
	pool := newTestPool(t)
	repo := NewPgProjectRepository(pool)
	ctx := context.Background()

	title := fmt.Sprintf("project-%d", time.Now().UnixNano())
	p := &model.PortfolioProject{Title: title, Description: "v1"}
	require.NoError(t, repo.UpsertByTitle(ctx, p))

	q := &model.PortfolioProject{Title: title, Description: "v2", IsFeatured: true}
	require.NoError(t, repo.UpsertByTitle(ctx, q))

	assert.Equal(t, p.ID, q.ID)
	assert.True(t, p.CreatedAt.Equal(q.CreatedAt))
	assert.False(t, q.UpdatedAt.Before(p.UpdatedAt))
}

func titles(ps []*model.PortfolioProject) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

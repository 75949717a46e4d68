package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"warp_ships/internal/app/ds"
	"warp_ships/internal/app/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func setupService(t *testing.T) (*ShipService, *repository.Repository) {
	t.Helper()

	repo, err := repository.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, repo.Migrate())
	t.Cleanup(func() { repo.Close() })

	return NewShipService(NewSharedDB(repo), nil), repo
}

// fakeStore lets tests inject failures and panics.
type fakeStore struct {
	mu       sync.Mutex
	calls    int
	listErr  error
	findErr  error
	panicMsg string
	ships    []ds.Ship
	block    chan struct{}
}

func (f *fakeStore) enter() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
}

func (f *fakeStore) ListShips(_ context.Context, _ ds.ListShipsFilter) ([]ds.Ship, error) {
	f.enter()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.ships, nil
}

func (f *fakeStore) InsertShip(_ context.Context, n ds.NewShip) (ds.Ship, error) {
	f.enter()
	if f.listErr != nil {
		return ds.Ship{}, f.listErr
	}
	ship := n.Ship()
	ship.ID = len(f.ships) + 1
	f.ships = append(f.ships, ship)
	return ship, nil
}

func (f *fakeStore) FindShipByID(_ context.Context, id int) (*ds.Ship, error) {
	f.enter()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, s := range f.ships {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) DeleteShip(_ context.Context, id int) (ds.Ship, error) {
	f.enter()
	for i, s := range f.ships {
		if s.ID == id {
			f.ships = append(f.ships[:i], f.ships[i+1:]...)
			return s, nil
		}
	}
	return ds.Ship{}, repository.ErrShipNotFound
}

func (f *fakeStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestAddShipThenListIncludesFreshID(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	seen := map[int]bool{}
	for _, name := range []string{"USS Enterprise", "USS Voyager", "Black Pearl"} {
		ship, err := svc.AddShip(ctx, ds.NewShip{Name: name, WarpSpeed: 5, Faction: strPtr("Starfleet")})
		require.NoError(t, err)
		assert.False(t, seen[ship.ID], "id %d assigned twice", ship.ID)
		seen[ship.ID] = true

		all, err := svc.ListShips(ctx, ds.ListShipsFilter{})
		require.NoError(t, err)
		assert.Contains(t, all, ship)
	}
}

func TestListShipsFilterIsSubsetOfAll(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for _, n := range []ds.NewShip{
		{Name: "USS Enterprise", WarpSpeed: 12, Faction: strPtr("Starfleet")},
		{Name: "USS Calister", WarpSpeed: 1, Faction: strPtr("Netflix")},
		{Name: "Black Pearl", WarpSpeed: 0, Faction: strPtr("Caribeans")},
		{Name: "USS Voyager", WarpSpeed: 6, Faction: strPtr("Starfleet")},
	} {
		_, err := svc.AddShip(ctx, n)
		require.NoError(t, err)
	}

	all, err := svc.ListShips(ctx, ds.ListShipsFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)

	for _, substr := range []string{"", "USS", "Pearl", "a", "voyager", "Klingon"} {
		got, err := svc.ListShips(ctx, ds.ListShipsFilter{Name: strPtr(substr)})
		require.NoError(t, err)

		want := []ds.Ship{}
		for _, s := range all {
			if strings.Contains(s.Name, substr) {
				want = append(want, s)
			}
		}
		assert.Equal(t, want, got, "filter %q", substr)
	}
}

func TestRemoveShip(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	enterprise, err := svc.AddShip(ctx, ds.NewShip{Name: "USS Enterprise", WarpSpeed: 12})
	require.NoError(t, err)

	removed, err := svc.RemoveShip(ctx, enterprise.ID)
	require.NoError(t, err)
	assert.Equal(t, enterprise, removed)

	all, err := svc.ListShips(ctx, ds.ListShipsFilter{})
	require.NoError(t, err)
	assert.NotContains(t, all, enterprise)
}

func TestRemoveMissingShipLeavesStateUnchanged(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	voyager, err := svc.AddShip(ctx, ds.NewShip{Name: "USS Voyager", WarpSpeed: 6})
	require.NoError(t, err)

	_, err = svc.RemoveShip(ctx, voyager.ID+42)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := svc.ListShips(ctx, ds.ListShipsFilter{})
	require.NoError(t, err)
	assert.Equal(t, []ds.Ship{voyager}, all)
}

func TestConcurrentRemoveSameIDSucceedsOnce(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	ship, err := svc.AddShip(ctx, ds.NewShip{Name: "USS Enterprise", WarpSpeed: 12})
	require.NoError(t, err)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		notFound  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RemoveShip(ctx, ship.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrNotFound):
				notFound++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, notFound)
}

func TestStorageFailuresMapToDBError(t *testing.T) {
	cause := errors.New("disk I/O error")
	store := &fakeStore{listErr: cause, findErr: cause}
	svc := NewShipService(NewSharedDB(store), nil)
	ctx := context.Background()

	_, err := svc.ListShips(ctx, ds.ListShipsFilter{})
	assert.ErrorIs(t, err, ErrDB)
	assert.ErrorIs(t, err, cause)

	_, err = svc.AddShip(ctx, ds.NewShip{Name: "USS Defiant"})
	assert.ErrorIs(t, err, ErrDB)

	_, err = svc.RemoveShip(ctx, 1)
	assert.ErrorIs(t, err, ErrDB)
	assert.NotErrorIs(t, err, ErrNotFound)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindDBError, svcErr.Kind)
	assert.Equal(t, "remove ship", svcErr.Op)
}

func TestPanicInsideLockIsUnknownAndReleasesLock(t *testing.T) {
	store := &fakeStore{panicMsg: "driver exploded"}
	svc := NewShipService(NewSharedDB(store), nil)
	ctx := context.Background()

	_, err := svc.ListShips(ctx, ds.ListShipsFilter{})
	assert.ErrorIs(t, err, ErrUnknown)

	store.panicMsg = ""
	_, err = svc.ListShips(ctx, ds.ListShipsFilter{})
	assert.NoError(t, err)
}

func TestLockAcquisitionHonorsContext(t *testing.T) {
	store := &fakeStore{block: make(chan struct{})}
	svc := NewShipService(NewSharedDB(store), nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.ListShips(context.Background(), ds.ListShipsFilter{})
		done <- err
	}()
	require.Eventually(t, func() bool { return store.callCount() == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := svc.AddShip(ctx, ds.NewShip{Name: "USS Defiant"})
	assert.ErrorIs(t, err, ErrUnknown)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, store.callCount(), "blocked caller must not reach storage")

	close(store.block)
	assert.NoError(t, <-done)
}

func TestCancelledContextNeverReachesStorage(t *testing.T) {
	store := &fakeStore{}
	svc := NewShipService(NewSharedDB(store), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.RemoveShip(ctx, 1)
	assert.ErrorIs(t, err, ErrUnknown)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, store.callCount())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "db_error", KindDBError.String())
	assert.Equal(t, "not_found", KindNotFound.String())

	err := newError(KindNotFound, "remove ship", nil)
	assert.Equal(t, "remove ship: not_found", err.Error())
}

package vault

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/milavault/milavault/internal/client/db"
	"github.com/milavault/milavault/internal/client/draft"
	"github.com/milavault/milavault/internal/client/models"
	"github.com/milavault/milavault/internal/client/remote"
	"github.com/milavault/milavault/internal/client/session"
	"github.com/milavault/milavault/internal/common"
	"github.com/milavault/milavault/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// fakeStore is an in-memory remote.RecordStore with injectable failures.
type fakeStore struct {
	authed  bool
	records map[string]models.Person
	nextID  int

	listErr   error
	insertErr error
	updateErr error
	notesErr  error
	deleteErr error
}

func newFakeStore(people ...models.Person) *fakeStore {
	s := &fakeStore{authed: true, records: map[string]models.Person{}}
	for _, p := range people {
		s.records[p.ID] = p
	}
	return s
}

func (s *fakeStore) Close() error { return nil }

func (s *fakeStore) RequestLoginLink(ctx context.Context, email string) (string, error) {
	return "", nil
}

func (s *fakeStore) Login(ctx context.Context, loginToken string) error { return nil }

func (s *fakeStore) CurrentUser() (remote.User, bool) {
	if !s.authed {
		return remote.User{}, false
	}
	return remote.User{ID: "u1", Email: "owner@example.com"}, true
}

func (s *fakeStore) Ping(ctx context.Context) error { return nil }

func (s *fakeStore) List(ctx context.Context) ([]models.Person, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	people := make([]models.Person, 0, len(s.records))
	for _, p := range s.records {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool { return people[i].Name < people[j].Name })
	return people, nil
}

func (s *fakeStore) Insert(ctx context.Context, p models.Person) (string, error) {
	if s.insertErr != nil {
		return "", s.insertErr
	}
	s.nextID++
	p.ID = string(rune('0' + s.nextID))
	s.records[p.ID] = p
	return p.ID, nil
}

func (s *fakeStore) Update(ctx context.Context, p models.Person) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, ok := s.records[p.ID]; !ok {
		return common.ErrNotFound
	}
	s.records[p.ID] = p
	return nil
}

func (s *fakeStore) UpdateNotes(ctx context.Context, id, notes string) error {
	if s.notesErr != nil {
		return s.notesErr
	}
	p, ok := s.records[id]
	if !ok {
		return common.ErrNotFound
	}
	p.Notes = notes
	s.records[id] = p
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.records, id)
	return nil
}

func newController(t *testing.T, store *fakeStore) (*Controller, *draft.Store) {
	t.Helper()
	repos, err := db.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	drafts := draft.NewStore(context.Background(), repos.Drafts, nopLogger{})
	return NewController(store, drafts, nopLogger{}), drafts
}

var (
	ann = models.Person{ID: "p1", Name: "Ann", Contact: "111", Notes: "likes tea"}
	bob = models.Person{ID: "p2", Name: "Bob"}
)

func TestRefresh_ReplacesList(t *testing.T) {
	ctrl, _ := newController(t, newFakeStore(ann, bob))

	require.NoError(t, ctrl.Refresh(context.Background()))

	people := ctrl.People()
	require.Len(t, people, 2)
	assert.Equal(t, "Ann", people[0].Name)
	assert.Equal(t, "Bob", people[1].Name)
	assert.Empty(t, ctrl.Status())
}

func TestRefresh_NotAuthenticated(t *testing.T) {
	store := newFakeStore(ann)
	store.authed = false
	ctrl, _ := newController(t, store)

	err := ctrl.Refresh(context.Background())
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Equal(t, "Not authenticated. Please log in again.", ctrl.Status())
}

func TestRefresh_FailureKeepsOldList(t *testing.T) {
	store := newFakeStore(ann)
	ctrl, _ := newController(t, store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	store.listErr = errors.New("connection reset")
	require.Error(t, ctrl.Refresh(context.Background()))

	assert.Len(t, ctrl.People(), 1)
	assert.Equal(t, "Could not load people. Please retry.", ctrl.Status())
}

func TestCreate_AddsAndRefreshes(t *testing.T) {
	store := newFakeStore(ann)
	ctrl, _ := newController(t, store)

	err := ctrl.Create(context.Background(), models.Attributes{Name: "Zed", Email: "z@x.com"}, "new guy")
	require.NoError(t, err)

	assert.Equal(t, "Person added!", ctrl.Status())
	people := ctrl.People()
	require.Len(t, people, 2)
	assert.Equal(t, "Zed", people[1].Name)
	assert.Equal(t, "new guy", people[1].Notes)
}

func TestCreate_NameRequired(t *testing.T) {
	ctrl, _ := newController(t, newFakeStore())

	err := ctrl.Create(context.Background(), models.Attributes{Name: "  "}, "")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "Name is required.", ctrl.Status())
}

func TestCreate_RemoteFailure(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("connection reset")
	ctrl, _ := newController(t, store)

	err := ctrl.Create(context.Background(), models.Attributes{Name: "Zed"}, "")
	require.Error(t, err)
	assert.Equal(t, "connection reset", ctrl.Status())
	assert.Empty(t, ctrl.People())
}

func TestCreate_StaleListAfterFailedRefresh(t *testing.T) {
	store := newFakeStore()
	ctrl, _ := newController(t, store)

	store.listErr = errors.New("connection reset")
	err := ctrl.Create(context.Background(), models.Attributes{Name: "Zed"}, "")

	// the write went through, so the operation itself succeeds
	require.NoError(t, err)
	assert.Equal(t, "Saved, but list did not refresh. Reload the page.", ctrl.Status())
	assert.Empty(t, ctrl.People())
	assert.Len(t, store.records, 1)
}

func TestUpdate_ReplacesAttributes(t *testing.T) {
	store := newFakeStore(ann)
	ctrl, _ := newController(t, store)

	err := ctrl.Update(context.Background(), "p1", models.Attributes{Name: "Ann", Contact: "555"}, "likes coffee")
	require.NoError(t, err)

	assert.Equal(t, "Person updated!", ctrl.Status())
	assert.Equal(t, "555", store.records["p1"].Contact)
	assert.Equal(t, "likes coffee", store.records["p1"].Notes)
}

func TestUpdate_StaleListStatus(t *testing.T) {
	store := newFakeStore(ann)
	ctrl, _ := newController(t, store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	store.listErr = errors.New("connection reset")
	err := ctrl.Update(context.Background(), "p1", models.Attributes{Name: "Ann", Contact: "555"}, "")
	require.NoError(t, err)

	assert.Equal(t, "Updated, but list did not refresh. Reload the page.", ctrl.Status())
	// the list still shows the pre-update row
	assert.Equal(t, "111", ctrl.People()[0].Contact)
}

func TestAutosave_StatusLines(t *testing.T) {
	store := newFakeStore(ann)
	ctrl, _ := newController(t, store)

	require.NoError(t, ctrl.Autosave(context.Background(), "p1", models.Attributes{Name: "Ann"}, ""))
	assert.Equal(t, "Changes autosaved.", ctrl.Status())

	err := ctrl.Autosave(context.Background(), "p1", models.Attributes{}, "")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "Name is required before autosaving. Draft kept locally.", ctrl.Status())

	store.listErr = errors.New("connection reset")
	require.NoError(t, ctrl.Autosave(context.Background(), "p1", models.Attributes{Name: "Ann"}, ""))
	assert.Equal(t, "Autosaved, but list did not refresh. Reload the page.", ctrl.Status())
}

func TestSaveNote_UpdatesOnlyNotes(t *testing.T) {
	store := newFakeStore(ann)
	ctrl, _ := newController(t, store)

	require.NoError(t, ctrl.SaveNote(context.Background(), "p1", "likes coffee"))

	assert.Equal(t, "Note saved!", ctrl.Status())
	assert.Equal(t, "likes coffee", store.records["p1"].Notes)
	assert.Equal(t, "111", store.records["p1"].Contact)
}

func TestDelete_RemovesRecordAndDrafts(t *testing.T) {
	store := newFakeStore(ann, bob)
	ctrl, drafts := newController(t, store)
	ctx := context.Background()

	drafts.SetEdit(ctx, "p1", models.Attributes{Name: "Ann", Contact: "555"})
	drafts.SetNote(ctx, "p1", "unsaved")

	require.NoError(t, ctrl.Delete(ctx, "p1"))

	assert.Equal(t, "Person deleted.", ctrl.Status())
	require.Len(t, ctrl.People(), 1)
	assert.Equal(t, "Bob", ctrl.People()[0].Name)
	_, ok := drafts.Edit("p1")
	assert.False(t, ok)
	_, ok = drafts.Note("p1")
	assert.False(t, ok)
}

func TestDelete_FailureKeepsRecordAndDrafts(t *testing.T) {
	store := newFakeStore(ann)
	ctrl, drafts := newController(t, store)
	ctx := context.Background()
	require.NoError(t, ctrl.Refresh(ctx))

	drafts.SetNote(ctx, "p1", "unsaved")
	store.deleteErr = errors.New("connection reset")

	require.Error(t, ctrl.Delete(ctx, "p1"))

	assert.Equal(t, "connection reset", ctrl.Status())
	assert.Len(t, ctrl.People(), 1)
	_, ok := drafts.Note("p1")
	assert.True(t, ok)
}

func TestDelete_StaleListAfterFailedRefresh(t *testing.T) {
	store := newFakeStore(ann)
	ctrl, _ := newController(t, store)
	ctx := context.Background()
	require.NoError(t, ctrl.Refresh(ctx))

	store.listErr = errors.New("connection reset")
	require.NoError(t, ctrl.Delete(ctx, "p1"))

	assert.Equal(t, "Deleted, but list did not refresh. Reload the page.", ctrl.Status())
	// the stale list still shows the deleted row until the next refresh
	assert.Len(t, ctrl.People(), 1)
	assert.Empty(t, store.records)
}

func TestNoteValue_PrefersDraft(t *testing.T) {
	ctrl, drafts := newController(t, newFakeStore(ann))

	assert.Equal(t, "likes tea", ctrl.NoteValue(ann))

	drafts.SetNote(context.Background(), "p1", "likes coffee")
	assert.Equal(t, "likes coffee", ctrl.NoteValue(ann))
}

// End-to-end over real sessions: deleting the record being edited goes
// back to idle and leaves no draft in either namespace behind.
func TestDeleteActiveEditTargetThroughSessions(t *testing.T) {
	store := newFakeStore(ann, bob)
	ctrl, drafts := newController(t, store)
	ctx := context.Background()
	require.NoError(t, ctrl.Refresh(ctx))

	notes := session.NewNotes(drafts, ctrl)
	edit := session.NewEdit(drafts, notes, ctrl)

	notes.Toggle(ctx, ann)
	notes.SetDraft(ctx, "p1", "unsaved note")
	require.NoError(t, edit.Start(ctx, ann))
	require.NoError(t, edit.SetField(ctx, "contact", "555"))

	require.NoError(t, edit.Delete(ctx, "p1"))

	_, active := edit.Active()
	assert.False(t, active)
	_, open := notes.Expanded()
	assert.False(t, open)
	_, ok := drafts.Edit("p1")
	assert.False(t, ok)
	_, ok = drafts.Note("p1")
	assert.False(t, ok)
	assert.Equal(t, "Person deleted.", ctrl.Status())
}

// End-to-end over real sessions: switching edit targets autosaves the
// previous target with its persisted draft payload.
func TestAutosaveOnSwitchThroughSessions(t *testing.T) {
	store := newFakeStore(ann, bob)
	ctrl, drafts := newController(t, store)
	ctx := context.Background()
	require.NoError(t, ctrl.Refresh(ctx))

	notes := session.NewNotes(drafts, ctrl)
	edit := session.NewEdit(drafts, notes, ctrl)

	require.NoError(t, edit.Start(ctx, ann))
	require.NoError(t, edit.SetField(ctx, "contact", "555"))

	require.NoError(t, edit.Start(ctx, bob))

	assert.Equal(t, "555", store.records["p1"].Contact)
	assert.Equal(t, "Changes autosaved.", ctrl.Status())
	id, active := edit.Active()
	require.True(t, active)
	assert.Equal(t, "p2", id)
}

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_OpenSeedsFromRecord(t *testing.T) {
	_, notes, drafts := newSessions(t, &fakeSaver{})
	ctx := context.Background()

	notes.Toggle(ctx, ann)

	id, open := notes.Expanded()
	require.True(t, open)
	assert.Equal(t, "p1", id)
	v, ok := drafts.Note("p1")
	require.True(t, ok)
	assert.Equal(t, "likes tea", v)
}

func TestToggle_ReopenKeepsDraft(t *testing.T) {
	_, notes, drafts := newSessions(t, &fakeSaver{})
	ctx := context.Background()

	notes.Toggle(ctx, ann)
	notes.SetDraft(ctx, "p1", "likes coffee")
	notes.Toggle(ctx, ann) // close
	notes.Toggle(ctx, ann) // reopen

	v, _ := drafts.Note("p1")
	assert.Equal(t, "likes coffee", v)
}

func TestToggle_SwitchesBetweenRecords(t *testing.T) {
	_, notes, _ := newSessions(t, &fakeSaver{})
	ctx := context.Background()

	notes.Toggle(ctx, ann)
	notes.Toggle(ctx, bob)

	id, open := notes.Expanded()
	require.True(t, open)
	assert.Equal(t, "p2", id)
}

func TestDraft_FallsBackToRecord(t *testing.T) {
	_, notes, _ := newSessions(t, &fakeSaver{})
	ctx := context.Background()

	assert.Equal(t, "likes tea", notes.Draft(ann))

	notes.SetDraft(ctx, "p1", "likes coffee")
	assert.Equal(t, "likes coffee", notes.Draft(ann))
}

func TestSave_CommitsDraftAndCloses(t *testing.T) {
	sync := &fakeSaver{}
	_, notes, drafts := newSessions(t, sync)
	ctx := context.Background()

	notes.Toggle(ctx, ann)
	notes.SetDraft(ctx, "p1", "likes coffee")

	require.NoError(t, notes.Save(ctx, ann))

	require.Len(t, sync.notes, 1)
	assert.Equal(t, savedNote{"p1", "likes coffee"}, sync.notes[0])
	_, ok := drafts.Note("p1")
	assert.False(t, ok)
	_, open := notes.Expanded()
	assert.False(t, open)
}

func TestSave_NoDraftMakesNoRemoteCall(t *testing.T) {
	sync := &fakeSaver{}
	_, notes, _ := newSessions(t, sync)
	ctx := context.Background()

	notes.Toggle(ctx, ann)
	notes.SetDraft(ctx, "p1", "likes coffee")
	require.NoError(t, notes.Save(ctx, ann))

	// second save finds nothing unsaved
	require.NoError(t, notes.Save(ctx, ann))
	assert.Len(t, sync.notes, 1)
}

func TestSave_FailureRetainsDraftForRetry(t *testing.T) {
	sync := &fakeSaver{noteErr: errors.New("connection reset")}
	_, notes, drafts := newSessions(t, sync)
	ctx := context.Background()

	notes.Toggle(ctx, ann)
	notes.SetDraft(ctx, "p1", "likes coffee")

	require.Error(t, notes.Save(ctx, ann))

	v, ok := drafts.Note("p1")
	require.True(t, ok)
	assert.Equal(t, "likes coffee", v)
	id, open := notes.Expanded()
	require.True(t, open)
	assert.Equal(t, "p1", id)

	sync.noteErr = nil
	require.NoError(t, notes.Save(ctx, ann))
	assert.Len(t, sync.notes, 1)
}

func TestForget_DropsDraftAndCloses(t *testing.T) {
	_, notes, drafts := newSessions(t, &fakeSaver{})
	ctx := context.Background()

	notes.Toggle(ctx, ann)
	notes.SetDraft(ctx, "p1", "likes coffee")
	notes.Forget(ctx, "p1")

	_, ok := drafts.Note("p1")
	assert.False(t, ok)
	_, open := notes.Expanded()
	assert.False(t, open)
}

package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LovableCodezG/tplan/internal/conflict"
	"github.com/LovableCodezG/tplan/internal/editor"
	"github.com/LovableCodezG/tplan/internal/model"
)

func museum() model.Activity {
	color := 3
	return model.Activity{
		ID:         "a1",
		Name:       "Museum",
		StartTime:  "09:00",
		Duration:   60,
		Category:   model.CategorySightseeing,
		Notes:      "buy tickets online",
		Source:     model.SourceCustom,
		ColorIndex: &color,
	}
}

func TestNewCustom_defaultsForNewActivity(t *testing.T) {
	ed := editor.NewCustom(editor.DayWindow, nil, nil)

	assert.Equal(t, conflict.Range{Start: 540, End: 600}, ed.Range())
	assert.Equal(t, editor.Idle, ed.State())
	assert.False(t, ed.CanCommit(), "empty name must block commit")

	_, ok := ed.Commit()
	assert.False(t, ok)
}

func TestEditor_basicConflictScenario(t *testing.T) {
	ed := editor.NewCustom(editor.DayWindow, []model.Activity{museum()}, nil)
	require.NoError(t, ed.SetName("Coffee"))

	ed.SetRange(570, 630)

	assert.Equal(t, editor.Conflicted, ed.State())
	require.Len(t, ed.Conflicts().Conflicting, 1)
	assert.Equal(t, "Museum", ed.Conflicts().Conflicting[0].Name)
	assert.False(t, ed.CanCommit())
	_, ok := ed.Commit()
	assert.False(t, ok)
}

func TestEditor_adjacentRangeCommits(t *testing.T) {
	ed := editor.NewCustom(editor.DayWindow, []model.Activity{museum()}, nil)
	require.NoError(t, ed.SetName("Coffee"))
	require.NoError(t, ed.SetCategory(model.CategoryMeal))

	ed.SetRange(600, 660)

	assert.Equal(t, editor.Idle, ed.State())
	got, ok := ed.Commit()
	require.True(t, ok)
	assert.Equal(t, "", got.ID)
	assert.Equal(t, "Coffee", got.Name)
	assert.Equal(t, "10:00", got.StartTime)
	assert.Equal(t, 60, got.Duration)
	assert.Equal(t, model.CategoryMeal, got.Category)
	assert.Equal(t, model.SourceCustom, got.Source)
}

func TestEditor_conflictClearsWhenRangeMoves(t *testing.T) {
	ed := editor.NewCustom(editor.DayWindow, []model.Activity{museum()}, nil)
	require.NoError(t, ed.SetName("Coffee"))

	ed.SetRange(570, 630)
	require.Equal(t, editor.Conflicted, ed.State())

	ed.DragStart(600)
	ed.DragEnd(660)
	assert.Equal(t, editor.Idle, ed.State())
	assert.True(t, ed.CanCommit())
}

func TestEditor_refreshNeverUnblocks(t *testing.T) {
	ed := editor.NewCustom(editor.DayWindow, []model.Activity{museum()}, nil)
	require.NoError(t, ed.SetName("Coffee"))
	ed.SetRange(570, 630)

	for i := 0; i < 5; i++ {
		ed.Refresh()
		assert.Equal(t, editor.Conflicted, ed.State())
		assert.False(t, ed.CanCommit())
	}
}

func TestEditor_editingNeverConflictsWithItself(t *testing.T) {
	orig := museum()
	ed := editor.NewCustom(editor.DayWindow, []model.Activity{orig}, &orig)

	assert.Equal(t, editor.Idle, ed.State())
	ed.SetRange(540, 630)
	assert.Equal(t, editor.Idle, ed.State())

	got, ok := ed.Commit()
	require.True(t, ok)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, 90, got.Duration)
	require.NotNil(t, got.ColorIndex)
	assert.Equal(t, 3, *got.ColorIndex, "colour survives edits")
}

func TestEditor_quantizesAndBounds(t *testing.T) {
	ed := editor.NewCustom(editor.DayWindow, nil, nil)

	ed.SetRange(100, 200)
	assert.Equal(t, conflict.Range{Start: 360, End: 390}, ed.Range(), "clamped into 06:00-22:00")

	ed.SetRange(1300, 1400)
	assert.Equal(t, conflict.Range{Start: 1290, End: 1320}, ed.Range())

	ed.SetRange(604, 671)
	assert.Equal(t, conflict.Range{Start: 600, End: 660}, ed.Range())

	ed.SetRange(600, 600)
	assert.Equal(t, conflict.Range{Start: 600, End: 630}, ed.Range(), "never shorter than one step")
}

func TestEditor_fullDayWindow(t *testing.T) {
	ed := editor.NewCustom(editor.FullDay, nil, nil)
	ed.SetRange(0, 1440)
	assert.Equal(t, conflict.Range{Start: 0, End: 1440}, ed.Range())
}

func TestEditor_dragStartPastEndPushesEnd(t *testing.T) {
	ed := editor.NewCustom(editor.DayWindow, nil, nil)
	ed.SetRange(600, 660)

	ed.DragStart(700)

	assert.Equal(t, conflict.Range{Start: 690, End: 720}, ed.Range())
}

func TestEditor_setStartTimeKeepsDuration(t *testing.T) {
	ed := editor.NewCustom(editor.DayWindow, nil, nil)
	ed.SetRange(600, 690)

	require.NoError(t, ed.SetStartTime("14:00"))
	assert.Equal(t, conflict.Range{Start: 840, End: 930}, ed.Range())

	assert.Error(t, ed.SetStartTime("2pm"))

	ed.SetDuration(120)
	assert.Equal(t, conflict.Range{Start: 840, End: 960}, ed.Range())
}

func TestEditor_openedOutsideWindowKeepsStoredRange(t *testing.T) {
	late := model.Activity{ID: "n1", Name: "Night market", StartTime: "22:30", Duration: 90, Category: model.CategoryMeal}
	ed := editor.NewCustom(editor.DayWindow, []model.Activity{late}, &late)

	assert.Equal(t, conflict.Range{Start: 1350, End: 1440}, ed.Range())
	got, ok := ed.Commit()
	require.True(t, ok)
	assert.Equal(t, "22:30", got.StartTime)
	assert.Equal(t, 90, got.Duration)
}

func TestNewPlace_onlyTimeIsEditable(t *testing.T) {
	orig := museum()
	orig.Source = model.SourcePlace
	ed := editor.For(editor.DayWindow, []model.Activity{orig}, orig)

	require.Equal(t, editor.Place, ed.Variant())
	assert.ErrorIs(t, ed.SetName("Renamed"), editor.ErrReadOnlyField)
	assert.ErrorIs(t, ed.SetCategory(model.CategoryMeal), editor.ErrReadOnlyField)
	assert.ErrorIs(t, ed.SetNotes("x"), editor.ErrReadOnlyField)

	ed.SetRange(780, 870)
	got, ok := ed.Commit()
	require.True(t, ok)
	assert.Equal(t, "Museum", got.Name)
	assert.Equal(t, model.CategorySightseeing, got.Category)
	assert.Equal(t, "buy tickets online", got.Notes)
	assert.Equal(t, model.SourcePlace, got.Source)
	assert.Equal(t, "13:00", got.StartTime)
	assert.Equal(t, 90, got.Duration)
}

func TestFor_customSourcePicksCustomEditor(t *testing.T) {
	ed := editor.For(editor.DayWindow, nil, museum())
	assert.Equal(t, editor.Custom, ed.Variant())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", editor.Idle.String())
	assert.Equal(t, "conflicted", editor.Conflicted.String())
}

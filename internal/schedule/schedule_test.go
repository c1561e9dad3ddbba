package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/schedule"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

func newStore(opts ...schedule.Option) *schedule.Store {
	opts = append([]schedule.Option{schedule.WithColorPicker(func() int { return 5 })}, opts...)
	return schedule.NewStore(&timecalc.SequenceIDs{Prefix: "act-"}, opts...)
}

func act(name, start string, duration int) model.Activity {
	return model.Activity{Name: name, StartTime: start, Duration: duration, Category: model.CategorySightseeing}
}

func names(acts []model.Activity) []string {
	out := make([]string, 0, len(acts))
	for _, a := range acts {
		out = append(out, a.Name)
	}
	return out
}

// ---- Reduce ----------------------------------------------------------------

func TestReduce_doesNotModifyInput(t *testing.T) {
	before := schedule.State{Days: map[int][]model.Activity{
		0: {{ID: "a", Name: "A"}},
	}}

	after := schedule.Reduce(before, schedule.Put{Day: 0, Activity: model.Activity{ID: "b", Name: "B"}})
	after = schedule.Reduce(after, schedule.Put{Day: 0, Activity: model.Activity{ID: "a", Name: "A2"}})

	assert.Equal(t, []string{"A"}, names(before.Days[0]))
	assert.Equal(t, []string{"A2", "B"}, names(after.Days[0]))
}

func TestReduce_deleteAndClear(t *testing.T) {
	s := schedule.State{Days: map[int][]model.Activity{
		0: {{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		1: {{ID: "c", Name: "C"}},
	}}

	s = schedule.Reduce(s, schedule.Delete{Day: 0, ID: "a"})
	assert.Equal(t, []string{"B"}, names(s.Days[0]))

	s = schedule.Reduce(s, schedule.ClearDay{Day: 1})
	assert.Equal(t, []int{0}, s.DayIndices())

	s = schedule.Reduce(s, schedule.Delete{Day: 0, ID: "b"})
	assert.Empty(t, s.DayIndices())
}

func TestReduce_replaceClonesState(t *testing.T) {
	src := schedule.State{Days: map[int][]model.Activity{2: {{ID: "x", Name: "X"}}}}
	s := schedule.Reduce(schedule.State{}, schedule.Replace{State: src})
	src.Days[2][0].Name = "mutated"
	assert.Equal(t, "X", s.Days[2][0].Name)
}

func TestState_Find(t *testing.T) {
	s := schedule.State{Days: map[int][]model.Activity{
		0: {{ID: "a", Name: "A"}},
		3: {{ID: "b", Name: "B"}},
	}}
	day, a, ok := s.Find("b")
	require.True(t, ok)
	assert.Equal(t, 3, day)
	assert.Equal(t, "B", a.Name)

	_, _, ok = s.Find("zzz")
	assert.False(t, ok)
}

// ---- Store -----------------------------------------------------------------

func TestStore_AddAssignsIdentityAndColor(t *testing.T) {
	st := newStore()

	got, err := st.AddOrUpdate(0, act("Museum", "09:00", 60))

	require.NoError(t, err)
	assert.Equal(t, "act-1", got.ID)
	require.NotNil(t, got.ColorIndex)
	assert.Equal(t, 5, *got.ColorIndex)
	assert.Equal(t, model.SourceCustom, got.Source)
	assert.Equal(t, []model.Activity{got}, st.ListForDay(0))
}

func TestStore_AddAppendsUpdateKeepsPosition(t *testing.T) {
	st := newStore()
	a, err := st.AddOrUpdate(1, act("Museum", "09:00", 60))
	require.NoError(t, err)
	_, err = st.AddOrUpdate(1, act("Lunch", "12:00", 60))
	require.NoError(t, err)

	a.Name = "History Museum"
	a.StartTime = "14:00"
	_, err = st.AddOrUpdate(1, a)
	require.NoError(t, err)

	assert.Equal(t, []string{"History Museum", "Lunch"}, names(st.ListForDay(1)),
		"the store keeps insertion order, not chronological order")
	got, err := st.Get(1, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, *got.ColorIndex)
}

func TestStore_PreservesExistingColor(t *testing.T) {
	st := newStore()
	c := 2
	a := act("Museum", "09:00", 60)
	a.ColorIndex = &c

	got, err := st.AddOrUpdate(0, a)
	require.NoError(t, err)
	assert.Equal(t, 2, *got.ColorIndex)
}

func TestStore_Remove(t *testing.T) {
	st := newStore()
	a, err := st.AddOrUpdate(0, act("Museum", "09:00", 60))
	require.NoError(t, err)

	require.NoError(t, st.Remove(0, a.ID))
	assert.Empty(t, st.ListForDay(0))

	err = st.Remove(0, a.ID)
	assert.ErrorIs(t, err, schedule.ErrNotFound)
}

func TestStore_ListForDayReturnsCopy(t *testing.T) {
	st := newStore()
	_, err := st.AddOrUpdate(0, act("Museum", "09:00", 60))
	require.NoError(t, err)

	list := st.ListForDay(0)
	list[0].Name = "changed"

	assert.Equal(t, "Museum", st.ListForDay(0)[0].Name)
}

func TestStore_Validation(t *testing.T) {
	tests := map[string]model.Activity{
		"empty name":    act("  ", "09:00", 60),
		"bad start":     act("Museum", "9am", 60),
		"start at 24":   act("Museum", "24:00", 60),
		"zero duration": act("Museum", "09:00", 0),
		"bad category":  {Name: "Museum", StartTime: "09:00", Duration: 60, Category: "party"},
		"bad colour":    {Name: "Museum", StartTime: "09:00", Duration: 60, Category: model.CategoryOther, ColorIndex: ptr(model.PaletteSize)},
	}
	for name, a := range tests {
		t.Run(name, func(t *testing.T) {
			st := newStore()
			_, err := st.AddOrUpdate(0, a)
			assert.ErrorIs(t, err, schedule.ErrInvalidActivity)
			assert.Empty(t, st.ListForDay(0))
		})
	}

	_, err := newStore().AddOrUpdate(-1, act("Museum", "09:00", 60))
	assert.ErrorIs(t, err, schedule.ErrInvalidActivity)
}

func TestStore_AllowsDurationPastMidnight(t *testing.T) {
	st := newStore()
	_, err := st.AddOrUpdate(0, act("Night train", "23:00", 240))
	assert.NoError(t, err)
}

func TestStore_SubscribersSeeEveryChange(t *testing.T) {
	st := newStore()
	var seen []int
	st.Subscribe(func(s schedule.State) { seen = append(seen, len(s.Days[0])) })

	a, err := st.AddOrUpdate(0, act("Museum", "09:00", 60))
	require.NoError(t, err)
	_, err = st.AddOrUpdate(0, act("Lunch", "12:00", 60))
	require.NoError(t, err)
	require.NoError(t, st.Remove(0, a.ID))

	assert.Equal(t, []int{1, 2, 1}, seen)
}

func TestStore_WithState(t *testing.T) {
	seed := schedule.State{Days: map[int][]model.Activity{4: {{ID: "x", Name: "X"}}}}
	st := newStore(schedule.WithState(seed))
	assert.Equal(t, []int{4}, st.State().DayIndices())
}

func ptr(i int) *int { return &i }

func TestStore_AcceptsOverlappingActivities(t *testing.T) {
	st := newStore()
	_, err := st.AddOrUpdate(1, act("Walking tour", "07:00", 120))
	require.NoError(t, err)

	breakfast := model.Activity{Name: "Breakfast at Grand", StartTime: "07:30", Duration: 90,
		Category: model.CategoryMeal, Source: model.SourcePlace}
	_, err = st.AddOrUpdate(1, breakfast)
	require.NoError(t, err, "overlaps are only refused by the editor")

	assert.Equal(t, []string{"Walking tour", "Breakfast at Grand"}, names(st.ListForDay(1)))
}

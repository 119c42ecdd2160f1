package enums_test

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/go-concepts/enums"
)

// ── HTTPStatusCode ───────────────────────────────────────────────────────────

func TestHTTPStatusCodeValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code  enums.HTTPStatusCode
		value int
		u8    uint8
		name  string
	}{
		{enums.SwitchProtocol, 0, 0, "SwitchProtocol"},
		{enums.NotFound, 404, 148, "NotFound"},
		{enums.GatewayTimeout, 405, 149, "GatewayTimeout"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.value, int(tc.code))
			assert.Equal(t, tc.u8, tc.code.Uint8())
			assert.Equal(t, tc.name, tc.code.String())
		})
	}
}

func TestHTTPStatusCodeUnknown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HTTPStatusCode(500)", enums.HTTPStatusCode(500).String())
	assert.Equal(t, uint8(500%256), enums.HTTPStatusCode(500).Uint8())
}

// ── Shape ────────────────────────────────────────────────────────────────────

func TestShapeArea(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, math.Pi*4, enums.Circle{Radius: 2}.Area(), 1e-12)
	assert.Equal(t, 24.0, enums.Rectangle{Width: 4, Height: 6}.Area())

	shapes := []enums.Shape{enums.Circle{Radius: 1}, enums.Rectangle{Width: 2, Height: 3}}
	assert.InDelta(t, math.Pi+6, enums.TotalArea(shapes), 1e-12)
	assert.Zero(t, enums.TotalArea(nil))
}

func TestShapeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Circle(r=5.00)", enums.Circle{Radius: 5}.String())
	assert.Equal(t, "Rectangle(w=4.00, h=6.00)", enums.Rectangle{Width: 4, Height: 6}.String())
}

// ── ProgramLanguage ──────────────────────────────────────────────────────────

func TestProgramLanguageLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang enums.ProgramLanguage
		want string
	}{
		{enums.Rust, "Top1: Rust"},
		{enums.Java, "Top2: Java"},
		{enums.Rest{Name: "Ruok", Rank: 3}, "Top3: Ruok"},
		{enums.LanguageTag(9), "LanguageTag(9)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.lang.String())
		assert.Equal(t, tc.want, fmt.Sprint(tc.lang))
	}
}

func TestProgramLanguageDiscriminant(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(1), enums.Rust.Discriminant())
	assert.Equal(t, uint8(2), enums.Java.Discriminant())
}

// A payload variant has no numeric form. The check lives in the method set,
// so it is confirmed on the types rather than by calling anything.
func TestPayloadVariantHasNoDiscriminant(t *testing.T) {
	t.Parallel()

	discriminator := reflect.TypeOf((*enums.Discriminator)(nil)).Elem()
	assert.True(t, reflect.TypeOf(enums.Rust).Implements(discriminator))
	assert.False(t, reflect.TypeOf(enums.Rest{}).Implements(discriminator))

	var lang enums.ProgramLanguage = enums.Rest{Name: "Ruok", Rank: 3}
	_, ok := lang.(enums.Discriminator)
	assert.False(t, ok)
}

func TestRestOrdinal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3rd", enums.Rest{Name: "Ruok", Rank: 3}.Ordinal())
	assert.Equal(t, "11th", enums.Rest{Name: "Zig", Rank: 11}.Ordinal())
}

// ── SchedulerState ───────────────────────────────────────────────────────────

func TestSchedulerStateDescribe(t *testing.T) {
	t.Parallel()

	var state enums.SchedulerState[string, int] = enums.NewPending[string, int]("build", "test", "build")
	assert.Equal(t, "pending(2 jobs)", enums.Describe(state))

	state = enums.NewRunning(map[int][]string{1: {"build"}, 2: {"test", "lint"}})
	assert.Equal(t, "running(2 processes, 3 jobs)", enums.Describe(state))

	assert.Equal(t, "unknown", enums.Describe[string, int](nil))
}

func TestPendingEnqueueTakeMerge(t *testing.T) {
	t.Parallel()

	var p enums.Pending[string, int]
	assert.False(t, p.Has("build"))
	assert.False(t, p.Take("build"))
	assert.Equal(t, "pending(0 jobs)", enums.Describe[string, int](p))

	p.Enqueue("build", "test", "build")
	assert.Equal(t, 2, p.Jobs.Len())
	assert.True(t, p.Has("test"))

	assert.True(t, p.Take("test"))
	assert.False(t, p.Take("test"))
	assert.False(t, p.Has("test"))

	merged := p.Merge(enums.NewPending[string, int]("lint", "build"))
	assert.ElementsMatch(t, []string{"build", "lint"}, merged.Jobs.Slice())
	assert.Equal(t, 1, p.Jobs.Len())

	var empty enums.Pending[string, int]
	assert.Zero(t, empty.Merge(empty).Jobs.Len())

	running, err := enums.Dispatch(merged, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"build", "lint"}, running.Assignments[1])
}

func TestDispatchZeroPending(t *testing.T) {
	t.Parallel()

	running, err := enums.Dispatch(enums.Pending[string, int]{}, 7)
	require.NoError(t, err)
	assert.Zero(t, running.JobCount())
	assert.Contains(t, running.Assignments, 7)
}

func TestNewRunningNilMap(t *testing.T) {
	t.Parallel()

	r := enums.NewRunning[string, int](nil)
	require.NotNil(t, r.Assignments)
	assert.Zero(t, r.JobCount())
}

func TestDispatchIsFair(t *testing.T) {
	t.Parallel()

	jobs := make([]uuid.UUID, 10)
	for i := range jobs {
		jobs[i] = uuid.New()
	}
	pending := enums.NewPending[uuid.UUID, int](jobs...)

	running, err := enums.Dispatch(pending, 1, 2, 3)
	require.NoError(t, err)
	assert.Len(t, running.Assignments, 3)
	assert.Equal(t, 10, running.JobCount())

	seen := map[uuid.UUID]bool{}
	for pid, assigned := range running.Assignments {
		assert.GreaterOrEqual(t, len(assigned), 3, "pid %d", pid)
		assert.LessOrEqual(t, len(assigned), 4, "pid %d", pid)
		for _, j := range assigned {
			assert.False(t, seen[j], "job %s assigned twice", j)
			seen[j] = true
		}
	}
	for _, j := range jobs {
		assert.True(t, seen[j], "job %s never assigned", j)
	}
}

func TestDispatchIdleProcesses(t *testing.T) {
	t.Parallel()

	running, err := enums.Dispatch(enums.NewPending[string, string]("only"), "a", "b")
	require.NoError(t, err)
	assert.Len(t, running.Assignments, 2)
	assert.Equal(t, 1, running.JobCount())
}

func TestDispatchErrors(t *testing.T) {
	t.Parallel()

	pending := enums.NewPending[string, int]("build")

	_, err := enums.Dispatch(pending)
	assert.ErrorIs(t, err, enums.ErrNoProcesses)

	_, err = enums.Dispatch(pending, 1, 1)
	assert.ErrorIs(t, err, enums.ErrDuplicateProcess)
}

package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "coride/internal/errors"
)

type sample struct {
	Name string `json:"name" validate:"required,min=2"`
	Time string `json:"time" validate:"omitempty,hhmm"`
	Kind string `json:"kind" validate:"omitempty,oneof=a b"`
}

func TestTranslate(t *testing.T) {
	v := New()

	err := Translate(v.Struct(&sample{Name: "x", Time: "8:45", Kind: "c"}))
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must be at least 2 characters", verr.Fields["name"])
	assert.Equal(t, "must be a time in HH:MM format", verr.Fields["time"])
	assert.Equal(t, "must be one of: a b", verr.Fields["kind"])

	assert.NoError(t, Translate(v.Struct(&sample{Name: "ok", Time: "08:45"})))
}

func TestTranslate_PassesOtherErrorsThrough(t *testing.T) {
	other := errors.New("boom")
	assert.Equal(t, other, Translate(other))
	assert.NoError(t, Translate(nil))
}

func TestIsClock(t *testing.T) {
	for _, s := range []string{"00:00", "08:45", "17:00", "23:59"} {
		assert.True(t, IsClock(s), s)
	}
	for _, s := range []string{"", "8:45", "24:00", "12:60", "12:5", "noon"} {
		assert.False(t, IsClock(s), s)
	}
}

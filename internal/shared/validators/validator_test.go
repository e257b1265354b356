package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSQLIdent(t *testing.T) {
	t.Parallel()

	valid := []string{"event_hourly_summary", "_staging", "T1", "platform_event_data"}
	invalid := []string{"", "1table", "ds.table", "drop table;", "name-with-dash", "tbl`"}

	for _, s := range valid {
		assert.True(t, IsSQLIdent(s), "%q should be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, IsSQLIdent(s), "%q should be invalid", s)
	}
}

func TestNew_SQLIdentTag(t *testing.T) {
	t.Parallel()

	type target struct {
		Table string `validate:"required,sqlident"`
	}

	v := New()
	assert.NoError(t, v.Struct(target{Table: "event_hourly_summary"}))

	err := v.Struct(target{Table: "bad.name"})
	assert.Error(t, err)
	ve, ok := err.(ValidationErrors)
	if assert.True(t, ok) {
		assert.Equal(t, TagSQLIdent, ve[0].Tag())
	}
}

package repository

import (
	"testing"

	"github.com/limbo/wordbook/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestSetClause(t *testing.T) {
	var set setClause
	assert.True(t, set.empty())

	set.add("name", "Basics")
	set.add("description", (*string)(nil))
	where := set.arg(int64(3))

	assert.False(t, set.empty())
	assert.Equal(t, "name = $1, description = $2", set.String())
	assert.Equal(t, "$3", where)
	assert.Equal(t, []any{"Basics", (*string)(nil), int64(3)}, set.args)
}

func TestKeyColumns(t *testing.T) {
	col, val := userKeyColumn(entity.UserByName("alice"))
	assert.Equal(t, "name", col)
	assert.Equal(t, "alice", val)

	col, val = bookKeyColumn(entity.BookByID(4))
	assert.Equal(t, "book_id", col)
	assert.Equal(t, int64(4), val)
}

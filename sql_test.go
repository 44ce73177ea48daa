package schedmode

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE prompts (id INTEGER PRIMARY KEY, mode TEXT)`)
	require.NoError(t, err)
	return db
}

func TestModeSQLRoundTrip(t *testing.T) {
	db := openTestDB(t)

	want := map[int64]Mode{1: Learning(0), 2: Learning(4), 3: Review()}
	for id, m := range want {
		_, err := db.Exec(`INSERT INTO prompts (id, mode) VALUES (?, ?)`, id, m)
		require.NoError(t, err)
	}

	rows, err := db.Query(`SELECT id, mode FROM prompts ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	got := map[int64]Mode{}
	for rows.Next() {
		var id int64
		var m Mode
		require.NoError(t, rows.Scan(&id, &m))
		got[id] = m
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, want, got)
}

func TestModeSQLStoredForm(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO prompts (id, mode) VALUES (1, ?)`, Learning(2))
	require.NoError(t, err)

	var raw string
	require.NoError(t, db.QueryRow(`SELECT mode FROM prompts WHERE id = 1`).Scan(&raw))
	assert.JSONEq(t, `{"kind":"learning","step":2}`, raw)
}

func TestModeSQLNull(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO prompts (id, mode) VALUES (1, NULL)`)
	require.NoError(t, err)

	var m Mode
	err = db.QueryRow(`SELECT mode FROM prompts WHERE id = 1`).Scan(&m)
	assert.ErrorIs(t, err, ErrInvalidMode)

	var nm sql.Null[Mode]
	require.NoError(t, db.QueryRow(`SELECT mode FROM prompts WHERE id = 1`).Scan(&nm))
	assert.False(t, nm.Valid)
}

func TestModeScan(t *testing.T) {
	var m Mode
	require.NoError(t, m.Scan(`{"kind":"review"}`))
	assert.Equal(t, Review(), m)

	require.NoError(t, m.Scan([]byte(`{"kind":"learning","step":3}`)))
	assert.Equal(t, Learning(3), m)

	assert.ErrorIs(t, m.Scan(int64(3)), ErrInvalidMode)
	assert.ErrorIs(t, m.Scan(nil), ErrInvalidMode)
	assert.ErrorIs(t, m.Scan("not json"), ErrInvalidMode)
	assert.ErrorIs(t, m.Scan(`{"kind":"learning"}`), ErrMissingStep)
	assert.Equal(t, Learning(3), m)
}

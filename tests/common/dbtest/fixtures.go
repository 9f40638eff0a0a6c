//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type RoomTypeFixture struct {
	ID            uuid.UUID
	Code          string
	PricePerNight int64
	RoomIDs       []uuid.UUID
}

// CreateRoomType inserts a room type with count rooms numbered from
// firstNumber upwards.
func CreateRoomType(t *testing.T, db DBLike, code string, pricePerNight int64, count, firstNumber int) RoomTypeFixture {
	t.Helper()

	ctx := context.Background()
	rt := RoomTypeFixture{ID: uuid.New(), Code: code, PricePerNight: pricePerNight}

	_, err := db.Exec(ctx,
		`INSERT INTO room_types (id, name, code, base_price_per_night, max_occupancy) VALUES ($1, $2, $3, $4, 2)`,
		rt.ID, code, code, pricePerNight)
	require.NoError(t, err)

	for i := range count {
		roomID := uuid.New()
		_, err := db.Exec(ctx,
			`INSERT INTO rooms (id, room_type_id, room_number, floor) VALUES ($1, $2, $3, $4)`,
			roomID, rt.ID, fmt.Sprintf("%d", firstNumber+i), (firstNumber+i)/100)
		require.NoError(t, err)
		rt.RoomIDs = append(rt.RoomIDs, roomID)
	}

	return rt
}

// BlockRoom takes a room out of service for [from, to).
func BlockRoom(t *testing.T, db DBLike, roomID uuid.UUID, from, to time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO room_blocks (room_id, status, starts_on, ends_on, reason) VALUES ($1, 'maintenance', $2, $3, 'test')`,
		roomID, from, to)
	require.NoError(t, err)
}

func SetRoomStatus(t *testing.T, db DBLike, roomID uuid.UUID, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `UPDATE rooms SET operational_status = $2 WHERE id = $1`, roomID, status)
	require.NoError(t, err)
}

func RoomStatus(t *testing.T, db DBLike, roomID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), `SELECT operational_status FROM rooms WHERE id = $1`, roomID).Scan(&status)
	require.NoError(t, err)
	return status
}

// CountRows is a blunt check for side effects the API does not expose.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	require.NoError(t, db.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

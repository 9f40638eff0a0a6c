//go:build unit

package seed_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"hotel-booking-engine/internal/infra/seed"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/shared"
	seedmock "hotel-booking-engine/tests/mock/seed"
	sharedmock "hotel-booking-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sampleSeed = `
room_types:
  - code: STD
    name: Standard
    base_price_per_night: 600000
    max_occupancy: 2
    rooms:
      - { number: "101", floor: 1 }
      - { number: "102", floor: 1, status: cleaning }
  - code: DLX
    name: Deluxe
    base_price_per_night: 1000000
    max_occupancy: 3
    description: sea view
    rooms:
      - { number: "201", floor: 2 }
blocks:
  - { room: "201", from: 2025-12-10, to: 2025-12-12, status: maintenance, reason: aircon }
`

// ==================================================================
// Parse
// ==================================================================

func TestParse(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		f, err := seed.Parse([]byte(sampleSeed))
		require.NoError(t, err)
		require.Len(t, f.RoomTypes, 2)
		assert.Len(t, f.RoomTypes[0].Rooms, 2)
		assert.Equal(t, "cleaning", f.RoomTypes[0].Rooms[1].Status)
		require.Len(t, f.Blocks, 1)
		assert.Equal(t, "aircon", f.Blocks[0].Reason)
	})

	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "malformed yaml",
			doc:  "room_types: [",
		},
		{
			name: "missing code",
			doc: `
room_types:
  - { name: Standard, base_price_per_night: 1, max_occupancy: 2 }`,
		},
		{
			name: "zero occupancy",
			doc: `
room_types:
  - { code: STD, name: Standard, base_price_per_night: 1, max_occupancy: 0 }`,
		},
		{
			name: "duplicate room type",
			doc: `
room_types:
  - { code: STD, name: Standard, base_price_per_night: 1, max_occupancy: 2 }
  - { code: STD, name: Again, base_price_per_night: 1, max_occupancy: 2 }`,
		},
		{
			name: "duplicate room number across types",
			doc: `
room_types:
  - { code: STD, name: Standard, base_price_per_night: 1, max_occupancy: 2, rooms: [{ number: "1" }] }
  - { code: DLX, name: Deluxe, base_price_per_night: 1, max_occupancy: 2, rooms: [{ number: "1" }] }`,
		},
		{
			name: "unknown room status",
			doc: `
room_types:
  - { code: STD, name: Standard, base_price_per_night: 1, max_occupancy: 2, rooms: [{ number: "1", status: haunted }] }`,
		},
		{
			name: "block on unknown room",
			doc: `
room_types:
  - { code: STD, name: Standard, base_price_per_night: 1, max_occupancy: 2, rooms: [{ number: "1" }] }
blocks:
  - { room: "9", from: 2025-12-01, to: 2025-12-02, status: maintenance }`,
		},
		{
			name: "block ending before start",
			doc: `
room_types:
  - { code: STD, name: Standard, base_price_per_night: 1, max_occupancy: 2, rooms: [{ number: "1" }] }
blocks:
  - { room: "1", from: 2025-12-02, to: 2025-12-02, status: maintenance }`,
		},
		{
			name: "block with non blocking status",
			doc: `
room_types:
  - { code: STD, name: Standard, base_price_per_night: 1, max_occupancy: 2, rooms: [{ number: "1" }] }
blocks:
  - { room: "1", from: 2025-12-01, to: 2025-12-02, status: cleaning }`,
		},
		{
			name: "bad date",
			doc: `
room_types:
  - { code: STD, name: Standard, base_price_per_night: 1, max_occupancy: 2, rooms: [{ number: "1" }] }
blocks:
  - { room: "1", from: 12/01/2025, to: 2025-12-02, status: maintenance }`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}
}

// ==================================================================
// Apply
// ==================================================================

func newLoader(t *testing.T) (*seed.Loader, *seedmock.MockQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	queries := seedmock.NewMockQueries(ctrl)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()
	return seed.NewLoader(uow, queries), queries
}

func TestLoader_Apply(t *testing.T) {
	t.Run("upserts types and rooms then blocks", func(t *testing.T) {
		loader, queries := newLoader(t)
		f, err := seed.Parse([]byte(sampleSeed))
		require.NoError(t, err)

		stdID, dlxID, room201 := uuid.New(), uuid.New(), uuid.New()
		queries.EXPECT().UpsertRoomType(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertRoomTypeParams) (uuid.UUID, error) {
				if arg.Code == "DLX" {
					assert.Equal(t, "sea view", arg.Description.String)
					return dlxID, nil
				}
				assert.False(t, arg.Description.Valid)
				return stdID, nil
			}).Times(2)

		statuses := map[string]string{}
		queries.EXPECT().UpsertRoom(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertRoomParams) (uuid.UUID, error) {
				statuses[arg.RoomNumber] = arg.OperationalStatus
				if arg.RoomNumber == "201" {
					assert.Equal(t, dlxID, arg.RoomTypeID)
					return room201, nil
				}
				assert.Equal(t, stdID, arg.RoomTypeID)
				return uuid.New(), nil
			}).Times(3)

		queries.EXPECT().CreateRoomBlock(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateRoomBlockParams) (uuid.UUID, error) {
				assert.Equal(t, room201, arg.RoomID)
				assert.Equal(t, "maintenance", arg.Status)
				assert.Equal(t, 10, arg.StartsOn.Time.Day())
				assert.Equal(t, 12, arg.EndsOn.Time.Day())
				return uuid.New(), nil
			})

		sum, err := loader.Apply(context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, seed.Summary{RoomTypes: 2, Rooms: 3, Blocks: 1}, sum)
		assert.Equal(t, map[string]string{"101": "available", "102": "cleaning", "201": "available"}, statuses)
	})

	t.Run("store failure aborts", func(t *testing.T) {
		loader, queries := newLoader(t)
		f, err := seed.Parse([]byte(sampleSeed))
		require.NoError(t, err)

		queries.EXPECT().UpsertRoomType(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errors.New("connection reset"))

		sum, err := loader.Apply(context.Background(), f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upsert room type STD")
		assert.Zero(t, sum)
	})
}

func TestLoader_LoadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		loader, _ := newLoader(t)
		_, err := loader.LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid file never opens a transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		loader := seed.NewLoader(sharedmock.NewMockUnitOfWork(ctrl), seedmock.NewMockQueries(ctrl))

		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("room_types: [{ code: X }]"), 0o600))

		_, err := loader.LoadFile(context.Background(), path)
		require.Error(t, err)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

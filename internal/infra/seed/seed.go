package seed

import (
	"context"
	"os"
	"time"

	"hotel-booking-engine/internal/domain/inventory"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/pgconv"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// File is the inventory seed document.
//
//	room_types:
//	  - code: DLX
//	    name: Deluxe
//	    base_price_per_night: 1000000
//	    max_occupancy: 2
//	    rooms:
//	      - { number: "101", floor: 1 }
//	blocks:
//	  - { room: "101", from: 2025-12-10, to: 2025-12-12, status: maintenance }
type File struct {
	RoomTypes []RoomTypeEntry `yaml:"room_types"`
	Blocks    []BlockEntry    `yaml:"blocks"`
}

type RoomTypeEntry struct {
	Code              string      `yaml:"code"`
	Name              string      `yaml:"name"`
	BasePricePerNight int64       `yaml:"base_price_per_night"`
	MaxOccupancy      int         `yaml:"max_occupancy"`
	Description       string      `yaml:"description,omitempty"`
	Rooms             []RoomEntry `yaml:"rooms"`
}

type RoomEntry struct {
	Number string `yaml:"number"`
	Floor  int    `yaml:"floor"`
	// empty means available
	Status string `yaml:"status,omitempty"`
}

type BlockEntry struct {
	Room   string `yaml:"room"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Status string `yaml:"status"`
	Reason string `yaml:"reason,omitempty"`
}

type Summary struct {
	RoomTypes int
	Rooms     int
	Blocks    int
}

type Queries interface {
	UpsertRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRoomTypeParams) (uuid.UUID, error)
	UpsertRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRoomParams) (uuid.UUID, error)
	CreateRoomBlock(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomBlockParams) (uuid.UUID, error)
}

// Parse decodes and validates a seed document without touching the store.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse seed file"), errs.ErrValidation)
	}

	codes := make(map[string]struct{})
	numbers := make(map[string]struct{})
	for _, rt := range f.RoomTypes {
		typ := inventory.RoomType{
			Name:              rt.Name,
			Code:              rt.Code,
			BasePricePerNight: rt.BasePricePerNight,
			MaxOccupancy:      rt.MaxOccupancy,
		}
		if err := typ.Validate(); err != nil {
			return nil, errs.Wrapf(err, "room type %q", rt.Code)
		}
		if _, dup := codes[rt.Code]; dup {
			return nil, errs.Validationf("room type %q listed twice", rt.Code)
		}
		codes[rt.Code] = struct{}{}

		for _, r := range rt.Rooms {
			if _, err := roomStatus(r.Status); err != nil {
				return nil, errs.Wrapf(err, "room %q", r.Number)
			}
			if r.Number == "" {
				return nil, errs.Validationf("room type %q has a room without a number", rt.Code)
			}
			if _, dup := numbers[r.Number]; dup {
				return nil, errs.Validationf("room %q listed twice", r.Number)
			}
			numbers[r.Number] = struct{}{}
		}
	}

	for _, b := range f.Blocks {
		if _, ok := numbers[b.Room]; !ok {
			return nil, errs.Validationf("block references unknown room %q", b.Room)
		}
		from, to, err := blockWindow(b)
		if err != nil {
			return nil, err
		}
		if !to.After(from) {
			return nil, errs.Validationf("block on room %q ends before it starts", b.Room)
		}
		status, err := inventory.ParseOperationalStatus(b.Status)
		if err != nil || !status.Blocks() {
			return nil, errs.Validationf("block on room %q needs a blocking status, got %q", b.Room, b.Status)
		}
	}
	return &f, nil
}

type Loader struct {
	uow     shared.UnitOfWork
	queries Queries
}

func NewLoader(uow shared.UnitOfWork, queries Queries) *Loader {
	return &Loader{uow: uow, queries: queries}
}

func (l *Loader) LoadFile(ctx context.Context, path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, errs.Wrapf(err, "read seed file %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return Summary{}, err
	}
	return l.Apply(ctx, f)
}

// Apply upserts room types and rooms by their natural keys in one
// transaction. Blocks are always inserted, so rerunning duplicates them.
func (l *Loader) Apply(ctx context.Context, f *File) (Summary, error) {
	var sum Summary
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sum = Summary{}
		roomIDs := make(map[string]uuid.UUID)

		for _, rt := range f.RoomTypes {
			typeID, err := l.queries.UpsertRoomType(ctx, tx.DB(), sqlc.UpsertRoomTypeParams{
				Name:              rt.Name,
				Code:              rt.Code,
				BasePricePerNight: rt.BasePricePerNight,
				MaxOccupancy:      int32(rt.MaxOccupancy), // #nosec G115
				Description:       pgconv.EmptyAsNull(rt.Description),
			})
			if err != nil {
				return errs.Wrapf(err, "upsert room type %s", rt.Code)
			}
			sum.RoomTypes++

			for _, r := range rt.Rooms {
				status, _ := roomStatus(r.Status)
				id, err := l.queries.UpsertRoom(ctx, tx.DB(), sqlc.UpsertRoomParams{
					RoomTypeID:        typeID,
					RoomNumber:        r.Number,
					Floor:             int32(r.Floor), // #nosec G115
					OperationalStatus: status.String(),
				})
				if err != nil {
					return errs.Wrapf(err, "upsert room %s", r.Number)
				}
				roomIDs[r.Number] = id
				sum.Rooms++
			}
		}

		for _, b := range f.Blocks {
			from, to, _ := blockWindow(b)
			_, err := l.queries.CreateRoomBlock(ctx, tx.DB(), sqlc.CreateRoomBlockParams{
				RoomID:   roomIDs[b.Room],
				Status:   b.Status,
				StartsOn: pgconv.DateToPgtype(from),
				EndsOn:   pgconv.DateToPgtype(to),
				Reason:   pgconv.EmptyAsNull(b.Reason),
			})
			if err != nil {
				return errs.Wrapf(err, "create block on room %s", b.Room)
			}
			sum.Blocks++
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return sum, nil
}

func roomStatus(s string) (inventory.OperationalStatus, error) {
	if s == "" {
		return inventory.StatusAvailable, nil
	}
	return inventory.ParseOperationalStatus(s)
}

func blockWindow(b BlockEntry) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, b.From)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Validationf("block on room %q: bad from date %q", b.Room, b.From)
	}
	to, err := time.Parse(dateLayout, b.To)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Validationf("block on room %q: bad to date %q", b.Room, b.To)
	}
	return from, to, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/innkeep/internal/domain"
)

// RegisterRoom adds a room. Room names are the key used by edit and delete,
// so a second room with the same name is rejected.
func (m *Manager) RegisterRoom(ctx context.Context, f domain.RoomFields) (domain.Room, error) {
	f.ID = m.id(f.ID, domain.PrefixRoom)
	r := domain.NewRoom(f)

	err := m.mutate(ctx, "register_room", func(s *domain.Snapshot) error {
		if roomIndex(s.Rooms, r.Name) >= 0 {
			return roomConflict("usecase.register_room", r.Name)
		}
		if hasID(s.Rooms, r.ID, func(x domain.Room) string { return x.ID }) {
			return idConflict("usecase.register_room", "room", r.ID)
		}
		s.Rooms = append(s.Rooms, r)
		return nil
	})
	if err != nil {
		return domain.Room{}, err
	}

	m.log.Info("room.registered", "room_id", r.ID, "room", r.Name)
	return r, nil
}

// EditRoom merges patch onto the first room called name. Callers that rename a
// room must look it up by the new name afterwards.
func (m *Manager) EditRoom(ctx context.Context, name string, patch domain.RoomPatch) (domain.Room, error) {
	var updated domain.Room

	err := m.mutate(ctx, "edit_room", func(s *domain.Snapshot) error {
		i := roomIndex(s.Rooms, name)
		if i < 0 {
			return domain.NotFound("usecase.edit_room", "room", name)
		}

		next := patch.Apply(s.Rooms[i])
		if next.Name != name {
			if j := roomIndex(s.Rooms, next.Name); j >= 0 && j != i {
				return roomConflict("usecase.edit_room", next.Name)
			}
		}

		s.Rooms[i] = next
		updated = next
		return nil
	})
	if err != nil {
		return domain.Room{}, err
	}

	m.log.Info("room.edited", "room_id", updated.ID, "room", updated.Name)
	return updated, nil
}

// DeleteRoom removes every room called name and returns how many went away.
// Reservations that reference the name are left untouched.
func (m *Manager) DeleteRoom(ctx context.Context, name string) (int, error) {
	removed := 0

	err := m.mutate(ctx, "delete_room", func(s *domain.Snapshot) error {
		kept := s.Rooms[:0]
		for _, r := range s.Rooms {
			if r.Name == name {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		if removed == 0 {
			return domain.NotFound("usecase.delete_room", "room", name)
		}
		s.Rooms = kept
		return nil
	})
	if err != nil {
		return 0, err
	}

	m.log.Info("room.deleted", "room", name, "count", removed)
	return removed, nil
}

func roomIndex(rooms []domain.Room, name string) int {
	for i, r := range rooms {
		if r.Name == name {
			return i
		}
	}
	return -1
}

func roomConflict(op, name string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindConflict,
		Err:  fmt.Errorf("room %q already exists: %w", name, domain.ErrConflict),
	}
}

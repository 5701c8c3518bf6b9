package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"smartInvite/internal/models"
	"smartInvite/internal/storage"
)

func (s *Storage) CreateGuest(eventID int, name, token string) (int, error) {
	query := `INSERT INTO guests (event_id, name, token) VALUES (?, ?, ?)`

	res, err := s.run(query, eventID, name, token)
	if err != nil {
		return 0, fmt.Errorf("failed to create guest: %w", err)
	}

	return int(res.lastID), nil
}

// UpdateGuestByToken overwrites the guest's response unconditionally; the
// last write from any client wins. The existence check keeps repeated
// identical writes from being mistaken for an unknown token (MySQL reports
// zero affected rows for value-identical updates).
func (s *Storage) UpdateGuestByToken(token string, confirmed bool, numPeople int) error {
	var id int

	err := s.DB.QueryRow(`SELECT id FROM guests WHERE token = ?`, token).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrGuestNotFound
		}

		return fmt.Errorf("failed to look up guest: %w", err)
	}

	_, err = s.run(`UPDATE guests SET confirmed = ?, num_people = ? WHERE id = ?`, confirmed, numPeople, id)
	if err != nil {
		return fmt.Errorf("failed to update guest: %w", err)
	}

	return nil
}

func (s *Storage) DeleteGuest(id int) error {
	var existing int

	err := s.DB.QueryRow(`SELECT id FROM guests WHERE id = ?`, id).Scan(&existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrGuestNotFound
		}

		return fmt.Errorf("failed to look up guest: %w", err)
	}

	if _, err = s.run(`DELETE FROM guests WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}

	return nil
}

func (s *Storage) GetInviteByToken(token string) (*models.Invite, error) {
	query := `
		SELECT g.id, g.event_id, g.name, g.token, g.confirmed, g.num_people, g.created_at,
		       e.name AS event_name, e.description, e.message, e.photos, e.location, e.date
		FROM guests g
		JOIN events e ON g.event_id = e.id
		WHERE g.token = ?`

	var (
		invite      models.Invite
		createdAt   sql.NullTime
		description sql.NullString
		message     sql.NullString
		photos      sql.NullString
		location    sql.NullString
		date        sql.NullTime
	)

	err := s.DB.QueryRow(query, token).Scan(
		&invite.ID,
		&invite.EventID,
		&invite.Name,
		&invite.Token,
		&invite.Confirmed,
		&invite.NumPeople,
		&createdAt,
		&invite.EventName,
		&description,
		&message,
		&photos,
		&location,
		&date,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrGuestNotFound
		}

		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	invite.CreatedAt = createdAt.Time
	invite.Description = description.String
	invite.Message = message.String
	invite.Photos = parsePhotos(photos)
	invite.Location = location.String
	if date.Valid {
		d := date.Time
		invite.Date = &d
	}

	return &invite, nil
}

// ListEventGuests projects display fields only. The token stays out of the
// listing so the host dashboard never exposes guest credentials.
func (s *Storage) ListEventGuests(eventID int) ([]models.GuestSummary, error) {
	query := `
		SELECT id, name, confirmed, num_people, created_at
		FROM guests
		WHERE event_id = ?
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}
	defer rows.Close()

	guests := []models.GuestSummary{}
	for rows.Next() {
		var (
			guest     models.GuestSummary
			createdAt sql.NullTime
		)

		err = rows.Scan(&guest.ID, &guest.Name, &guest.Confirmed, &guest.NumPeople, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}

		guest.CreatedAt = createdAt.Time
		guests = append(guests, guest)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guests: %w", err)
	}

	return guests, nil
}

package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"smartInvite/internal/models"
	"smartInvite/internal/storage"
)

func (s *Storage) CreateEvent(event models.Event) (int, error) {
	query := `
		INSERT INTO events (name, description, message, photos, location, date, custom_images)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := s.run(query,
		event.Name,
		event.Description,
		event.Message,
		marshalPhotos(event.Photos),
		event.Location,
		event.Date,
		marshalCustomImages(event.CustomImages),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return int(res.lastID), nil
}

func (s *Storage) GetEvent(id int) (*models.Event, error) {
	query := `
		SELECT id, name, description, message, photos, location, date, custom_images, created_at
		FROM events
		WHERE id = ?`

	event, err := scanEvent(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `
		SELECT id, name, description, message, photos, location, date, custom_images, created_at
		FROM events
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) GetEventsWithStats() ([]models.EventWithStats, error) {
	query := `
		SELECT
			e.id,
			e.name,
			e.description,
			e.message,
			e.photos,
			e.location,
			e.date,
			e.created_at,
			COUNT(g.id) AS total_guests,
			COUNT(CASE WHEN g.confirmed = 1 THEN 1 END) AS confirmed_guests,
			COALESCE(SUM(CASE WHEN g.confirmed = 1 THEN g.num_people ELSE 0 END), 0) AS total_people,
			COUNT(CASE WHEN g.confirmed = 0 OR g.confirmed IS NULL THEN 1 END) AS pending_guests
		FROM events e
		LEFT JOIN guests g ON e.id = g.event_id
		GROUP BY e.id, e.name, e.description, e.message, e.photos, e.location, e.date, e.created_at
		ORDER BY e.created_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events with stats: %w", err)
	}
	defer rows.Close()

	var events []models.EventWithStats
	for rows.Next() {
		var (
			event       models.EventWithStats
			description sql.NullString
			message     sql.NullString
			photos      sql.NullString
			location    sql.NullString
			date        sql.NullTime
			createdAt   sql.NullTime
		)

		err = rows.Scan(
			&event.ID,
			&event.Name,
			&description,
			&message,
			&photos,
			&location,
			&date,
			&createdAt,
			&event.TotalGuests,
			&event.ConfirmedGuests,
			&event.TotalPeople,
			&event.PendingGuests,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event stats: %w", err)
		}

		event.Description = description.String
		event.Message = message.String
		event.Photos = parsePhotos(photos)
		event.CustomImages = []models.CustomImage{}
		event.Location = location.String
		if date.Valid {
			d := date.Time
			event.Date = &d
		}
		event.CreatedAt = createdAt.Time

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events with stats: %w", err)
	}

	return events, nil
}

func (s *Storage) UpdateEvent(id int, event models.Event) error {
	query := `
		UPDATE events
		SET name = ?, description = ?, message = ?, photos = ?, location = ?, date = ?, custom_images = ?
		WHERE id = ?`

	_, err := s.run(query,
		event.Name,
		event.Description,
		event.Message,
		marshalPhotos(event.Photos),
		event.Location,
		event.Date,
		marshalCustomImages(event.CustomImages),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return nil
}

// DeleteEvent removes the event row; the foreign key cascade removes all of
// its guests.
func (s *Storage) DeleteEvent(id int) error {
	if _, err := s.run(`DELETE FROM events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

func (s *Storage) GetEventComplete(id int) (*models.Event, []models.Guest, models.EventStats, error) {
	var stats models.EventStats

	event, err := s.GetEvent(id)
	if err != nil {
		return nil, nil, stats, err
	}

	query := `
		SELECT id, event_id, name, token, confirmed, num_people, created_at
		FROM guests
		WHERE event_id = ?
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, id)
	if err != nil {
		return nil, nil, stats, fmt.Errorf("failed to get guests: %w", err)
	}
	defer rows.Close()

	guests := []models.Guest{}
	for rows.Next() {
		var (
			guest     models.Guest
			createdAt sql.NullTime
		)

		err = rows.Scan(
			&guest.ID,
			&guest.EventID,
			&guest.Name,
			&guest.Token,
			&guest.Confirmed,
			&guest.NumPeople,
			&createdAt,
		)
		if err != nil {
			return nil, nil, stats, fmt.Errorf("failed to scan guest: %w", err)
		}

		guest.CreatedAt = createdAt.Time
		guests = append(guests, guest)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, stats, fmt.Errorf("error iterating guests: %w", err)
	}

	// Recomputed in-process rather than via SQL. Everyone not confirmed
	// counts as pending, declines included.
	stats.TotalGuests = len(guests)
	for _, g := range guests {
		if g.Confirmed {
			stats.ConfirmedGuests++
			stats.TotalPeople += g.NumPeople
		} else {
			stats.PendingGuests++
		}
	}

	return event, guests, stats, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var (
		event        models.Event
		description  sql.NullString
		message      sql.NullString
		photos       sql.NullString
		location     sql.NullString
		date         sql.NullTime
		customImages sql.NullString
		createdAt    sql.NullTime
	)

	err := row.Scan(
		&event.ID,
		&event.Name,
		&description,
		&message,
		&photos,
		&location,
		&date,
		&customImages,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	event.Description = description.String
	event.Message = message.String
	event.Photos = parsePhotos(photos)
	event.Location = location.String
	event.CustomImages = parseCustomImages(customImages)
	if date.Valid {
		d := date.Time
		event.Date = &d
	}
	event.CreatedAt = createdAt.Time

	return &event, nil
}

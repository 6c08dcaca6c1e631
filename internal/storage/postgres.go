package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	s := &PostgresStorage{pool: pool, logger: logger}
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// EnsureSchema creates the tables on first run.
func (p *PostgresStorage) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			age INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS skin_profiles (
			user_id TEXT PRIMARY KEY REFERENCES users(id),
			skin_type TEXT NOT NULL,
			main_concerns TEXT NOT NULL,
			stress_level INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS daily_checkins (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			date TEXT NOT NULL,
			skin_condition INT NOT NULL,
			stress_level INT NOT NULL,
			sleep_hours INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_checkins_user ON daily_checkins (user_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS photos (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			filename TEXT NOT NULL,
			type TEXT NOT NULL,
			size BIGINT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			p.logger.Errorf("failed to ensure schema: %v", err)
			return err
		}
	}
	return nil
}

// --- UserRepository ---

func (p *PostgresStorage) CreateUser(ctx context.Context, user *internal.User) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO users (id, email, password, first_name, age, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Password, user.FirstName, user.Age, user.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert user: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, email, password, first_name, age, created_at FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (p *PostgresStorage) GetUserByID(ctx context.Context, id string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, email, password, first_name, age, created_at FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*internal.User, error) {
	var u internal.User
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.Age, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProfileRepository ---

func (p *PostgresStorage) SetProfile(ctx context.Context, profile *internal.SkinProfile) error {
	concerns, err := json.Marshal(profile.MainConcerns)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO skin_profiles (user_id, skin_type, main_concerns, stress_level, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
		   skin_type = EXCLUDED.skin_type,
		   main_concerns = EXCLUDED.main_concerns,
		   stress_level = EXCLUDED.stress_level,
		   created_at = EXCLUDED.created_at`,
		profile.UserID, profile.SkinType, string(concerns), profile.StressLevel, profile.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to upsert profile: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetProfile(ctx context.Context, userID string) (*internal.SkinProfile, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT user_id, skin_type, main_concerns, stress_level, created_at FROM skin_profiles WHERE user_id = $1`,
		userID)
	var prof internal.SkinProfile
	var concerns string
	if err := row.Scan(&prof.UserID, &prof.SkinType, &concerns, &prof.StressLevel, &prof.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(concerns), &prof.MainConcerns); err != nil {
		return nil, err
	}
	return &prof, nil
}

// --- CheckInRepository ---

func (p *PostgresStorage) SaveCheckIn(ctx context.Context, checkin *internal.CheckIn) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO daily_checkins (id, user_id, date, skin_condition, stress_level, sleep_hours, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		   skin_condition = EXCLUDED.skin_condition,
		   stress_level = EXCLUDED.stress_level,
		   sleep_hours = EXCLUDED.sleep_hours,
		   created_at = EXCLUDED.created_at`,
		checkin.ID, checkin.UserID, checkin.Date, checkin.SkinCondition, checkin.StressLevel, checkin.SleepHours, checkin.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to upsert check-in: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListCheckIns(ctx context.Context, userID string) ([]internal.CheckIn, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, user_id, date, skin_condition, stress_level, sleep_hours, created_at
		 FROM daily_checkins WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query check-ins: %v", err)
		return nil, err
	}
	defer rows.Close()

	checkins := []internal.CheckIn{}
	for rows.Next() {
		var c internal.CheckIn
		if err := rows.Scan(&c.ID, &c.UserID, &c.Date, &c.SkinCondition, &c.StressLevel, &c.SleepHours, &c.CreatedAt); err != nil {
			return nil, err
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}

// --- PhotoRepository ---

func (p *PostgresStorage) SavePhoto(ctx context.Context, photo *internal.Photo) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO photos (id, user_id, filename, type, size, uploaded_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		photo.ID, photo.UserID, photo.Filename, photo.Type, photo.Size, photo.UploadedAt)
	if err != nil {
		p.logger.Errorf("failed to insert photo: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListPhotos(ctx context.Context, userID string) ([]internal.Photo, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, user_id, filename, type, size, uploaded_at FROM photos WHERE user_id = $1 ORDER BY uploaded_at DESC`,
		userID)
	if err != nil {
		p.logger.Errorf("failed to query photos: %v", err)
		return nil, err
	}
	defer rows.Close()

	photos := []internal.Photo{}
	for rows.Next() {
		var ph internal.Photo
		if err := rows.Scan(&ph.ID, &ph.UserID, &ph.Filename, &ph.Type, &ph.Size, &ph.UploadedAt); err != nil {
			return nil, err
		}
		photos = append(photos, ph)
	}
	return photos, rows.Err()
}

func (p *PostgresStorage) DeletePhoto(ctx context.Context, userID, photoID string) (*internal.Photo, error) {
	row := p.pool.QueryRow(ctx,
		`DELETE FROM photos WHERE id = $1 AND user_id = $2 RETURNING id, user_id, filename, type, size, uploaded_at`,
		photoID, userID)
	var ph internal.Photo
	if err := row.Scan(&ph.ID, &ph.UserID, &ph.Filename, &ph.Type, &ph.Size, &ph.UploadedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &ph, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- Compile-time assertions ---
var _ Repositories = (*PostgresStorage)(nil)

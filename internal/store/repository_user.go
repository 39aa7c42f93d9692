// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/TituxMetal/epicweb-notes-app/internal/logger"
	"github.com/TituxMetal/epicweb-notes-app/models"
)

// searchResultLimit caps the user search result set.
const searchResultLimit = 50

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByUsername retrieves the user owning the given handle.
//
// Error handling:
//   - empty result set → [ErrUserNotFound]
//   - scan failure → wrapped [ErrScanningRow]
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)
	if err := row.Scan(&user.ID, &user.Username, &user.Name, &user.ImageID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning user row")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return user, nil
}

// SearchUsers matches the query case-insensitively against username and
// display name. Results are ordered by the recency of each user's latest
// note, so active authors surface first, and capped at 50 rows.
func (r *userRepository) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	pattern := "%" + query + "%"
	builder := sq.Select("id", "username", "COALESCE(name, '')", "COALESCE(image_id, '')").
		From("users").
		Where(sq.Or{
			sq.ILike{"username": pattern},
			sq.ILike{"name": pattern},
		}).
		OrderBy("(SELECT MAX(updated_at) FROM notes WHERE notes.owner_id = users.id) DESC NULLS LAST").
		Limit(searchResultLimit).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SearchUsers").Msg("error: building search query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SearchUsers").Msg("error: querying users")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Username, &user.Name, &user.ImageID); err != nil {
			log.Err(err).Str("func", "*userRepository.SearchUsers").Msg("error: scanning user rows")
			return nil, errors.Join(ErrScanningRow, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, nil
}

// GetUserImage retrieves one avatar image including its blob.
//
// Error handling:
//   - empty result set → [ErrImageNotFound]
//   - scan failure → wrapped [ErrScanningRow]
func (r *userRepository) GetUserImage(ctx context.Context, imageID string) (models.UserImage, error) {
	log := logger.FromContext(ctx)

	var image models.UserImage
	row := r.db.QueryRowContext(ctx, getUserImage, imageID)
	if err := row.Scan(&image.ID, &image.UserID, &image.AltText, &image.ContentType, &image.Blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserImage{}, ErrImageNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserImage").Msg("error: scanning user image row")
		return models.UserImage{}, errors.Join(ErrScanningRow, err)
	}

	return image, nil
}

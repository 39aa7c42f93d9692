package store

const (
	insertNote = `INSERT INTO notes (id, owner_id, title, content, updated_at)
    VALUES ($1, $2, $3, $4, NOW())
    RETURNING updated_at;`

	getNote = `SELECT id, owner_id, title, content, updated_at
    FROM notes
    WHERE id = $1;`

	listNotesByOwner = `SELECT id, owner_id, title, content, updated_at
    FROM notes
    WHERE owner_id = $1
    ORDER BY updated_at DESC;`

	updateNote = `UPDATE notes
    SET title = $1, content = $2, updated_at = NOW()
    WHERE id = $3
    RETURNING updated_at;`

	deleteNoteImages = `DELETE FROM note_images
    WHERE note_id = $1;`

	deleteNote = `DELETE FROM notes
    WHERE id = $1;`

	getNoteImages = `SELECT id, note_id, alt_text, content_type
    FROM note_images
    WHERE note_id = $1
    ORDER BY created_at, id;`

	insertImage = `INSERT INTO note_images (id, note_id, alt_text, content_type, blob)
    VALUES ($1, $2, $3, $4, $5);`

	updateImageAltText = `UPDATE note_images
    SET alt_text = $1, updated_at = NOW()
    WHERE id = $2 AND note_id = $3;`

	replaceImage = `UPDATE note_images
    SET id = $1, alt_text = $2, content_type = $3, blob = $4, updated_at = NOW()
    WHERE id = $5 AND note_id = $6;`

	getImage = `SELECT id, note_id, alt_text, content_type, blob
    FROM note_images
    WHERE id = $1;`

	findUserByUsername = `SELECT id, username, COALESCE(name, ''), COALESCE(image_id, '')
    FROM users
    WHERE username = $1;`

	getUserImage = `SELECT id, user_id, alt_text, content_type, blob
    FROM user_images
    WHERE id = $1;`
)

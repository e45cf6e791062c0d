package repositories

import (
	"database/sql"
	"fmt"

	"accverse/internal/models"
)

type NotificationRepository interface {
	List(filter models.NotificationFilter) ([]*models.Notification, error)
	GetByID(id int) (*models.Notification, error)
	MarkRead(id int) error
	SetArchived(id int, archived bool) error
	MarkAllRead(userID *int) error
}

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{DB: db}
}

func (r *notificationRepository) List(filter models.NotificationFilter) ([]*models.Notification, error) {
	q := `
		SELECT n.id, n.user_id, u.name,
		       n.title, n.message, n.type,
		       n.is_read, n.is_archived, n.metadata, n.created_at
		FROM notifications n
		LEFT JOIN users u ON n.user_id = u.id
		WHERE 1=1
	`
	var args []interface{}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		q += fmt.Sprintf(" AND n.user_id = $%d", len(args))
	}
	if !filter.IncludeArchived {
		q += " AND n.is_archived = FALSE"
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY n.created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.DB.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Notification
	for rows.Next() {
		n, err := scanNotification(rows.Scan, true)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *notificationRepository) GetByID(id int) (*models.Notification, error) {
	const q = `
		SELECT id, user_id, title, message, type,
		       is_read, is_archived, metadata, created_at
		FROM notifications
		WHERE id = $1
	`
	n, err := scanNotification(r.DB.QueryRow(q, id).Scan, false)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return n, nil
}

func (r *notificationRepository) MarkRead(id int) error {
	const q = `UPDATE notifications SET is_read = TRUE WHERE id = $1`
	_, err := r.DB.Exec(q, id)
	return err
}

func (r *notificationRepository) SetArchived(id int, archived bool) error {
	const q = `UPDATE notifications SET is_archived = $1 WHERE id = $2`
	_, err := r.DB.Exec(q, archived, id)
	return err
}

func (r *notificationRepository) MarkAllRead(userID *int) error {
	q := `UPDATE notifications SET is_read = TRUE WHERE is_read = FALSE`
	var args []interface{}
	if userID != nil {
		args = append(args, *userID)
		q += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	_, err := r.DB.Exec(q, args...)
	return err
}

func scanNotification(scan func(...interface{}) error, withUserName bool) (*models.Notification, error) {
	n := &models.Notification{}
	var (
		userID   sql.NullInt64
		userName sql.NullString
		metadata []byte
	)
	dest := []interface{}{&n.ID, &userID}
	if withUserName {
		dest = append(dest, &userName)
	}
	dest = append(dest,
		&n.Title, &n.Message, &n.Type,
		&n.IsRead, &n.IsArchived, &metadata, &n.CreatedAt,
	)
	if err := scan(dest...); err != nil {
		return nil, err
	}
	if userID.Valid {
		id := int(userID.Int64)
		n.UserID = &id
	}
	if userName.Valid {
		n.UserName = &userName.String
	}
	if len(metadata) > 0 {
		n.Metadata = metadata
	}
	return n, nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/coursefit/internal/catalog"
)

// ErrCatalogNotPublished is returned when no catalog has been stored yet.
var ErrCatalogNotPublished = errors.New("no catalog published")

// Publication describes the stored catalog.
type Publication struct {
	Version     string
	CourseCount int
	PublishedAt time.Time
}

// PublishCatalog replaces the stored catalog with c in one transaction.
func (s *Store) PublishCatalog(ctx context.Context, c *catalog.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("clear courses: %w", err)
	}

	for i, course := range c.Courses() {
		data, err := json.Marshal(course)
		if err != nil {
			return fmt.Errorf("marshal course %q: %w", course.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO courses (id, position, name, university, minimum_aps, data_json)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			course.ID, i, course.Name, course.University, course.MinimumAPS, string(data))
		if err != nil {
			return fmt.Errorf("insert course %q: %w", course.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO catalog_meta (id, version, course_count, published_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
		  version = excluded.version,
		  course_count = excluded.course_count,
		  published_at = excluded.published_at`,
		c.Version(), c.Len(), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("write catalog meta: %w", err)
	}

	return tx.Commit()
}

// Publication returns metadata for the stored catalog.
func (s *Store) Publication(ctx context.Context) (Publication, error) {
	var (
		p    Publication
		unix int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT version, course_count, published_at FROM catalog_meta WHERE id = 1`,
	).Scan(&p.Version, &p.CourseCount, &unix)
	if errors.Is(err, sql.ErrNoRows) {
		return Publication{}, ErrCatalogNotPublished
	}
	if err != nil {
		return Publication{}, fmt.Errorf("read catalog meta: %w", err)
	}
	p.PublishedAt = time.Unix(unix, 0).UTC()
	return p, nil
}

// LoadCatalog rebuilds the stored catalog in its published order.
func (s *Store) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	pub, err := s.Publication(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, data_json FROM courses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]catalog.Course, 0, pub.CourseCount)
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		var c catalog.Course
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			return nil, fmt.Errorf("decode course %q: %w", id, err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}

	if len(courses) != pub.CourseCount {
		return nil, fmt.Errorf("catalog %s: expected %d courses, found %d", pub.Version, pub.CourseCount, len(courses))
	}
	return catalog.New(pub.Version, courses)
}

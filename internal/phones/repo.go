package phones

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"phonehub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// upsertSQL is built once from the spec field table:
//
//	INSERT INTO phones (slug, c1, ..., cN) VALUES (?, ?, ..., ?)
//	ON CONFLICT(slug) DO UPDATE SET c1 = excluded.c1, ...,
//	  updated_at = CURRENT_TIMESTAMP
var upsertSQL = buildUpsertSQL()

func buildUpsertSQL() string {
	cols := models.SpecColumns()

	var b strings.Builder
	b.WriteString("INSERT INTO phones (slug, ")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") VALUES (?")
	b.WriteString(strings.Repeat(", ?", len(cols)))
	b.WriteString(") ON CONFLICT(slug) DO UPDATE SET ")
	for _, c := range cols {
		fmt.Fprintf(&b, "%s = excluded.%s, ", c, c)
	}
	b.WriteString("updated_at = CURRENT_TIMESTAMP")
	return b.String()
}

// Upsert inserts the record under its slug, or overwrites every spec column
// of the existing row and refreshes updated_at. Absent fields are stored as
// NULL, so a re-scrape that lost a field also clears it.
func (r *Repo) Upsert(ctx context.Context, slug string, rec models.PhoneRecord) error {
	cols := models.SpecColumns()
	args := make([]any, 0, len(cols)+1)
	args = append(args, slug)
	for _, c := range cols {
		if v, ok := rec[c]; ok {
			args = append(args, v)
		} else {
			args = append(args, nil)
		}
	}

	if _, err := r.DB.ExecContext(ctx, upsertSQL, args...); err != nil {
		return fmt.Errorf("upsert phone %s: %w", slug, err)
	}
	return nil
}

var selectCols = "id, slug, " + strings.Join(models.SpecColumns(), ", ") + ", created_at, updated_at"

// ListAll returns every stored phone, most recently created first.
func (r *Repo) ListAll(ctx context.Context) ([]models.StoredPhone, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+selectCols+" FROM phones ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list phones: %w", err)
	}
	defer rows.Close()

	var out []models.StoredPhone
	for rows.Next() {
		p, err := scanPhone(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan phone row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// GetBySlug returns one stored phone, or nil when the slug is unknown.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*models.StoredPhone, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+selectCols+" FROM phones WHERE slug = ?", slug)
	p, err := scanPhone(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get phone %s: %w", slug, err)
	}
	return &p, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM phones").Scan(&n); err != nil {
		return 0, fmt.Errorf("count phones: %w", err)
	}
	return n, nil
}

// Ping reports whether the store is reachable; bulk jobs refuse to start
// without it.
func (r *Repo) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// scanPhone scans a row in selectCols order. NULL spec columns stay absent
// from the record.
func scanPhone(scan func(...any) error) (models.StoredPhone, error) {
	var p models.StoredPhone

	cols := models.SpecColumns()
	vals := make([]sql.NullString, len(cols))

	dest := make([]any, 0, len(cols)+4)
	dest = append(dest, &p.ID, &p.Slug)
	for i := range vals {
		dest = append(dest, &vals[i])
	}
	dest = append(dest, &p.CreatedAt, &p.UpdatedAt)

	if err := scan(dest...); err != nil {
		return p, err
	}

	p.Fields = make(models.PhoneRecord, len(cols))
	for i, c := range cols {
		if vals[i].Valid {
			p.Fields[c] = vals[i].String
		}
	}
	return p, nil
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/direction"
	"github.com/lawnchairsociety/cartograph/internal/template"
	"go.opentelemetry.io/otel/attribute"
)

// ErrRoomNotFound is returned when a template room id has no row.
var ErrRoomNotFound = errors.New("template room not found")

// SaveCatalog replaces every stored template room and pathway with the
// contents of c in one transaction.
func (d *Database) SaveCatalog(ctx context.Context, c *template.Catalog) (err error) {
	ctx, span := d.startSpan(ctx, "database.SaveCatalog", attribute.Int("rooms", c.Len()))
	defer func() { endSpan(span, err) }()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM template_pathways"); err != nil {
		return fmt.Errorf("clear pathways: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM template_rooms"); err != nil {
		return fmt.Errorf("clear rooms: %w", err)
	}

	rooms := c.Rooms()
	for _, r := range rooms {
		if err := d.insertRoom(ctx, tx, r); err != nil {
			return err
		}
	}
	for _, r := range rooms {
		if err := d.insertPathways(ctx, tx, r); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	d.log.Info("saved template catalog", append([]any{"rooms", len(rooms)}, traceAttrs(ctx)...)...)
	return nil
}

// SaveRoom inserts or replaces a single room together with its pathways.
func (d *Database) SaveRoom(ctx context.Context, r *template.Room) (err error) {
	ctx, span := d.startSpan(ctx, "database.SaveRoom", attribute.Int64("room", r.ID))
	defer func() { endSpan(span, err) }()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, d.qb.Build("DELETE FROM template_pathways WHERE origin = ?"), r.ID); err != nil {
		return fmt.Errorf("clear pathways of %d: %w", r.ID, err)
	}
	at := r.Coordinate()
	_, err = tx.ExecContext(ctx, d.qb.Build(`
		INSERT INTO template_rooms (id, name, description, zone, locale, coord_x, coord_y, coord_z)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			zone = excluded.zone,
			locale = excluded.locale,
			coord_x = excluded.coord_x,
			coord_y = excluded.coord_y,
			coord_z = excluded.coord_z`),
		r.ID, r.Name, r.Description, r.Zone, r.Locale, at.X, at.Y, at.Z)
	if err != nil {
		return fmt.Errorf("upsert room %d: %w", r.ID, err)
	}
	if err := d.insertPathways(ctx, tx, r); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteRoom removes a room and its outbound pathways. Pathways leading to it
// from other rooms are kept and become unresolvable.
func (d *Database) DeleteRoom(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, d.qb.Build("DELETE FROM template_rooms WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete room %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("room %d: %w", id, ErrRoomNotFound)
	}
	return nil
}

func (d *Database) insertRoom(ctx context.Context, tx *sql.Tx, r *template.Room) error {
	at := r.Coordinate()
	_, err := tx.ExecContext(ctx, d.qb.Build(`
		INSERT INTO template_rooms (id, name, description, zone, locale, coord_x, coord_y, coord_z)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		r.ID, r.Name, r.Description, r.Zone, r.Locale, at.X, at.Y, at.Z)
	if err != nil {
		if d.dialect.IsDuplicateKeyError(err) {
			return fmt.Errorf("room %d: %w", r.ID, template.ErrDuplicateRoom)
		}
		return fmt.Errorf("insert room %d: %w", r.ID, err)
	}
	return nil
}

func (d *Database) insertPathways(ctx context.Context, tx *sql.Tx, r *template.Room) error {
	query := d.qb.Build(`
		INSERT INTO template_pathways (origin, direction, destination, name, target)
		VALUES (?, ?, ?, ?, ?)`)
	for _, p := range r.Pathways(true) {
		if _, err := tx.ExecContext(ctx, query, r.ID, p.Direction.String(), p.Destination, p.Name, p.Target.String()); err != nil {
			return fmt.Errorf("insert pathway %d %s: %w", r.ID, p.Direction, err)
		}
	}
	return nil
}

// LoadCatalog reads every stored room and pathway into a new catalog.
func (d *Database) LoadCatalog(ctx context.Context) (_ *template.Catalog, err error) {
	ctx, span := d.startSpan(ctx, "database.LoadCatalog")
	defer func() { endSpan(span, err) }()

	c := template.NewCatalog()

	rows, err := d.db.QueryContext(ctx, `
		SELECT id, name, description, zone, locale, coord_x, coord_y, coord_z
		FROM template_rooms ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	for rows.Next() {
		var (
			r  template.Room
			at cartography.Coordinate
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Zone, &r.Locale, &at.X, &at.Y, &at.Z); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan room: %w", err)
		}
		room := template.NewRoom(r.ID, r.Name, r.Zone, r.Locale)
		room.Description = r.Description
		room.SetCoordinate(at)
		if err := c.AddRoom(room); err != nil {
			rows.Close()
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	prow, err := d.db.QueryContext(ctx, `
		SELECT origin, direction, destination, name, target
		FROM template_pathways ORDER BY origin, direction`)
	if err != nil {
		return nil, fmt.Errorf("query pathways: %w", err)
	}
	defer prow.Close()

	for prow.Next() {
		var (
			p             cartography.Pathway[int64]
			dirName, kind string
		)
		if err := prow.Scan(&p.Origin, &dirName, &p.Destination, &p.Name, &kind); err != nil {
			return nil, fmt.Errorf("scan pathway: %w", err)
		}
		dir, ok := direction.Parse(dirName)
		if !ok {
			d.log.Warn("skipping pathway with unknown direction", "origin", p.Origin, "direction", dirName)
			continue
		}
		target, ok := cartography.ParseTargetKind(kind)
		if !ok {
			d.log.Warn("unknown pathway target, treating as room", "origin", p.Origin, "target", kind)
		}
		p.Direction = dir
		p.Target = target
		if err := c.AddPathway(p); err != nil {
			return nil, err
		}
	}
	if err := prow.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("rooms", c.Len()))
	d.log.Info("loaded template catalog", append([]any{"rooms", c.Len()}, traceAttrs(ctx)...)...)
	return c, nil
}

// RoomCount returns the number of stored template rooms.
func (d *Database) RoomCount(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM template_rooms").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

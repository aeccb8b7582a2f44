package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
)

func (r *Repository) CreateSnapshot(snapshot *domain.ScheduleSnapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	payload, err := json.Marshal(snapshot.Payload)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO schedule_snapshots (name, payload)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, snapshot.Name, payload).Scan(&snapshot.ID, &snapshot.CreatedAt, &snapshot.Version); err != nil {
		return err
	}

	return nil
}

// GetAllSnapshots 只返回快照的元信息，载荷留待按 id 查询时再加载
func (r *Repository) GetAllSnapshots() ([]*domain.ScheduleSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, created_at, version
		FROM schedule_snapshots
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]*domain.ScheduleSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.ScheduleSnapshot{}
		if err := rows.Scan(&snapshot.ID, &snapshot.Name, &snapshot.CreatedAt, &snapshot.Version); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

func (r *Repository) GetSnapshotByID(id int64) (*domain.ScheduleSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT name, payload, created_at, version
		FROM schedule_snapshots
		WHERE id = $1
	`

	snapshot := &domain.ScheduleSnapshot{
		ID: id,
	}

	var payload []byte
	dst := []any{&snapshot.Name, &payload, &snapshot.CreatedAt, &snapshot.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(payload, &snapshot.Payload); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// GetLatestSnapshot 返回最近保存的快照，服务启动时用它恢复排班状态
func (r *Repository) GetLatestSnapshot() (*domain.ScheduleSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, payload, created_at, version
		FROM schedule_snapshots
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	snapshot := &domain.ScheduleSnapshot{}

	var payload []byte
	dst := []any{&snapshot.ID, &snapshot.Name, &payload, &snapshot.CreatedAt, &snapshot.Version}
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(payload, &snapshot.Payload); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *Repository) DeleteSnapshot(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM schedule_snapshots WHERE id = $1
	`

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

package store

import (
	"fmt"
	"time"
)

// ImportLog 一条导入审计记录
type ImportLog struct {
	ID           int64     `json:"id"`
	Version      string    `json:"version"`
	Filename     string    `json:"filename"`
	FileSize     int64     `json:"fileSize"`
	TotalRows    int       `json:"totalRows"`
	ImportedRows int       `json:"importedRows"`
	WarningRows  int       `json:"warningRows"`
	Status       string    `json:"status"` // processing / success / failed
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateImportLog 创建导入日志，返回 import_log_id
func (s *Store) CreateImportLog(version, filename string, fileSize int64) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (version, filename, file_size, status)
		VALUES (?, ?, ?, 'processing')
	`, version, filename, fileSize)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// FinishImportLog 完成导入日志更新
func (s *Store) FinishImportLog(id int64, totalRows, importedRows, warningRows int, status, message string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			total_rows = ?,
			imported_rows = ?,
			warning_rows = ?,
			status = ?,
			message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, totalRows, importedRows, warningRows, status, message, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// ListImportLogs 按时间倒序列出导入历史
func (s *Store) ListImportLogs(limit int) ([]ImportLog, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, version, filename, file_size, total_rows, imported_rows, warning_rows, status, message, created_at
		FROM import_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query import logs: %w", err)
	}
	defer rows.Close()

	var logs []ImportLog
	for rows.Next() {
		var l ImportLog
		if err := rows.Scan(&l.ID, &l.Version, &l.Filename, &l.FileSize,
			&l.TotalRows, &l.ImportedRows, &l.WarningRows, &l.Status, &l.Message, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// LastImportTime 最后一次成功导入的时间（无记录时返回零值）
func (s *Store) LastImportTime() (time.Time, error) {
	var t time.Time
	err := s.db.QueryRow(`
		SELECT created_at FROM import_logs
		WHERE status = 'success'
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`).Scan(&t)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

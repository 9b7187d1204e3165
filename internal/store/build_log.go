package store

import (
	"database/sql"
	"fmt"
)

// BuildLog 单次构建记录
type BuildLog struct {
	ID           int64  `json:"id"`
	BuildID      string `json:"buildId"`
	FileCount    int    `json:"fileCount"`
	RowCount     int    `json:"rowCount"`
	CompanyCount int    `json:"companyCount"`
	OutputFile   string `json:"outputFile"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage"`
	CreatedAt    string `json:"createdAt"`
	CompletedAt  string `json:"completedAt,omitempty"`
}

// CreateBuildLog 创建构建日志，返回 build_log_id
func (s *Store) CreateBuildLog(buildID string, fileCount int) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO build_logs (build_id, file_count, status)
		VALUES (?, ?, 'processing')
	`, buildID, fileCount)
	if err != nil {
		return 0, fmt.Errorf("failed to create build log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get build log id: %w", err)
	}
	return id, nil
}

// CompleteBuildLog 完成构建日志更新
func (s *Store) CompleteBuildLog(id int64, rowCount, companyCount int, outputFile, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE build_logs SET
			row_count = ?,
			company_count = ?,
			output_file = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, rowCount, companyCount, outputFile, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to complete build log: %w", err)
	}
	return nil
}

// ListBuildLogs 按创建时间倒序列出最近的构建记录
func (s *Store) ListBuildLogs(limit int) ([]BuildLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, build_id, file_count, row_count, company_count,
			output_file, status, error_message, created_at, completed_at
		FROM build_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query build logs failed: %w", err)
	}
	defer rows.Close()

	var out []BuildLog
	for rows.Next() {
		it, err := scanBuildLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate build logs failed: %w", err)
	}
	return out, nil
}

// GetBuildLog 按 build_id 查询单条构建记录
func (s *Store) GetBuildLog(buildID string) (*BuildLog, error) {
	rows, err := s.db.Query(`
		SELECT id, build_id, file_count, row_count, company_count,
			output_file, status, error_message, created_at, completed_at
		FROM build_logs
		WHERE build_id = ?
	`, buildID)
	if err != nil {
		return nil, fmt.Errorf("query build log failed: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, sql.ErrNoRows
	}
	it, err := scanBuildLog(rows)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// CountBuildLogs 构建总数与成功数统计
func (s *Store) CountBuildLogs() (total, succeeded int, err error) {
	err = s.db.QueryRow(`
		SELECT COUNT(1),
			COALESCE(SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END), 0)
		FROM build_logs
	`).Scan(&total, &succeeded)
	if err != nil {
		return 0, 0, fmt.Errorf("count build logs failed: %w", err)
	}
	return total, succeeded, nil
}

// LastBuildTime 最近一次构建的创建时间，无记录时返回空串
func (s *Store) LastBuildTime() (string, error) {
	var ts sql.NullString
	err := s.db.QueryRow(`
		SELECT MAX(created_at) FROM build_logs
	`).Scan(&ts)
	if err != nil {
		return "", fmt.Errorf("query last build time failed: %w", err)
	}
	if !ts.Valid {
		return "", nil
	}
	return ts.String, nil
}

func scanBuildLog(rows *sql.Rows) (BuildLog, error) {
	var it BuildLog
	var completedAt sql.NullString
	if err := rows.Scan(
		&it.ID, &it.BuildID, &it.FileCount, &it.RowCount, &it.CompanyCount,
		&it.OutputFile, &it.Status, &it.ErrorMessage, &it.CreatedAt, &completedAt,
	); err != nil {
		return BuildLog{}, fmt.Errorf("scan build log failed: %w", err)
	}
	if completedAt.Valid {
		it.CompletedAt = completedAt.String
	}
	return it, nil
}

package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task row
func ScanTask(scanner Scanner) (*taskRow, error) {
	row := &taskRow{}
	err := scanner.Scan(
		&row.ID,
		&row.Position,
		&row.Title,
		&row.Description,
		&row.Assignment,
		&row.Category,
		&row.Status,
		&row.AssignedTime,
		&row.CompletedTime,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ScanTasks scans multiple task rows
func ScanTasks(rows Rows) ([]*taskRow, error) {
	return scanAll(rows, ScanTask)
}

// ScanComment scans a single comment row
func ScanComment(scanner Scanner) (*commentRow, error) {
	row := &commentRow{}
	err := scanner.Scan(
		&row.ID,
		&row.TaskID,
		&row.Position,
		&row.Author,
		&row.Content,
		&row.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ScanComments scans multiple comment rows
func ScanComments(rows Rows) ([]*commentRow, error) {
	return scanAll(rows, ScanComment)
}

func scanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		result, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

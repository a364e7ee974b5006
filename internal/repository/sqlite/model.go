package sqlite

import "database/sql"

// taskRow mirrors a row of the tasks table
type taskRow struct {
	ID            string
	Position      int
	Title         string
	Description   string
	Assignment    string
	Category      string
	Status        string
	AssignedTime  string
	CompletedTime sql.NullString
}

// commentRow mirrors a row of the comments table
type commentRow struct {
	ID        string
	TaskID    string
	Position  int
	Author    string
	Content   string
	Timestamp string
}

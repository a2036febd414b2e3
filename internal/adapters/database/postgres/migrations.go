package postgres

import "github.com/mizusawa-dev/swimtrack/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.SwimRecord{},
	&entity.Competition{},
	&entity.Category{},
	&entity.Document{},
	&entity.Announcement{},
}

package entity

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Document is an uploaded training file. StoredName is the name on disk;
// FileName is what the uploader called it.
type Document struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	FileName    string    `gorm:"not null" json:"fileName"`
	StoredName  string    `gorm:"not null;uniqueIndex" json:"-"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CategoryID  *uint     `json:"categoryId,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	UploadedBy  uint      `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

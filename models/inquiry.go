package models

import "time"

// Inquiry is a message submitted through the contact form.
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Service   string    `gorm:"size:64;not null" json:"service"`
	Budget    string    `gorm:"size:64" json:"budget"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	RemoteIP  string    `gorm:"size:45" json:"-"`
	Notified  bool      `gorm:"default:false" json:"notified"`
	CreatedAt time.Time `json:"created_at"`
}

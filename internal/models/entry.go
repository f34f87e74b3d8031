package models

// TimestampLayout is the text layout entries are timestamped with.
// Lexicographic order of this layout matches chronological order, so the
// store can sort on the raw column.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is one persisted BMI measurement. Entries are immutable once
// written; the history is append-only.
type Entry struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"index" json:"name"`
	Weight   float64 `json:"weight"`
	Height   float64 `json:"height"`
	BMI      float64 `gorm:"column:bmi" json:"bmi"`
	Category string  `json:"category"`
	// Timestamp is stored as text, see TimestampLayout
	Timestamp string `gorm:"index" json:"timestamp"`
}

func (Entry) TableName() string {
	return "entries"
}

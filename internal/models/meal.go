package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the wire format for meal timestamps, second precision.
const TimeLayout = "2006-01-02 15:04:05"

// MealTime wraps time.Time so meal timestamps serialize as
// "YYYY-MM-DD HH:MM:SS" on both the JSON and SQL boundaries. The string
// a client submits on creation comes back unchanged in responses.
type MealTime struct {
	time.Time
}

func ParseMealTime(s string) (MealTime, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return MealTime{}, err
	}
	return MealTime{t}, nil
}

func (t MealTime) String() string {
	return t.Format(TimeLayout)
}

func (t MealTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimeLayout))
}

func (t *MealTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(TimeLayout, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t MealTime) Value() (driver.Value, error) {
	return t.Time, nil
}

func (t *MealTime) Scan(v interface{}) error {
	switch val := v.(type) {
	case time.Time:
		t.Time = val
		return nil
	case string:
		return t.scanString(val)
	case []byte:
		return t.scanString(string(val))
	default:
		return fmt.Errorf("cannot scan %T into MealTime", v)
	}
}

func (t *MealTime) scanString(s string) error {
	// sqlite hands timestamps back as text in one of these shapes
	for _, layout := range []string{TimeLayout, time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999-07:00"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as MealTime", s)
}

func (MealTime) GormDataType() string {
	return "time"
}

type Meal struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"not null;size:100" json:"name"`
	Description string   `gorm:"size:200" json:"description"`
	DateTime    MealTime `gorm:"not null" json:"date_time"`
	InDiet      bool     `gorm:"not null" json:"in_diet"`
	UserID      uint     `gorm:"not null;index" json:"user_id"`
	User        *User    `gorm:"foreignKey:UserID" json:"-"`
}

package models

import (
	"encoding/json"
	"time"
)

// PhoneRecord is the normalized form of one scraped phone: spec column name
// to text value. A column absent from the map was absent on the source page;
// values are never anything but text.
type PhoneRecord map[string]string

// StoredPhone is a PhoneRecord as persisted in the phones table.
type StoredPhone struct {
	ID        int64
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Fields    PhoneRecord
}

// MarshalJSON flattens the spec fields next to id/slug/timestamps, so API
// consumers see one flat object per phone.
func (p StoredPhone) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Fields)+4)
	for k, v := range p.Fields {
		out[k] = v
	}
	out["id"] = p.ID
	out["slug"] = p.Slug
	out["created_at"] = p.CreatedAt
	out["updated_at"] = p.UpdatedAt
	return json.Marshal(out)
}

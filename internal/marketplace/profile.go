package marketplace

type Profiles struct {
	Items []*Profile
}

type Profile struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name,omitempty"`
	Role            string   `json:"role,omitempty"`
	Location        string   `json:"location,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	YearsExperience int      `json:"yearsExperience,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
}

func (p *Profile) StringField(name string) string {
	switch name {
	case FieldID:
		return p.ID
	case FieldTitle:
		// Talent searches match against the role title.
		return p.Role
	case FieldLocation:
		return p.Location
	default:
		return ""
	}
}

func (p *Profile) ListField(name string) []string {
	if name == FieldSkills {
		return p.Skills
	}
	return nil
}

func (p *Profiles) Len() int {
	return len(p.Items)
}

func (p *Profiles) FindByID(id string) *Profile {
	for _, profile := range p.Items {
		if profile.ID == id {
			return profile
		}
	}
	return nil
}

func (p *Profiles) Records() []Record {
	records := make([]Record, 0, len(p.Items))
	for _, profile := range p.Items {
		records = append(records, profile)
	}
	return records
}

package marketplace

// CompanyKind distinguishes companies hiring talent from companies selling
// BIM services.
type CompanyKind string

const (
	KindTalentSeeker    CompanyKind = "talent_seeker"
	KindServiceProvider CompanyKind = "service_provider"
)

type Companies struct {
	Items []*Company
}

type Company struct {
	ID         string      `json:"id,omitempty"`
	Name       string      `json:"name,omitempty"`
	Kind       CompanyKind `json:"companyType,omitempty"`
	Location   string      `json:"location,omitempty"`
	Industries []string    `json:"industries,omitempty"`

	// talent_seeker fields.
	OpenPositions int    `json:"openPositions,omitempty"`
	HiringStatus  string `json:"hiringStatus,omitempty"`

	// service_provider fields.
	Services          []string `json:"services,omitempty"`
	Rating            float64  `json:"rating,omitempty"`
	ProjectsCompleted int      `json:"projectsCompleted,omitempty"`
}

func (c *Company) StringField(name string) string {
	switch name {
	case FieldID:
		return c.ID
	case FieldTitle:
		return c.Name
	case FieldLocation:
		return c.Location
	case FieldKind:
		return string(c.Kind)
	default:
		return ""
	}
}

func (c *Company) ListField(name string) []string {
	if name == FieldServices {
		return c.Services
	}
	return nil
}

func (c *Companies) Len() int {
	return len(c.Items)
}

func (c *Companies) FindByID(id string) *Company {
	for _, company := range c.Items {
		if company.ID == id {
			return company
		}
	}
	return nil
}

func (c *Companies) Records() []Record {
	records := make([]Record, 0, len(c.Items))
	for _, company := range c.Items {
		records = append(records, company)
	}
	return records
}

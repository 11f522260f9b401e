package marketplace

// Employment is the employment category of a job listing.
type Employment string

const (
	EmploymentFullTime  Employment = "full-time"
	EmploymentFreelance Employment = "freelance"
	EmploymentContract  Employment = "contract"
)

type Jobs struct {
	Items []*Job
}

type Job struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title,omitempty"`
	Company     string     `json:"company,omitempty"`
	Location    string     `json:"location,omitempty"`
	Type        Employment `json:"type,omitempty"`
	Description string     `json:"description,omitempty"`
	Skills      []string   `json:"skills,omitempty"`
	Salary      string     `json:"salary,omitempty"`
	PostedAt    string     `json:"postedAt,omitempty"`
}

func (j *Job) StringField(name string) string {
	switch name {
	case FieldID:
		return j.ID
	case FieldTitle:
		return j.Title
	case FieldLocation:
		return j.Location
	case FieldEmployment:
		return string(j.Type)
	default:
		return ""
	}
}

func (j *Job) ListField(name string) []string {
	if name == FieldSkills {
		return j.Skills
	}
	return nil
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *Job {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

// Records returns the listings as generic records, preserving order.
func (j *Jobs) Records() []Record {
	records := make([]Record, 0, len(j.Items))
	for _, job := range j.Items {
		records = append(records, job)
	}
	return records
}

// ReportByCompany groups the listings by employer name for pretty-printing.
func (j *Jobs) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, job := range j.Items {
		report[job.Company] = append(report[job.Company], map[string]string{
			"title":    job.Title,
			"location": job.Location,
			"type":     string(job.Type),
			"salary":   job.Salary,
		})
	}
	return report
}

package page

// Section ids, also used as nav anchors.
const (
	SectionHome     = "home"
	SectionAbout    = "about"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

// Project is one portfolio card.
type Project struct {
	Name        string
	Description string
	Tags        []string
	Link        string
}

// SkillGroup is one column of the skills grid.
type SkillGroup struct {
	Name  string
	Items []string
}

// Content is the static copy rendered into the sections.
type Content struct {
	Name     string
	Role     string
	Tagline  string
	About    []string
	Skills   []SkillGroup
	Projects []Project
	Email    string
	Location string
	Contact  string
}

// NewDocument builds the five-section page in reading order. Extents are
// design heights, independent of the viewport.
func NewDocument() *Document {
	d := &Document{
		Sections: []*Section{
			{ID: SectionHome, Title: "Home", Extent: 720},
			{ID: SectionAbout, Title: "About", Extent: 560},
			{ID: SectionSkills, Title: "Skills", Extent: 640},
			{ID: SectionProjects, Title: "Projects", Extent: 880},
			{ID: SectionContact, Title: "Contact", Extent: 760},
		},
	}
	d.Relayout()
	return d
}

// DefaultContent returns the portfolio copy.
func DefaultContent() Content {
	return Content{
		Name:    "Ilya Burimskiy",
		Role:    "Backend & Systems Engineer",
		Tagline: "I build small, fast tools and the services behind them.",
		About: []string{
			"I spent the last eight years writing services, pipelines and the",
			"occasional desktop toy. I care about software that starts fast,",
			"fails loudly and can be reasoned about at 3am.",
			"",
			"Away from a keyboard I ride gravel bikes and collect field",
			"recordings of trams.",
		},
		Skills: []SkillGroup{
			{Name: "Languages", Items: []string{"Go", "Python", "SQL", "C"}},
			{Name: "Systems", Items: []string{"PostgreSQL", "SQLite", "Redis", "NATS"}},
			{Name: "Practices", Items: []string{"Profiling", "Observability", "CI/CD", "Incident response"}},
		},
		Projects: []Project{
			{
				Name:        "tramlog",
				Description: "Noise-mapping pipeline that turns field recordings into a city heat map.",
				Tags:        []string{"Go", "DSP", "PostGIS"},
				Link:        "github.com/iburimskiy/tramlog",
			},
			{
				Name:        "shelfd",
				Description: "Self-hosted library tracker with a one-binary deploy and offline sync.",
				Tags:        []string{"Go", "SQLite"},
				Link:        "github.com/iburimskiy/shelfd",
			},
			{
				Name:        "audio-visualization",
				Description: "Desktop spectrum visualizer for local music, sixty frames a second.",
				Tags:        []string{"Go", "Ebiten", "FFT"},
				Link:        "github.com/iburimskiy/my-audio-visualization",
			},
			{
				Name:        "gravelroute",
				Description: "Route planner that prefers bad roads on purpose.",
				Tags:        []string{"Go", "OSM", "Routing"},
				Link:        "github.com/iburimskiy/gravelroute",
			},
		},
		Email:    "ilya@burimskiy.dev",
		Location: "Tbilisi, remote-friendly",
		Contact:  "Have a project, a question or a good tram line? Write me.",
	}
}

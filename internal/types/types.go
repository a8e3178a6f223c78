package types

// GeneratedFile represents a single file of a generated project tree.
type GeneratedFile struct {
	Filename     string  `json:"filename"`
	Type         string  `json:"type"` // e.g., "tsx", "css", "json"
	Content      string  `json:"content"`
	Confidence   float64 `json:"confidence"`
	FallbackUsed bool    `json:"fallbackUsed"`
}

// BusinessContext is the structured industry descriptor driving both
// generation prompts and fallback table lookups. It is read-only input;
// the pipeline never mutates it.
type BusinessContext struct {
	Industry           string   `json:"industry"`
	SpecificNiche      string   `json:"specificNiche,omitempty"`
	BusinessModel      string   `json:"businessModel,omitempty"`
	KeyDifferentiators []string `json:"keyDifferentiators,omitempty"`
}

// FinalJson is the loosely-typed business-description document collected by
// the conversational flow upstream of this server. Every section is optional;
// absence is not an error.
type FinalJson struct {
	Project  *ProjectSection  `json:"project,omitempty"`
	Business *BusinessSection `json:"business,omitempty"`
	Hero     *HeroSection     `json:"hero,omitempty"`
	Contact  *ContactSection  `json:"contact,omitempty"`
	Menu     *MenuSection     `json:"menu,omitempty"`
	Featured *FeaturedSection `json:"featured,omitempty"`
	Team     *TeamSection     `json:"team,omitempty"`
	Gallery  *GallerySection  `json:"gallery,omitempty"`
}

type ProjectSection struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type BusinessSection struct {
	Name        string `json:"name,omitempty"`
	Tagline     string `json:"tagline,omitempty"`
	Description string `json:"description,omitempty"`
}

type HeroSection struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Mood     string `json:"mood,omitempty"` // e.g., "warm", "minimal"
}

type ContactSection struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Hours   string `json:"hours,omitempty"`
}

type MenuSection struct {
	Cuisine string     `json:"cuisine,omitempty"`
	Items   []MenuItem `json:"items,omitempty"`
}

type MenuItem struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

type FeaturedSection struct {
	Title string   `json:"title,omitempty"`
	Items []string `json:"items,omitempty"`
}

type TeamSection struct {
	Department string `json:"department,omitempty"`
	Size       int    `json:"size,omitempty"`
}

type GallerySection struct {
	Theme string `json:"theme,omitempty"`
}

// BusinessName picks the best available display name for prompts and alt
// text: business name, then project name, then the caller-supplied fallback.
func (f *FinalJson) BusinessName(fallback string) string {
	if f != nil {
		if f.Business != nil && f.Business.Name != "" {
			return f.Business.Name
		}
		if f.Project != nil && f.Project.Name != "" {
			return f.Project.Name
		}
	}
	return fallback
}

package contentapimodels

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

type HeroSlide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Hero struct {
	Slides []HeroSlide `json:"slides"`
	Stats  []Stat      `json:"stats"`
}

type About struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Stats       []Stat `json:"stats"`
}

type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Color       string   `json:"color"`
}

type CaseStudy struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Results     []string `json:"results"`
}

type Feature struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

type Testimonial struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Position string `json:"position"`
	Image    string `json:"image"`
}

type Link struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type FooterSection struct {
	Title string `json:"title"`
	Links []Link `json:"links"`
}

type Contacts struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Social  []Link `json:"social"`
}

type Footer struct {
	Sections []FooterSection `json:"sections"`
	Contacts Contacts        `json:"contacts"`
}

type OpenPosition struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Schedule string `json:"schedule"`
}

type Site struct {
	Navigation   []Link         `json:"navigation"`
	Hero         Hero           `json:"hero"`
	About        About          `json:"about"`
	Services     []Service      `json:"services"`
	CaseStudies  []CaseStudy    `json:"case_studies"`
	Features     []Feature      `json:"features"`
	Testimonials []Testimonial  `json:"testimonials"`
	Positions    []OpenPosition `json:"positions"`
	Footer       Footer         `json:"footer"`
}

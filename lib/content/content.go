package content

import (
	"ocavior-site/models"
	contentapimodels "ocavior-site/models/api/content"
	"time"

	"github.com/pkg/errors"
)

type Provider interface {
	GetSite() contentapimodels.Site
	GetSection(name string) (section interface{}, err error)
	GetCarousel(name string) (CarouselSpec, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{site: buildSite()}
}

// CarouselSpec describes a rotating section. Interval 0 means manual selection only.
type CarouselSpec struct {
	Name     string
	Size     int
	Interval time.Duration
}

const (
	CarouselHero         = "hero"
	CarouselTestimonials = "testimonials"
	CarouselFeatures     = "features"

	heroInterval         = 4 * time.Second
	testimonialsInterval = 5 * time.Second
)

var ErrSectionNotFound = errors.New("section not found")

type impl struct {
	site contentapimodels.Site
}

func (i impl) GetSite() contentapimodels.Site {
	return i.site
}

func (i impl) GetSection(name string) (interface{}, error) {
	switch name {
	case "navigation":
		return i.site.Navigation, nil
	case "hero":
		return i.site.Hero, nil
	case "about":
		return i.site.About, nil
	case "services":
		return i.site.Services, nil
	case "case-studies":
		return i.site.CaseStudies, nil
	case "features":
		return i.site.Features, nil
	case "testimonials":
		return i.site.Testimonials, nil
	case "positions":
		return i.site.Positions, nil
	case "footer":
		return i.site.Footer, nil
	}
	return nil, errors.Wrapf(ErrSectionNotFound, "section %q", name)
}

func (i impl) GetCarousel(name string) (CarouselSpec, error) {
	switch name {
	case CarouselHero:
		return CarouselSpec{Name: name, Size: len(i.site.Hero.Slides), Interval: heroInterval}, nil
	case CarouselTestimonials:
		return CarouselSpec{Name: name, Size: len(i.site.Testimonials), Interval: testimonialsInterval}, nil
	case CarouselFeatures:
		return CarouselSpec{Name: name, Size: len(i.site.Features)}, nil
	}
	return CarouselSpec{}, errors.Errorf("carousel %q not found", name)
}

func buildSite() contentapimodels.Site {
	positions := make([]contentapimodels.OpenPosition, 0, len(models.OpenPositions))
	for _, p := range models.OpenPositions {
		positions = append(positions, contentapimodels.OpenPosition{
			Title:    string(p),
			Slug:     p.Slug(),
			Schedule: "Full Time • Remote/Hybrid",
		})
	}
	return contentapimodels.Site{
		Navigation: []contentapimodels.Link{
			{Name: "Home", Href: "#home"},
			{Name: "About", Href: "#about"},
			{Name: "Services", Href: "#services"},
			{Name: "Case Studies", Href: "#case-studies"},
			{Name: "Careers", Href: "#careers"},
			{Name: "Contact", Href: "#contact"},
		},
		Hero: contentapimodels.Hero{
			Slides: []contentapimodels.HeroSlide{
				{Title: "Transform Your Digital Future", Description: "Cutting-edge technology solutions to drive your business forward"},
				{Title: "Innovate with Confidence", Description: "Expert teams delivering exceptional results"},
				{Title: "Build Lasting Solutions", Description: "Strategic partnerships for sustainable growth"},
			},
			Stats: []contentapimodels.Stat{
				{Value: "500+", Label: "Clients"},
				{Value: "1000+", Label: "Projects"},
				{Value: "50+", Label: "Team Members"},
				{Value: "98%", Label: "Success Rate"},
			},
		},
		About: contentapimodels.About{
			Title: "About Ocavior",
			Description: "Pioneering digital transformation through innovative solutions and strategic partnerships. " +
				"We're committed to delivering excellence in every project we undertake.",
			Stats: []contentapimodels.Stat{
				{Value: "500+", Label: "Clients Served", Icon: "users"},
				{Value: "50+", Label: "Team Members", Icon: "star"},
				{Value: "15+", Label: "Years Experience", Icon: "award"},
				{Value: "98%", Label: "Client Satisfaction", Icon: "trending-up"},
			},
		},
		Services: []contentapimodels.Service{
			{
				Title:       "Technology Integrations",
				Description: "Seamless integration of systems and technologies to enhance your business operations",
				Icon:        "code",
				Features:    []string{"Custom API Development", "System Integration", "Legacy Modernization"},
				Color:       "emerald",
			},
			{
				Title:       "Product Delivery",
				Description: "End-to-end product development and deployment solutions",
				Icon:        "rocket",
				Features:    []string{"Agile Development", "Quality Assurance", "Continuous Deployment"},
				Color:       "teal",
			},
			{
				Title:       "SEO Optimization",
				Description: "Boost your online presence and search engine rankings",
				Icon:        "search",
				Features:    []string{"Keyword Research", "Content Strategy", "Performance Optimization"},
				Color:       "cyan",
			},
			{
				Title:       "Business Development",
				Description: "Strategic planning and execution for sustainable growth",
				Icon:        "trending-up",
				Features:    []string{"Market Analysis", "Growth Strategy", "Performance Metrics"},
				Color:       "blue",
			},
			{
				Title:       "Social Media Marketing",
				Description: "Engage and grow your audience across all platforms",
				Icon:        "share",
				Features:    []string{"Content Creation", "Community Management", "Analytics"},
				Color:       "indigo",
			},
			{
				Title:       "Cloud Solutions",
				Description: "Scalable and secure cloud infrastructure services",
				Icon:        "cloud",
				Features:    []string{"Cloud Migration", "Infrastructure Setup", "Monitoring"},
				Color:       "violet",
			},
		},
		CaseStudies: []contentapimodels.CaseStudy{
			{
				Title:       "Digital Transformation for Fortune 500 Company",
				Description: "Complete digital overhaul resulting in 150% ROI",
				Image:       "/static/img/case-transformation.jpg",
				Results:     []string{"45% increase in efficiency", "2x revenue growth", "Reduced operational costs by 30%"},
			},
			{
				Title:       "E-commerce Platform Optimization",
				Description: "Revolutionized online shopping experience",
				Image:       "/static/img/case-ecommerce.jpg",
				Results:     []string{"200% increase in conversions", "Mobile traffic up by 80%", "4.9/5 customer satisfaction"},
			},
			{
				Title:       "Cloud Migration Success Story",
				Description: "Seamless transition to cloud infrastructure",
				Image:       "/static/img/case-cloud.jpg",
				Results:     []string{"Zero downtime during migration", "40% cost reduction", "Enhanced security protocols"},
			},
		},
		Features: []contentapimodels.Feature{
			{Title: "Technology Integration", Content: "Seamlessly connect your systems for maximum efficiency", Image: "/static/img/feature-integration.jpg"},
			{Title: "Data Analytics", Content: "Transform raw data into actionable insights", Image: "/static/img/feature-analytics.jpg"},
			{Title: "Cloud Solutions", Content: "Scale your infrastructure with secure cloud services", Image: "/static/img/feature-cloud.jpg"},
		},
		Testimonials: []contentapimodels.Testimonial{
			{
				Text:     "Ocavior transformed our business with their innovative solutions. The results exceeded our expectations.",
				Author:   "John Smith",
				Position: "CEO, TechCorp",
				Image:    "/static/img/avatar-1.jpg",
			},
			{
				Text:     "Working with Ocavior was a game-changer for our digital presence. Highly recommended!",
				Author:   "Sarah Johnson",
				Position: "Marketing Director, InnovateX",
				Image:    "/static/img/avatar-2.jpg",
			},
			{
				Text:     "The team at Ocavior delivers exceptional results with professionalism and expertise.",
				Author:   "Michael Brown",
				Position: "CTO, FutureScale",
				Image:    "/static/img/avatar-3.jpg",
			},
		},
		Positions: positions,
		Footer: contentapimodels.Footer{
			Sections: []contentapimodels.FooterSection{
				{
					Title: "Services",
					Links: []contentapimodels.Link{
						{Name: "Technology Integration", Href: "/services/integration"},
						{Name: "Product Delivery", Href: "/services/product-delivery"},
						{Name: "SEO Optimization", Href: "/services/seo"},
						{Name: "Business Development", Href: "/services/business-dev"},
						{Name: "Social Media Marketing", Href: "/services/social-media"},
					},
				},
				{
					Title: "Company",
					Links: []contentapimodels.Link{
						{Name: "About Us", Href: "/about"},
						{Name: "Careers", Href: "/careers"},
						{Name: "Case Studies", Href: "/case-studies"},
						{Name: "Blog", Href: "/blog"},
						{Name: "Contact", Href: "/contact"},
					},
				},
				{
					Title: "Resources",
					Links: []contentapimodels.Link{
						{Name: "Documentation", Href: "/docs"},
						{Name: "Support Center", Href: "/support"},
						{Name: "FAQ", Href: "/faq"},
						{Name: "Privacy Policy", Href: "/privacy"},
						{Name: "Terms of Service", Href: "/terms"},
					},
				},
			},
			Contacts: contentapimodels.Contacts{
				Email:   "contact@ocavior.com",
				Phone:   "+1 (555) 123-4567",
				Address: "123 Business Ave, New York, NY 10001",
				Social: []contentapimodels.Link{
					{Name: "LinkedIn", Href: "#"},
					{Name: "Twitter", Href: "#"},
					{Name: "Facebook", Href: "#"},
					{Name: "Instagram", Href: "#"},
					{Name: "YouTube", Href: "#"},
				},
			},
		},
	}
}

package content

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	contentapimodels "ocavior-site/models/api/content"
)

func TestContent(t *testing.T) {
	NewHandler()

	t.Run(`site sections check`, func(t *testing.T) {
		site := Instance.GetSite()
		require.Len(t, site.Hero.Slides, 3)
		require.Len(t, site.Testimonials, 3)
		require.Len(t, site.Services, 6)
		require.Len(t, site.Positions, 5)
		require.Equal(t, "software-engineer", site.Positions[0].Slug)
		require.Equal(t, "UI/UX Designer", site.Positions[1].Title)
		require.Equal(t, "ui/ux-designer", site.Positions[1].Slug)
	})

	t.Run(`GetSection check`, func(t *testing.T) {
		section, err := Instance.GetSection("testimonials")
		require.Nil(t, err)
		list, ok := section.([]contentapimodels.Testimonial)
		require.True(t, ok)
		require.Equal(t, "John Smith", list[0].Author)

		_, err = Instance.GetSection("pricing")
		require.True(t, errors.Is(err, ErrSectionNotFound))
	})

	t.Run(`GetCarousel check`, func(t *testing.T) {
		spec, err := Instance.GetCarousel(CarouselTestimonials)
		require.Nil(t, err)
		require.Equal(t, 3, spec.Size)
		require.Equal(t, 5*time.Second, spec.Interval)

		spec, err = Instance.GetCarousel(CarouselHero)
		require.Nil(t, err)
		require.Equal(t, 4*time.Second, spec.Interval)

		spec, err = Instance.GetCarousel(CarouselFeatures)
		require.Nil(t, err)
		require.Equal(t, time.Duration(0), spec.Interval)

		_, err = Instance.GetCarousel("unknown")
		require.NotNil(t, err)
	})
}

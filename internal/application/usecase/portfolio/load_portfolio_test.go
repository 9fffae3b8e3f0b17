package portfolio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

func statuses(results []portfolio.FragmentResult) map[string]portfolio.FragmentStatus {
	out := make(map[string]portfolio.FragmentStatus, len(results))
	for _, r := range results {
		out[r.Key] = r.Status
	}
	return out
}

func TestLoadPortfolio_EmptyStorage(t *testing.T) {
	uc := NewLoadPortfolioUseCase(newFakeStore(nil), logger.NewNopLogger())

	out := uc.Execute(context.Background())

	assert.Equal(t, portfolio.Snapshot{
		BasicInfo: portfolio.BasicInfo{
			Name:        "",
			ImageURL:    "",
			Bio:         "",
			Skills:      []string{},
			SocialMedia: portfolio.SocialMedia{GitHub: "", LinkedIn: "", Twitter: ""},
		},
		Experiences: []portfolio.Experience{},
		Projects:    []portfolio.Project{},
	}, out.Snapshot)
	assert.Equal(t, map[string]portfolio.FragmentStatus{
		portfolio.KeyBasicInfo:   portfolio.FragmentAbsent,
		portfolio.KeyExperiences: portfolio.FragmentAbsent,
		portfolio.KeyProjects:    portfolio.FragmentAbsent,
	}, statuses(out.Results))
}

func TestLoadPortfolio_PartialBasicInfo(t *testing.T) {
	store := newFakeStore(map[string]string{
		portfolio.KeyBasicInfo: `{"name":"Ada","skills":["Go","Rust"]}`,
	})
	uc := NewLoadPortfolioUseCase(store, logger.NewNopLogger())

	out := uc.Execute(context.Background())

	assert.Equal(t, portfolio.BasicInfo{
		Name:   "Ada",
		Skills: []string{"Go", "Rust"},
	}, out.Snapshot.BasicInfo)
	assert.Equal(t, []portfolio.Experience{}, out.Snapshot.Experiences)
	assert.Equal(t, []portfolio.Project{}, out.Snapshot.Projects)
}

func TestLoadPortfolio_CorruptExperiencesDoNotBlockProjects(t *testing.T) {
	store := newFakeStore(map[string]string{
		portfolio.KeyProjects:    `[{"name":"X","link":"http://x","description":"d"}]`,
		portfolio.KeyExperiences: "{not json",
	})
	uc := NewLoadPortfolioUseCase(store, logger.NewNopLogger())

	out := uc.Execute(context.Background())

	assert.Equal(t, []portfolio.Project{{Name: "X", Link: "http://x", Description: "d"}}, out.Snapshot.Projects)
	assert.Equal(t, []portfolio.Experience{}, out.Snapshot.Experiences)

	got := statuses(out.Results)
	assert.Equal(t, portfolio.FragmentMalformed, got[portfolio.KeyExperiences])
	assert.Equal(t, portfolio.FragmentLoaded, got[portfolio.KeyProjects])
	assert.Equal(t, portfolio.FragmentAbsent, got[portfolio.KeyBasicInfo])
	for _, r := range out.Results {
		if r.Key == portfolio.KeyExperiences {
			assert.True(t, r.Defaulted())
			assert.Error(t, r.Err)
		}
	}
}

func TestLoadPortfolio_MalformedEachKeyIsIsolated(t *testing.T) {
	valid := map[string]string{
		portfolio.KeyBasicInfo:   `{"name":"Ada","bio":"hi"}`,
		portfolio.KeyExperiences: `[{"company":"C","position":"P","description":"D"}]`,
		portfolio.KeyProjects:    `[{"name":"N","link":"L","description":"D"}]`,
	}
	full := NewLoadPortfolioUseCase(newFakeStore(valid), logger.NewNopLogger()).Execute(context.Background()).Snapshot

	for _, broken := range portfolio.Keys {
		t.Run(broken, func(t *testing.T) {
			data := map[string]string{}
			for k, v := range valid {
				data[k] = v
			}
			data[broken] = `{"truncated":`

			snap := NewLoadPortfolioUseCase(newFakeStore(data), logger.NewNopLogger()).Execute(context.Background()).Snapshot

			want := full.Clone()
			def := portfolio.DefaultSnapshot()
			switch broken {
			case portfolio.KeyBasicInfo:
				want.BasicInfo = def.BasicInfo
			case portfolio.KeyExperiences:
				want.Experiences = def.Experiences
			case portfolio.KeyProjects:
				want.Projects = def.Projects
			}
			assert.Equal(t, want, snap)
		})
	}
}

func TestLoadPortfolio_StorageErrorsActLikeAbsentKeys(t *testing.T) {
	store := newFakeStore(map[string]string{
		portfolio.KeyProjects: `[{"name":"X"}]`,
	})
	store.getErr[portfolio.KeyBasicInfo] = errStoreDown
	store.getErr[portfolio.KeyExperiences] = errStoreDown
	uc := NewLoadPortfolioUseCase(store, logger.NewNopLogger())

	out := uc.Execute(context.Background())

	assert.Equal(t, portfolio.DefaultBasicInfo(), out.Snapshot.BasicInfo)
	assert.Equal(t, []portfolio.Experience{}, out.Snapshot.Experiences)
	assert.Equal(t, []portfolio.Project{{Name: "X"}}, out.Snapshot.Projects)
	assert.Equal(t, portfolio.FragmentUnavailable, statuses(out.Results)[portfolio.KeyBasicInfo])
}

func TestLoadPortfolio_Idempotent(t *testing.T) {
	store := newFakeStore(map[string]string{
		portfolio.KeyBasicInfo:   `{"name":"Ada","skills":["Go"],"socialMedia":{"github":"https://github.com/ada"}}`,
		portfolio.KeyExperiences: `[{"company":"B"},{"company":"A"}]`,
	})
	uc := NewLoadPortfolioUseCase(store, logger.NewNopLogger())

	first := uc.Execute(context.Background())
	second := uc.Execute(context.Background())

	assert.Equal(t, first.Snapshot, second.Snapshot)
	assert.Equal(t, []portfolio.Experience{{Company: "B"}, {Company: "A"}}, second.Snapshot.Experiences)
}

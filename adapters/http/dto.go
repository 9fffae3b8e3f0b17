package http

import (
	"github.com/khoahotran/portfolio-view/internal/application/service"
	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
)

// Portfolio DTOs use the storage field names so the JSON API and the
// stored fragments read the same.

type SocialMediaDTO struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

type BasicInfoDTO struct {
	Name        string         `json:"name"`
	ImageURL    string         `json:"imageUrl"`
	Bio         string         `json:"bio"`
	Skills      []string       `json:"skills"`
	SocialMedia SocialMediaDTO `json:"socialMedia"`
}

type ExperienceDTO struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
}

type ProjectDTO struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

type PortfolioDTO struct {
	BasicInfo   BasicInfoDTO    `json:"basicInfo"`
	Experiences []ExperienceDTO `json:"experiences"`
	Projects    []ProjectDTO    `json:"projects"`
}

func ToPortfolioDTO(s portfolio.Snapshot) PortfolioDTO {
	dto := PortfolioDTO{
		BasicInfo: BasicInfoDTO{
			Name:        s.BasicInfo.Name,
			ImageURL:    s.BasicInfo.ImageURL,
			Bio:         s.BasicInfo.Bio,
			Skills:      append([]string{}, s.BasicInfo.Skills...),
			SocialMedia: SocialMediaDTO(s.BasicInfo.SocialMedia),
		},
	}
	dto.Experiences = make([]ExperienceDTO, len(s.Experiences))
	for i, e := range s.Experiences {
		dto.Experiences[i] = ExperienceDTO(e)
	}
	dto.Projects = make([]ProjectDTO, len(s.Projects))
	for i, p := range s.Projects {
		dto.Projects[i] = ProjectDTO(p)
	}
	return dto
}

// Page view

type SocialLinkView struct {
	Network string
	Label   string
	URL     string
}

type PortfolioPageView struct {
	Loading     bool
	Name        string
	AvatarURL   string
	Bio         string
	Skills      []string
	SocialLinks []SocialLinkView
	Experiences []ExperienceDTO
	Projects    []ProjectDTO
	EditURL     string
}

// socialLinks keeps the display order github, linkedin, twitter and drops
// empty entries.
func socialLinks(sm portfolio.SocialMedia) []SocialLinkView {
	all := []SocialLinkView{
		{Network: "github", Label: "GitHub", URL: sm.GitHub},
		{Network: "linkedin", Label: "LinkedIn", URL: sm.LinkedIn},
		{Network: "twitter", Label: "Twitter", URL: sm.Twitter},
	}
	links := make([]SocialLinkView, 0, len(all))
	for _, l := range all {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}

func ToPortfolioPageView(s portfolio.Snapshot, avatars service.AvatarResolver, editURL string) PortfolioPageView {
	dto := ToPortfolioDTO(s)
	return PortfolioPageView{
		Name:        dto.BasicInfo.Name,
		AvatarURL:   avatars.Resolve(dto.BasicInfo.ImageURL),
		Bio:         dto.BasicInfo.Bio,
		Skills:      dto.BasicInfo.Skills,
		SocialLinks: socialLinks(s.BasicInfo.SocialMedia),
		Experiences: dto.Experiences,
		Projects:    dto.Projects,
		EditURL:     editURL,
	}
}

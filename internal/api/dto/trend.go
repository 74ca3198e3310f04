package dto

import "github.com/trends/trends_api/internal/models"

type TrendResponse models.Trend

type TrendListResponse struct {
	Trends []models.Trend `json:"trends"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type CreateTrendRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=128"`
	Description string  `json:"description" validate:"max=1024"`
	Score       float64 `json:"score" validate:"gte=0"`
}

func (r CreateTrendRequest) Model() *models.Trend {
	return &models.Trend{
		Name:        r.Name,
		Description: r.Description,
		Score:       r.Score,
	}
}

type UpdateScoreRequest struct {
	Score *float64 `json:"score" validate:"required,gte=0"`
}

type ImportTrendsRequest struct {
	Trends []CreateTrendRequest `json:"trends" validate:"required,min=1,max=1000,dive"`
}

func (r ImportTrendsRequest) Models() []*models.Trend {
	trends := make([]*models.Trend, 0, len(r.Trends))
	for _, t := range r.Trends {
		trends = append(trends, t.Model())
	}
	return trends
}

type ImportTrendsResponse struct {
	Imported int            `json:"imported"`
	Trends   []models.Trend `json:"trends"`
}

type PurgeTrendsResponse struct {
	Deleted int64 `json:"deleted"`
}

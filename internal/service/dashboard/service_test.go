package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/corpsite/internal/mocks/service/dashboard"
)

type counters struct {
	news      *mocks.MocknewsCounter
	employees *mocks.MockemployeeCounter
	projects  *mocks.MockprojectCounter
	vacancies *mocks.MockvacancyCounter
}

func setup(t *testing.T) (*Service, counters) {
	ctrl := gomock.NewController(t)
	m := counters{
		news:      mocks.NewMocknewsCounter(ctrl),
		employees: mocks.NewMockemployeeCounter(ctrl),
		projects:  mocks.NewMockprojectCounter(ctrl),
		vacancies: mocks.NewMockvacancyCounter(ctrl),
	}
	return NewService(m.news, m.employees, m.projects, m.vacancies), m
}

func TestService_GetStats(t *testing.T) {
	svc, m := setup(t)

	m.news.EXPECT().CountNews(gomock.Any()).Return(12, nil)
	m.employees.EXPECT().CountEmployees(gomock.Any()).Return(30, nil)
	m.projects.EXPECT().CountProjects(gomock.Any()).Return(4, nil)
	m.vacancies.EXPECT().CountVacancies(gomock.Any()).Return(2, nil)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{News: 12, Employees: 30, Projects: 4, Vacancies: 2}, stats)
}

func TestService_GetStats_Error(t *testing.T) {
	svc, m := setup(t)

	dbErr := errors.New("db down")
	m.news.EXPECT().CountNews(gomock.Any()).Return(12, nil)
	m.employees.EXPECT().CountEmployees(gomock.Any()).Return(0, dbErr)
	m.projects.EXPECT().CountProjects(gomock.Any()).Return(4, nil)
	m.vacancies.EXPECT().CountVacancies(gomock.Any()).Return(2, nil)

	_, err := svc.GetStats(context.Background())
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "count employees")
}

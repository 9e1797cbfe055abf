package vacancy

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/corpsite/internal/mocks/service/vacancy"
	"github.com/aliskhannn/corpsite/internal/model"
	"github.com/aliskhannn/corpsite/internal/notify"
	"github.com/aliskhannn/corpsite/internal/repository/vacancy"
)

func TestService_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockvacancyRepository(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	svc := NewService(repoMock, dispatcherMock)

	v := model.Vacancy{ID: 2, Title: "Сварщик", Location: model.LocationPlant}
	resume := notify.URL("https://example.com/cv.pdf")
	outcome := notify.Outcome{Attachments: []notify.Result{{}}}

	repoMock.EXPECT().GetVacancyByID(gomock.Any(), int64(2)).Return(v, nil)
	dispatcherMock.EXPECT().Dispatch(gomock.Any(), notify.Event{
		Category: notify.CategoryVacancyApplication,
		Fields: map[string]string{
			notify.FieldVacancy:  "Сварщик",
			notify.FieldLocation: "Производство (Новосибирск, Электровозная 3 к1)",
			notify.FieldName:     "Пётр",
			notify.FieldPhone:    "—",
			notify.FieldNote:     "—",
		},
		Attachments: []notify.Attachment{resume},
	}).Return(outcome)

	got, err := svc.Apply(context.Background(), 2, Application{
		Name:        " Пётр ",
		Note:        "   ",
		Attachments: []notify.Attachment{resume},
	})
	require.NoError(t, err)
	assert.Equal(t, notify.StatusSuccess, got.Status())
}

func TestService_Apply_UnknownVacancy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockvacancyRepository(ctrl)
	svc := NewService(repoMock, mocks.NewMockdispatcher(ctrl))

	repoMock.EXPECT().GetVacancyByID(gomock.Any(), int64(7)).Return(model.Vacancy{}, vacancy.ErrVacancyNotFound)

	_, err := svc.Apply(context.Background(), 7, Application{Name: "x"})
	assert.ErrorIs(t, err, vacancy.ErrVacancyNotFound)
}

func TestService_GetAllVacancies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockvacancyRepository(ctrl)
	svc := NewService(repoMock, nil)

	list := []model.Vacancy{{ID: 1}, {ID: 2}}
	repoMock.EXPECT().GetAllVacancies(gomock.Any()).Return(list, nil)

	got, err := svc.GetAllVacancies(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, list, got)
}

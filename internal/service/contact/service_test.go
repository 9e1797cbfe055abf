package contact

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/corpsite/internal/mocks/service/contact"
	"github.com/aliskhannn/corpsite/internal/notify"
)

func TestService_Submit_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	svc := NewService(dispatcherMock)

	dispatcherMock.EXPECT().Dispatch(gomock.Any(), notify.Event{
		Category: notify.CategoryContact,
		Fields: map[string]string{
			notify.FieldName:    "Гость",
			notify.FieldEmail:   "a@example.com",
			notify.FieldPhone:   "—",
			notify.FieldMessage: "—",
		},
	}).Return(notify.Outcome{})

	out := svc.Submit(context.Background(), Message{Email: " a@example.com "})
	assert.Equal(t, notify.StatusSuccess, out.Status())
}

package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRef(t *testing.T) {
	assert.Equal(t, AttachURL, ParseRef("https://example.com/a.pdf").Kind())
	assert.Equal(t, AttachURL, ParseRef("  HTTP://example.com/a.pdf ").Kind())
	assert.Equal(t, AttachLocalPath, ParseRef("static/uploads/a.pdf").Kind())
	assert.Equal(t, AttachLocalPath, ParseRef("ftp://example.com/a.pdf").Kind())

	p := ParseRef("/srv/uploads/cv.docx")
	assert.Equal(t, "cv.docx", p.Filename())
	assert.Equal(t, "/srv/uploads/cv.docx", p.Ref())
}

func TestInMemory_DefaultFilename(t *testing.T) {
	assert.Equal(t, "file", InMemory("", nil).Filename())
}

func TestRender_VacancyApplication(t *testing.T) {
	text, err := Render(Event{
		Category: CategoryVacancyApplication,
		Fields: map[string]string{
			FieldVacancy:  "Сварщик",
			FieldLocation: "Производство",
			FieldName:     "Пётр",
			FieldPhone:    "—",
			FieldNote:     "—",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "🧩 Новый отклик на вакансию\n\n"+
		"Вакансия: Сварщик\n"+
		"Локация: Производство\n\n"+
		"👤 ФИО: Пётр\n"+
		"📞 Телефон: —\n"+
		"✍️ Комментарий:\n—", text)
}

func TestRender_MissingFieldsAreEmpty(t *testing.T) {
	text, err := Render(Event{Category: CategoryContact})
	require.NoError(t, err)
	assert.NotContains(t, text, "<no value>")
}

func TestRender_UnknownCategory(t *testing.T) {
	_, err := Render(Event{Category: "unknown"})
	assert.Error(t, err)
}

func TestCaption_URL(t *testing.T) {
	ev := contactEvent()
	assert.Equal(t, "🔗 Файл по ссылке\nОт: Иван (ivan@example.com, +7 900)", Caption(ev, URL("https://x")))
}

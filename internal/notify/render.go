package notify

import (
	"fmt"
	"strings"
	"text/template"
)

var templates = map[Category]*template.Template{
	CategoryContact: template.Must(template.New("contact").Option("missingkey=zero").Parse(
		"📩 Новое сообщение с сайта\n\n" +
			"👤 Имя: {{.name}}\n" +
			"📧 Email: {{.email}}\n" +
			"📞 Телефон: {{.phone}}\n" +
			"💬 Сообщение:\n{{.message}}",
	)),
	CategoryVacancyApplication: template.Must(template.New("vacancy-application").Option("missingkey=zero").Parse(
		"🧩 Новый отклик на вакансию\n\n" +
			"Вакансия: {{.vacancy}}\n" +
			"Локация: {{.location}}\n\n" +
			"👤 ФИО: {{.name}}\n" +
			"📞 Телефон: {{.phone}}\n" +
			"✍️ Комментарий:\n{{.note}}",
	)),
}

// Render formats the event text with its category template.
func Render(ev Event) (string, error) {
	tmpl, ok := templates[ev.Category]
	if !ok {
		return "", fmt.Errorf("no template for category %q", ev.Category)
	}

	fields := ev.Fields
	if fields == nil {
		fields = map[string]string{}
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, fields); err != nil {
		return "", fmt.Errorf("render %s: %w", ev.Category, err)
	}

	return b.String(), nil
}

// Caption describes an attachment and who sent it.
func Caption(ev Event, att Attachment) string {
	from := fmt.Sprintf("От: %s (%s, %s)", ev.Field(FieldName), ev.Field(FieldEmail), ev.Field(FieldPhone))
	if ev.Category == CategoryVacancyApplication {
		from = fmt.Sprintf("От: %s (%s)", ev.Field(FieldName), ev.Field(FieldPhone))
	}

	if att.Kind() == AttachURL {
		return "🔗 Файл по ссылке\n" + from
	}

	return fmt.Sprintf("📎 Файл: %s\n%s", att.Filename(), from)
}

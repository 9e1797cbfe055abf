package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseNode_DSN(t *testing.T) {
	n := DatabaseNode{Host: "db", Port: "5432", User: "site", Pass: "secret", Name: "corpsite", SSLMode: "disable"}
	assert.Equal(t, "postgres://site:secret@db:5432/corpsite?sslmode=disable", n.DSN())
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{
		Notify: Notify{General: Endpoint{Channel: "telegram"}, HR: Endpoint{Channel: "email"}},
		Admin:  Admin{Login: "admin", Password: "pw"},
	}
	assert.NoError(t, cfg.validate())

	cfg.Notify.HR.Channel = "sms"
	assert.ErrorContains(t, cfg.validate(), "notify.hr.channel")

	cfg.Notify.HR.Channel = "telegram"
	cfg.Admin.Password = ""
	assert.Error(t, cfg.validate())
}

package utils

import (
	"bytes"
	"html/template"
	"log"
	"strconv"

	"room_booking/config"

	"gopkg.in/gomail.v2"
)

// DecisionEmailData feeds the approval/rejection notification template.
type DecisionEmailData struct {
	UserName  string
	RoomName  string
	Date      string
	StartTime string
	EndTime   string
	Purpose   string
	Status    string
}

var decisionTmpl = template.Must(template.New("decision").Parse(`
<p>Halo {{.UserName}},</p>
<p>Pengajuan peminjaman ruangan <b>{{.RoomName}}</b> pada {{.Date}}
pukul {{.StartTime}}&ndash;{{.EndTime}} ({{.Purpose}}) telah
<b>{{if eq .Status "Disetujui"}}disetujui{{else}}ditolak{{end}}</b>.</p>
<p>Sistem Peminjaman Ruangan UIN SAIZU</p>
`))

// SendDecisionEmail notifies the requester after an admin decision (async).
// Quietly skipped when SMTP is not configured.
func SendDecisionEmail(to string, data DecisionEmailData) {
	host := config.Config("SMTP_HOST")
	if host == "" {
		return
	}
	go func() {
		var body bytes.Buffer
		if err := decisionTmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render decision email: %v", err)
			return
		}

		port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.ConfigOr("SMTP_FROM", username)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Status Peminjaman Ruangan: "+data.Status)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send decision email to %s: %v", to, err)
		}
	}()
}

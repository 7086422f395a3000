package mail

import "github.com/xavierca1/ligue-leads/internal/entity"

type LeadDigestData struct {
	Count int
	Leads []*entity.Lead
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

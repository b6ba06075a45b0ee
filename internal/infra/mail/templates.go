package mail

import (
	"errors"
	"fmt"
	"html"
)

type TemplateName string

const (
	TemplateTrialWelcome         TemplateName = "trial_welcome"
	TemplateNewLeadNotification  TemplateName = "new_lead_notification"
	TemplateInternalNotification TemplateName = "internal_notification"
	TemplateWeeklyReport         TemplateName = "weekly_report"
)

var ErrUnknownTemplate = errors.New("unknown email template")

type RenderedEmail struct {
	Subject string
	HTML    string
}

type renderFunc func(data map[string]string) RenderedEmail

var templates = map[TemplateName]renderFunc{
	TemplateTrialWelcome:         renderTrialWelcome,
	TemplateNewLeadNotification:  renderNewLead,
	TemplateInternalNotification: renderInternal,
	TemplateWeeklyReport:         renderWeeklyReport,
}

// RenderTemplate fails closed: an unknown name is a typed error, never a
// partially rendered message.
func RenderTemplate(name TemplateName, data map[string]string) (RenderedEmail, error) {
	fn, ok := templates[name]
	if !ok {
		return RenderedEmail{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return fn(data), nil
}

func esc(data map[string]string, key string) string {
	return html.EscapeString(data[key])
}

func renderTrialWelcome(data map[string]string) RenderedEmail {
	name := esc(data, "first_name")
	return RenderedEmail{
		Subject: fmt.Sprintf("Welcome to LeadPilot, %s — your free trial is live", data["first_name"]),
		HTML: fmt.Sprintf(`<html><body>
<h2>Welcome, %s!</h2>
<p>Your free trial is set up. Over the next few days we'll build your
capture page and start routing leads your way.</p>
<p>Reply to this email any time — a real person reads it.</p>
<p>— The LeadPilot team</p>
</body></html>`, name),
	}
}

func renderNewLead(data map[string]string) RenderedEmail {
	return RenderedEmail{
		Subject: fmt.Sprintf("New lead: %s — %s", data["lead_name"], data["service"]),
		HTML: fmt.Sprintf(`<html><body>
<h2>You have a new lead</h2>
<table>
<tr><td><b>Name</b></td><td>%s</td></tr>
<tr><td><b>Phone</b></td><td>%s</td></tr>
<tr><td><b>Email</b></td><td>%s</td></tr>
<tr><td><b>Service</b></td><td>%s</td></tr>
<tr><td><b>Message</b></td><td>%s</td></tr>
</table>
<p>Call back within 5 minutes for the best close rate.</p>
<p><a href="%s">Open your dashboard</a></p>
</body></html>`,
			esc(data, "lead_name"), esc(data, "lead_phone"), esc(data, "lead_email"),
			esc(data, "service"), esc(data, "message"), data["dashboard_url"]),
	}
}

func renderInternal(data map[string]string) RenderedEmail {
	return RenderedEmail{
		Subject: data["subject"],
		HTML: fmt.Sprintf(`<html><body>
<h3>%s</h3>
<pre>%s</pre>
</body></html>`, esc(data, "subject"), esc(data, "body")),
	}
}

func renderWeeklyReport(data map[string]string) RenderedEmail {
	return RenderedEmail{
		Subject: fmt.Sprintf("Your weekly lead report — %s", data["business_name"]),
		HTML: fmt.Sprintf(`<html><body>
<h2>Weekly report for %s</h2>
<ul>
<li>Leads this period: %s</li>
<li>Booked: %s</li>
<li>Close rate: %s%%</li>
<li>Estimated job value: $%s</li>
</ul>
<p><a href="%s">See the full dashboard</a></p>
</body></html>`,
			esc(data, "business_name"), esc(data, "total_leads"), esc(data, "booked"),
			esc(data, "close_rate"), esc(data, "job_value"), data["dashboard_url"]),
	}
}

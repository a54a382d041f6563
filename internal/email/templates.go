// internal/email/templates.go
package email

const (
	TemplateWelcome = "welcome"
	TemplateInvite  = "invite"
)

var templateSources = map[string]string{
	TemplateWelcome: `<p>Hi {{.FirstName}},</p>
<p>Your organization <strong>{{.OrganizationName}}</strong> has been registered.
You are its owner account.</p>
<p>Sign in at <a href="{{.LoginURL}}">{{.LoginURL}}</a>.</p>`,

	TemplateInvite: `<p>Hi,</p>
<p>{{.InviterName}} invited you to join <strong>{{.OrganizationName}}</strong>
as {{.Role}}.</p>
<p>Accept the invitation: <a href="{{.AcceptURL}}">{{.AcceptURL}}</a></p>
<p>The link expires in {{.ExpiresIn}}.</p>`,
}

// WelcomeData feeds the welcome template.
type WelcomeData struct {
	FirstName        string
	OrganizationName string
	LoginURL         string
}

// InviteData feeds the invitation template.
type InviteData struct {
	InviterName      string
	OrganizationName string
	Role             string
	AcceptURL        string
	ExpiresIn        string
}

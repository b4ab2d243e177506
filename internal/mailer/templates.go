package mailer

import "fmt"

func passwordResetTemplate(name, resetURL string) (subject, text, html string) {
	subject = "Reset your APAN password"

	text = fmt.Sprintf(`Hi %s,

We received a request to reset your APAN password. Open this link to choose a new one:
%s

The link expires in 1 hour. If you didn't request this, you can safely ignore this email.

The APAN Team`, name, resetURL)

	html = fmt.Sprintf(`<p>Hi %s,</p>
<p>We received a request to reset your APAN password. Click the button below to choose a new one:</p>
<p><a href="%s" style="display:inline-block;padding:10px 20px;background:#2b7a4b;color:#ffffff;text-decoration:none;border-radius:4px">Reset password</a></p>
<p>The link expires in 1 hour. If you didn't request this, you can safely ignore this email.</p>
<p>The APAN Team</p>`, name, resetURL)

	return subject, text, html
}

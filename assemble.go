package chat2pdf

import (
	"fmt"
	"html"
	"strings"
)

// documentTemplate wraps the title heading and message fragments in a
// complete HTML document.
const documentTemplate = `<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
</head>
<body>
<div>
    <div>
        <h2>%s</h2>
        %s
    </div>
</div>
</body>
</html>`

// assembleDocument concatenates rendered message fragments under the
// export title. The title gets the same RTL detection and
// normalization as message content, then is HTML-escaped; no markdown
// processing applies to titles. Fragment order is preserved exactly.
func assembleDocument(title string, wrapWidth int, fragments []string) string {
	if ContainsRTL(title) {
		title = FixRTL(title, wrapWidth)
	}
	escapedTitle := html.EscapeString(title)

	messagesHTML := "<div>" + strings.Join(fragments, "") + "</div>"
	return fmt.Sprintf(documentTemplate, escapedTitle, messagesHTML)
}

package notify

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/messages.zh-CN.tmpl
var messagesFS embed.FS

var messages = template.Must(loadTemplate())

func loadTemplate() (*template.Template, error) {
	b, err := messagesFS.ReadFile("templates/messages.zh-CN.tmpl")
	if err != nil {
		return nil, fmt.Errorf("read embedded messages: %w", err)
	}
	t, err := template.New("messages").Option("missingkey=zero").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("parse embedded messages: %w", err)
	}
	return t, nil
}

// Message names.
const (
	PolicyFailed  = "policy_failed"
	ElevatePrompt = "elevate_prompt"
	ElevateFailed = "elevate_failed"
	LaunchFailed  = "launch_failed"
)

// Data is the template model. Err should already be formatted with ErrorText.
type Data struct {
	Path string
	Err  string
}

// Render returns the title and body for a message name. Unknown names render
// as the name itself so a typo never hides a failure.
func Render(name string, data Data) (title, text string) {
	title = execute(name+".title", data)
	text = execute(name+".text", data)
	if title == "" {
		title = name
	}
	if text == "" {
		text = data.Err
	}
	return title, text
}

func execute(name string, data Data) string {
	if messages.Lookup(name) == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := messages.ExecuteTemplate(&buf, name, data); err != nil {
		return ""
	}
	return buf.String()
}

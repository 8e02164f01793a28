// Package discord adapts the marketplace core to the Discord
// interactions model: an Ed25519-signed webhook for inbound events, the
// REST API for owner DMs and display patches. Everything here is thin
// I/O; no listing rule lives in this package.
package discord

import (
	"time"

	"skyblock-market/contract"
)

const listingColor = 0x00AE86

// Discord component and style identifiers.
const (
	componentActionRow = 1
	componentButton    = 2
	componentSelect    = 3
	componentTextInput = 4

	buttonPrimary = 1
	buttonSuccess = 3

	textInputShort     = 1
	textInputParagraph = 2
)

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title     string       `json:"title,omitempty"`
	Color     int          `json:"color,omitempty"`
	Fields    []embedField `json:"fields,omitempty"`
	Footer    *embedFooter `json:"footer,omitempty"`
	Timestamp string       `json:"timestamp,omitempty"`
}

type selectOption struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

type component struct {
	Type        int            `json:"type"`
	Style       int            `json:"style,omitempty"`
	Label       string         `json:"label,omitempty"`
	CustomID    string         `json:"custom_id,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Required    bool           `json:"required,omitempty"`
	Options     []selectOption `json:"options,omitempty"`
	Components  []component    `json:"components,omitempty"`
}

func embedFromRender(render contract.RenderRequest) embed {
	e := embed{
		Title:     render.Title,
		Color:     listingColor,
		Fields:    embedFields(render.Fields),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if render.Footer != "" {
		e.Footer = &embedFooter{Text: render.Footer}
	}
	return e
}

func embedFromNotification(notification contract.Notification) embed {
	return embed{
		Title:     notification.Title,
		Color:     listingColor,
		Fields:    embedFields(notification.Fields),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func embedFields(fields []contract.Field) []embedField {
	out := make([]embedField, 0, len(fields))
	for _, f := range fields {
		out = append(out, embedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return out
}

func actionRow(actions []contract.Action) component {
	row := component{Type: componentActionRow}
	for _, action := range actions {
		row.Components = append(row.Components, component{
			Type:     componentButton,
			Style:    buttonStyle(action.Style),
			Label:    action.Label,
			CustomID: action.Token,
		})
	}
	return row
}

func buttonStyle(style contract.ActionStyle) int {
	if style == contract.ActionSuccess {
		return buttonSuccess
	}
	return buttonPrimary
}

func menuRow(menu contract.MenuPrompt) component {
	options := make([]selectOption, 0, len(menu.Options))
	for _, o := range menu.Options {
		options = append(options, selectOption{Label: o.Label, Value: o.Value, Description: o.Description})
	}
	return component{
		Type: componentActionRow,
		Components: []component{{
			Type:        componentSelect,
			CustomID:    menu.Token,
			Placeholder: menu.Placeholder,
			Options:     options,
		}},
	}
}

func modalRows(form contract.FormPrompt) []component {
	rows := make([]component, 0, len(form.Fields))
	for _, field := range form.Fields {
		style := textInputShort
		if field.Paragraph {
			style = textInputParagraph
		}
		rows = append(rows, component{
			Type: componentActionRow,
			Components: []component{{
				Type:        componentTextInput,
				Style:       style,
				CustomID:    field.ID,
				Label:       field.Label,
				Placeholder: field.Placeholder,
				Required:    field.Required,
			}},
		})
	}
	return rows
}

// applyFieldPatch rewrites the field named by the patch. When the name
// is not displayed yet the trailing field gives up its slot, so the
// first patch converts the listing-id line into the current-offer line
// and later patches keep rewriting it.
func applyFieldPatch(e *embed, patch contract.FieldPatch) {
	replacement := embedField{Name: patch.Name, Value: patch.Value, Inline: patch.Inline}
	for i, field := range e.Fields {
		if field.Name == patch.Name {
			e.Fields[i] = replacement
			return
		}
	}
	if len(e.Fields) == 0 {
		e.Fields = []embedField{replacement}
		return
	}
	e.Fields[len(e.Fields)-1] = replacement
}

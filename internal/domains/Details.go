package domains

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
)

// Card kinds. The stored form carries the discriminator explicitly; documents
// written before it existed are recognized by the presence of "items".
const (
	CardKindList  = "list"
	CardKindProse = "prose"
)

// DetailsDocument is the structured detail content of one service.
type DetailsDocument struct {
	Cards []Card `json:"cards"`
	Faqs  []Faq  `json:"faqs"`
}

// Card is a single display section: either an ordered list of items or a
// prose paragraph. Icon is a client-side glyph label with no server meaning.
type Card struct {
	Title   string
	Icon    string
	Kind    string
	Items   []string
	Content string
}

type Faq struct {
	Q string `json:"q"`
	A string `json:"a"`
}

type cardJSON struct {
	Title   string    `json:"title"`
	Icon    string    `json:"icon,omitempty"`
	Kind    string    `json:"kind,omitempty"`
	Items   *[]string `json:"items,omitempty"`
	Content string    `json:"content,omitempty"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	kind := c.Kind
	if kind == "" {
		if c.Items != nil {
			kind = CardKindList
		} else {
			kind = CardKindProse
		}
	}

	if kind == CardKindProse {
		return json.Marshal(struct {
			Title   string `json:"title"`
			Icon    string `json:"icon,omitempty"`
			Kind    string `json:"kind"`
			Content string `json:"content"`
		}{c.Title, c.Icon, CardKindProse, c.Content})
	}

	items := c.Items
	if items == nil {
		items = []string{}
	}
	return json.Marshal(struct {
		Title string   `json:"title"`
		Icon  string   `json:"icon,omitempty"`
		Kind  string   `json:"kind"`
		Items []string `json:"items"`
	}{c.Title, c.Icon, CardKindList, items})
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var raw cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Title = raw.Title
	c.Icon = raw.Icon
	c.Items = nil
	c.Content = ""

	switch raw.Kind {
	case CardKindList:
		c.Kind = CardKindList
		if raw.Items != nil {
			c.Items = *raw.Items
		} else {
			c.Items = []string{}
		}
	case CardKindProse:
		c.Kind = CardKindProse
		c.Content = raw.Content
	default:
		// Legacy shape without a discriminator: the presence of an items
		// array means a list card, even an empty one. Only a missing items
		// key falls through to prose.
		if raw.Items != nil {
			c.Kind = CardKindList
			c.Items = *raw.Items
		} else {
			c.Kind = CardKindProse
			c.Content = raw.Content
		}
	}
	return nil
}

// DecodeDetails turns the persisted details value into a document. It accepts
// the canonical object form and the legacy form where the column holds a JSON
// string containing JSON text. Anything unreadable, and any document without
// cards, decodes to nil so one bad row never breaks a listing.
func DecodeDetails(raw []byte) *DetailsDocument {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			slog.Warn("details: unreadable string value dropped", "err", err)
			return nil
		}
		slog.Warn("details: legacy double-encoded document, next write normalizes it")
		data = []byte(inner)
	}

	var doc DetailsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("details: malformed document dropped", "err", err)
		return nil
	}
	if doc.Cards == nil {
		return nil
	}
	if doc.Faqs == nil {
		doc.Faqs = []Faq{}
	}
	return &doc
}

// EncodeDetails produces the canonical single encoding of the full document.
// Both keys are always present, so every write settles legacy rows into one
// on-disk representation.
func EncodeDetails(doc *DetailsDocument) ([]byte, error) {
	out := DetailsDocument{}
	if doc != nil {
		out.Cards = doc.Cards
		out.Faqs = doc.Faqs
	}
	if out.Cards == nil {
		out.Cards = []Card{}
	}
	if out.Faqs == nil {
		out.Faqs = []Faq{}
	}
	return json.Marshal(out)
}

// FilterFaqs is a pure projection: FAQs whose question or answer contains the
// term case-insensitively. An empty term returns every FAQ.
func FilterFaqs(doc *DetailsDocument, term string) []Faq {
	if doc == nil {
		return []Faq{}
	}
	term = strings.ToLower(strings.TrimSpace(term))
	result := make([]Faq, 0, len(doc.Faqs))
	for _, faq := range doc.Faqs {
		if term == "" ||
			strings.Contains(strings.ToLower(faq.Q), term) ||
			strings.Contains(strings.ToLower(faq.A), term) {
			result = append(result, faq)
		}
	}
	return result
}

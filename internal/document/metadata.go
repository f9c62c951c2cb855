package document

import "strings"

// Metadata carries the document-level fields collected by top-level
// meta commands during a single evaluation.
type Metadata struct {
	Title    string
	Author   string
	Date     string
	Keywords []string
	Draft    bool

	// Abstract is reserved; nothing populates it today. The \abstract
	// command routes its content into the outline instead.
	Abstract []Block

	hasTitle  bool
	hasAuthor bool
	hasDate   bool
}

// Field gives metadata slots a uniform write contract: whether the slot
// was previously populated, and how raw command text turns into a
// value.
type Field interface {
	IsSet() bool
	Set(raw string)
}

type stringField struct {
	value *string
	set   *bool
}

func (f stringField) IsSet() bool { return *f.set }

func (f stringField) Set(raw string) {
	*f.value = raw
	*f.set = true
}

type listField struct {
	value *[]string
}

func (f listField) IsSet() bool { return len(*f.value) > 0 }

// Set splits raw on commas and trims each item.
func (f listField) Set(raw string) {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		items = append(items, strings.TrimSpace(part))
	}

	*f.value = items
}

type flagField struct {
	value *bool
}

// IsSet always reports false; setting a flag twice is not worth a
// warning.
func (f flagField) IsSet() bool { return false }

func (f flagField) Set(string) { *f.value = true }

// TitleField returns the write handle for the title slot.
func (m *Metadata) TitleField() Field {
	return stringField{value: &m.Title, set: &m.hasTitle}
}

// AuthorField returns the write handle for the author slot.
func (m *Metadata) AuthorField() Field {
	return stringField{value: &m.Author, set: &m.hasAuthor}
}

// DateField returns the write handle for the date slot.
func (m *Metadata) DateField() Field {
	return stringField{value: &m.Date, set: &m.hasDate}
}

// KeywordsField returns the write handle for the keywords slot.
func (m *Metadata) KeywordsField() Field {
	return listField{value: &m.Keywords}
}

// DraftField returns the write handle for the draft flag.
func (m *Metadata) DraftField() Field {
	return flagField{value: &m.Draft}
}

// HasTitle reports whether a title was set by the document.
func (m *Metadata) HasTitle() bool { return m.hasTitle }

package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-generator/internal/document"
	"github.com/jonathan/cv-generator/internal/i18n"
)

// renderPersonalInformation emits the left-column identity block: picture,
// name, contact lines and an optional postal address.
func (r *Renderer) renderPersonalInformation(name string, body *document.Value, locale i18n.Locale) (Fragment, error) {
	kind := SectionPersonalInformation
	if err := checkType(name, kind, body); err != nil {
		return Fragment{}, err
	}

	entries, ok := body.Get("entries")
	if !ok || !entries.IsMapping() {
		return Fragment{}, schemaErrorf(name, "the %s must contain an %q key", kind, "entries")
	}

	var b strings.Builder

	picture, present, ok := optionalField(entries, "picture")
	if !ok {
		return Fragment{}, schemaErrorf(name, "the %s %q must be a file path", kind, "picture")
	}
	if present {
		fmt.Fprintf(&b, "\\includegraphics[width=0.6\\columnwidth]{%s}\\\\[\\baselineskip]\n", picture)
	}

	fullName, ok := scalarField(entries, "name")
	if !ok {
		return Fragment{}, schemaErrorf(name, "the %s must contain a %q key", kind, "name")
	}
	fmt.Fprintf(&b, "%s\\\\ \n", r.text(fullName))

	email, present, ok := optionalField(entries, "email")
	if !ok {
		return Fragment{}, schemaErrorf(name, "the %s %q must be a single address", kind, "email")
	}
	if present {
		fmt.Fprintf(&b, "\\url{%s}\\\\ \n", email)
	}

	phone, present, ok := optionalField(entries, "phone")
	if !ok {
		return Fragment{}, schemaErrorf(name, "the %s %q must be a single number", kind, "phone")
	}
	if present {
		fmt.Fprintf(&b, "%s\\\\ \n", r.text(phone))
	}

	address, ok := entries.Get("address")
	if ok && !address.IsNull() {
		block, err := r.renderAddress(name, address, locale)
		if err != nil {
			return Fragment{}, err
		}
		b.WriteString(block)
	}

	return Fragment{Left: b.String()}, nil
}

func (r *Renderer) renderAddress(name string, address *document.Value, locale i18n.Locale) (string, error) {
	street, okStreet := scalarField(address, "street")
	city, okCity := scalarField(address, "city")
	postalCode, okPostal := scalarField(address, "postal code")
	if !okStreet || !okCity || !okPostal {
		return "", schemaErrorf(name, "the address must contain a %q, %q, and %q key", "street", "city", "postal code")
	}

	label, err := r.labels.Label(i18n.LabelAddress, locale)
	if err != nil {
		return "", fmt.Errorf("failed to resolve address label: %w", err)
	}

	var b strings.Builder
	b.WriteString("\\Sep\n")
	fmt.Fprintf(&b, "\\textbf{%s}\\\\ \n%s \\\\ \n%s %s \\\\\n", label, r.text(street), r.text(city), r.text(postalCode))

	country, ok := address.Get("country")
	if ok && !country.IsNull() {
		text, ok := localized(country, locale)
		if !ok {
			return "", schemaErrorf(name, "the country must contain an %q key", locale)
		}
		fmt.Fprintf(&b, "%s \\\\ \n", r.text(text))
	}

	return b.String(), nil
}
